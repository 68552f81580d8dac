// Package tasks implements program subcommands.
package tasks

import (
	"context"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/state"
)

// output returns where command results go, normally STDOUT.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// prepare is common preamble of every action.
func prepare(ctx context.Context, cmd *cli.Command) (*state.LocalEnv, *zap.Logger, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	env := state.EnvFromContext(ctx)
	return env, env.Log.Named(cmd.Name), nil
}
