package tasks

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/codec"
	"objkit/shape"
)

// input returns first argument, "-" or no argument means STDIN.
func input(cmd *cli.Command) (string, error) {
	arg := cmd.Args().First()
	if len(arg) > 0 && arg != "-" {
		return arg, nil
	}
	r := cmd.Root().Reader
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// binary formats are represented as hex on the command line
func toText(c codec.Codec, data string) string {
	if f, err := codec.ParseFormat(c.Name()); err == nil && f.Binary() {
		return hex.EncodeToString([]byte(data))
	}
	return data
}

func fromText(c codec.Codec, text string) (string, error) {
	if f, err := codec.ParseFormat(c.Name()); err == nil && f.Binary() {
		data, err := hex.DecodeString(text)
		if err != nil {
			return "", fmt.Errorf("unable to decode hex input: %w", err)
		}
		return string(data), nil
	}
	return text, nil
}

// Encode reads JSON value and outputs it encoded with requested codec.
func Encode(ctx context.Context, cmd *cli.Command) error {
	env, log, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}

	c, err := env.Codec(cmd.String("format"))
	if err != nil {
		return err
	}

	text, err := input(cmd)
	if err != nil {
		return err
	}

	value, err := codec.Decode(func() *any { return new(any) }, text)
	if err != nil {
		return fmt.Errorf("unable to read JSON value: %w", err)
	}

	out, err := codec.EncodeWith(c, *value)
	if err != nil {
		return err
	}
	log.Debug("Value encoded", zap.String("codec", c.Name()), zap.Int("bytes", len(out)))

	_, err = fmt.Fprintln(output(cmd), strings.TrimRight(toText(c, out), "\n"))
	return err
}

// Decode reads rectangle encoded with requested codec and prints it with its
// area. Fields absent from input default to zero.
func Decode(ctx context.Context, cmd *cli.Command) error {
	env, log, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}

	c, err := env.Codec(cmd.String("format"))
	if err != nil {
		return err
	}

	text, err := input(cmd)
	if err != nil {
		return err
	}
	if text, err = fromText(c, text); err != nil {
		return err
	}

	r, err := codec.DecodeWith(c, func() *shape.Rectangle { return shape.NewRectangle(0, 0) }, text)
	if err != nil {
		var pe *codec.ParseError
		if errors.As(err, &pe) {
			log.Debug("Unable to parse input", zap.String("codec", pe.Codec), zap.String("input", text))
		}
		return err
	}

	_, err = fmt.Fprintf(output(cmd), "%s %g\n", r, r.Area())
	return err
}
