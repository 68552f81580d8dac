package tasks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/shape"
)

// Area prints rectangle built from WIDTH and HEIGHT arguments and its area.
func Area(ctx context.Context, cmd *cli.Command) error {
	_, log, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Args().Len() < 2 {
		return errors.New("both width and height must be specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	var dims [2]float64
	for i := range dims {
		arg := cmd.Args().Get(i)
		if dims[i], err = strconv.ParseFloat(arg, 64); err != nil {
			return fmt.Errorf("unable to parse dimension '%s': %w", arg, err)
		}
	}

	r := shape.NewRectangle(dims[0], dims[1])
	log.Debug("Rectangle created", zap.Stringer("rectangle", r))

	_, err = fmt.Fprintf(output(cmd), "%s %s\n", r, strconv.FormatFloat(r.Area(), 'g', -1, 64))
	return err
}
