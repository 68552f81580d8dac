// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"objkit/codec"
	"objkit/config"
	"objkit/selector"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Log:   zap.NewNop(),
		start: time.Now(),
	}
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Codec returns codec for requested format name, empty name selects codec
// from configuration.
func (e *LocalEnv) Codec(name string) (codec.Codec, error) {
	conf := config.CodecConfig{}
	if e.Cfg != nil {
		conf = e.Cfg.Codec
	}
	if len(name) > 0 {
		f, err := codec.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("unable to select codec: %w", err)
		}
		conf.Format = f
	}
	return conf.Codec()
}

// Selectors returns selector builder logging to program log.
func (e *LocalEnv) Selectors() selector.Builder {
	return selector.NewBuilder(e.Log)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
