// Package commands implements the querybridge subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/querybridge/querybridge/internal/config"
	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/drivers"
)

// Runtime carries the per-invocation dependencies the root command wires
// up: loaded configuration, the driver registry, and the logger.
type Runtime struct {
	Config   *config.Config
	Registry *driver.Registry
	Logger   *slog.Logger
}

type runtimeKey struct{}

// WithRuntime stores rt in ctx for subcommands to retrieve.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFrom retrieves the Runtime from ctx. Commands run outside the
// root command (tests, mostly) get working defaults.
func RuntimeFrom(ctx context.Context) *Runtime {
	if rt, ok := ctx.Value(runtimeKey{}).(*Runtime); ok {
		return rt
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Runtime{
		Config:   &config.Config{Output: config.DefaultOutput},
		Registry: drivers.NewDefaultRegistry(logger),
		Logger:   logger,
	}
}
