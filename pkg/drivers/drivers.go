// Package drivers wires the shipped dialect drivers into a registry.
// Registration is explicit: callers construct a registry and hold it,
// there is no package-level global and no init-time side effects.
package drivers

import (
	"log/slog"

	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/drivers/db2"
)

// NewDefaultRegistry returns a registry holding every built-in driver.
// A nil logger disables registration logging.
func NewDefaultRegistry(logger *slog.Logger) *driver.Registry {
	r := driver.NewRegistry(logger)
	r.Register(db2.New())
	return r
}
