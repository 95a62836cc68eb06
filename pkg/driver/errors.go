package driver

import (
	"fmt"

	"github.com/querybridge/querybridge/pkg/core"
)

// UnknownDialectError is returned when a registry lookup misses. Fatal to
// the request; surfaced to the caller unchanged.
type UnknownDialectError struct {
	Key       Key
	Available []Key
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %v\nHint: check the source type in querybridge.yaml", e.Key, e.Available)
}

// UnknownUnitError reports a temporal unit the dialect's expression builder
// does not handle. This is a programmer/config error: it is surfaced
// immediately rather than silently producing wrong SQL.
type UnknownUnitError struct {
	Op   string // the builder operation, e.g. "date", "date-add"
	Unit core.TemporalUnit
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s: unrecognized temporal unit %q", e.Op, e.Unit)
}

// InvalidDetailsError reports raw connection details that cannot produce a
// ConnectionSpec. Surfaced before any connection attempt.
type InvalidDetailsError struct {
	Field  string
	Reason string
}

func (e *InvalidDetailsError) Error() string {
	return fmt.Sprintf("invalid connection details: field %q %s", e.Field, e.Reason)
}
