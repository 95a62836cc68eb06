// Package driver defines the contract every SQL dialect implementation
// satisfies, plus the registry the query engine resolves drivers from.
//
// Concrete driver implementations live in pkg/drivers/ subdirectories.
// They embed BaseSQL for the generic-SQL behavior and override only what
// their backend does differently.
package driver

import (
	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/expr"
	"github.com/querybridge/querybridge/pkg/query"
)

// Key is the opaque dialect identifier a driver registers under. One Key
// maps to exactly one driver instance for the process lifetime.
type Key string

// Driver is the capability set a dialect implementation provides to the
// query engine. All methods are pure: they build specs and SQL fragments,
// never execute them, so a Driver value is safe for concurrent use.
type Driver interface {
	// Name is the human-readable backend name ("IBM Db2").
	Name() string

	// Key is the registry lookup key ("db2").
	Key() Key

	// DetailsFields describes the connection parameters this driver
	// accepts, in the order a configuration form should present them.
	DetailsFields() []core.DetailsField

	// SpecFromDetails builds a ConnectionSpec from raw user-supplied
	// details, merging in dialect defaults. It fails with
	// *InvalidDetailsError when a required identity field is missing,
	// never by substituting an empty string.
	SpecFromDetails(details map[string]any) (core.ConnectionSpec, error)

	// BaseType maps a backend-native column type identifier to the
	// vendor-neutral field type. Total: unrecognized identifiers map to
	// core.FieldTypeUnknown, never to an error.
	BaseType(nativeType string) core.FieldType

	// Date truncates e to the start of the unit's period, or extracts the
	// unit's integer sub-component for "-of-" units. An unrecognized unit
	// is a programmer error and fails with *UnknownUnitError.
	Date(unit core.TemporalUnit, e expr.Expr) (expr.Expr, error)

	// DateAdd adds amount units to e; amount may be negative.
	DateAdd(unit core.TemporalUnit, amount int64, e expr.Expr) (expr.Expr, error)

	// DateInterval is DateAdd anchored at the backend's current datetime.
	DateInterval(unit core.TemporalUnit, amount int64) (expr.Expr, error)

	// UnixTimestampToTimestamp converts a numeric Unix timestamp
	// expression to the backend's datetime type.
	UnixTimestampToTimestamp(e expr.Expr, precision core.TimestampPrecision) (expr.Expr, error)

	// ApplyLimit returns a copy of the plan capped to limit rows using
	// the backend's native clause. Pure transformation.
	ApplyLimit(p query.Plan, limit int) query.Plan

	// ExcludedSchemas lists schemas introspection must skip (system
	// catalogs). Keys are schema names as the backend reports them.
	ExcludedSchemas() map[string]struct{}

	// StdDevFn is the backend's standard-deviation aggregate name.
	StdDevFn() string

	// StringLengthFn is the backend's string-length function name.
	StringLengthFn() string

	// CurrentDatetimeExpr is the backend's "now" expression.
	CurrentDatetimeExpr() expr.Expr
}
