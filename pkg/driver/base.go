package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/expr"
	"github.com/querybridge/querybridge/pkg/query"
)

// BaseSQL provides the generic-SQL implementation of the dialect
// operations. Embed it in concrete drivers to inherit ANSI-flavored
// behavior and override only what the backend does differently.
//
// BaseSQL deliberately does not implement Name, Key, DetailsFields, or
// SpecFromDetails; those have no generic form.
type BaseSQL struct{}

// BaseType knows no native types; everything resolves to Unknown. Drivers
// override this with a table lookup via MapNativeType.
func (BaseSQL) BaseType(string) core.FieldType {
	return core.FieldTypeUnknown
}

// truncParts maps truncation units to DATE_TRUNC field names.
var truncParts = map[core.TemporalUnit]string{
	core.UnitMinute:  "minute",
	core.UnitHour:    "hour",
	core.UnitDay:     "day",
	core.UnitWeek:    "week",
	core.UnitMonth:   "month",
	core.UnitQuarter: "quarter",
	core.UnitYear:    "year",
}

// extractParts maps extraction units to EXTRACT field names.
var extractParts = map[core.TemporalUnit]string{
	core.UnitMinuteOfHour:  "MINUTE",
	core.UnitHourOfDay:     "HOUR",
	core.UnitDayOfWeek:     "DOW",
	core.UnitDayOfMonth:    "DAY",
	core.UnitDayOfYear:     "DOY",
	core.UnitWeekOfYear:    "WEEK",
	core.UnitMonthOfYear:   "MONTH",
	core.UnitQuarterOfYear: "QUARTER",
}

// Date implements truncation with DATE_TRUNC and extraction with EXTRACT.
func (BaseSQL) Date(unit core.TemporalUnit, e expr.Expr) (expr.Expr, error) {
	if unit == core.UnitDefault {
		return e, nil
	}
	if part, ok := extractParts[unit]; ok {
		return expr.ExtractPart(part, e), nil
	}
	if part, ok := truncParts[unit]; ok {
		return expr.Fn("DATE_TRUNC", expr.String(part), e), nil
	}
	return nil, &UnknownUnitError{Op: "date", Unit: unit}
}

// addableUnits maps DateAdd units to INTERVAL field names and scale.
// Quarter scales to months because interval quarters are not portable.
var addableUnits = map[core.TemporalUnit]struct {
	name  string
	scale int64
}{
	core.UnitMinute:  {"minute", 1},
	core.UnitHour:    {"hour", 1},
	core.UnitDay:     {"day", 1},
	core.UnitWeek:    {"week", 1},
	core.UnitMonth:   {"month", 1},
	core.UnitQuarter: {"month", 3},
	core.UnitYear:    {"year", 1},
}

// DateAdd builds e + INTERVAL 'amount unit'.
func (BaseSQL) DateAdd(unit core.TemporalUnit, amount int64, e expr.Expr) (expr.Expr, error) {
	u, ok := addableUnits[unit]
	if !ok {
		return nil, &UnknownUnitError{Op: "date-add", Unit: unit}
	}
	interval := expr.Raw(fmt.Sprintf("INTERVAL '%d %s'", amount*u.scale, u.name))
	return expr.Op(e, "+", interval), nil
}

// DateInterval is DateAdd anchored at the current datetime.
func (b BaseSQL) DateInterval(unit core.TemporalUnit, amount int64) (expr.Expr, error) {
	return b.DateAdd(unit, amount, b.CurrentDatetimeExpr())
}

// UnixTimestampToTimestamp converts via TO_TIMESTAMP. Milliseconds divide
// by 1000 first and defer to the seconds path.
func (b BaseSQL) UnixTimestampToTimestamp(e expr.Expr, precision core.TimestampPrecision) (expr.Expr, error) {
	switch precision {
	case core.PrecisionSeconds:
		return expr.Fn("TO_TIMESTAMP", e), nil
	case core.PrecisionMilliseconds:
		return b.UnixTimestampToTimestamp(DivideLiteral(e, 1000), core.PrecisionSeconds)
	default:
		return nil, fmt.Errorf("unix-timestamp conversion: unsupported precision %q", precision)
	}
}

// ApplyLimit appends a generic LIMIT clause.
func (BaseSQL) ApplyLimit(p query.Plan, limit int) query.Plan {
	return p.WithRowLimit(expr.Raw(fmt.Sprintf("LIMIT %d", limit)))
}

// ExcludedSchemas excludes nothing by default.
func (BaseSQL) ExcludedSchemas() map[string]struct{} {
	return nil
}

// StdDevFn returns the ANSI population standard deviation aggregate.
func (BaseSQL) StdDevFn() string { return "STDDEV_POP" }

// StringLengthFn returns the ANSI string length function.
func (BaseSQL) StringLengthFn() string { return "CHAR_LENGTH" }

// CurrentDatetimeExpr returns the ANSI current timestamp expression.
func (BaseSQL) CurrentDatetimeExpr() expr.Expr {
	return expr.Raw("CURRENT_TIMESTAMP")
}

// MapNativeType resolves a backend-native type identifier against a
// driver's known-types table. Lookup is case-insensitive. A miss yields
// core.FieldTypeUnknown: by the contract that is a mapping, not an error.
func MapNativeType(table map[string]core.FieldType, native string) core.FieldType {
	return table[strings.ToUpper(strings.TrimSpace(native))]
}

// DivideLiteral divides e by n. When e is an integer literal the division
// folds at build time (SQL integer semantics, truncation toward zero), so
// literal timestamps produce the same fragment regardless of the precision
// they arrived in.
func DivideLiteral(e expr.Expr, n int64) expr.Expr {
	if lit, ok := e.(expr.Literal); ok && lit.Kind == expr.LiteralNumber {
		if v, err := strconv.ParseInt(lit.Value, 10, 64); err == nil {
			return expr.Int(v / n)
		}
	}
	return expr.Op(e, "/", expr.Int(n))
}
