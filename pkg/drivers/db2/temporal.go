package db2

import (
	"fmt"

	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/expr"
)

// truncFormats maps truncation units to TRUNC_TIMESTAMP format elements.
// Week and quarter have no format element and get dedicated arithmetic.
var truncFormats = map[core.TemporalUnit]string{
	core.UnitMinute: "MI",
	core.UnitHour:   "HH24",
	core.UnitDay:    "DD",
	core.UnitMonth:  "MONTH",
	core.UnitYear:   "YEAR",
}

// extractFns maps extraction units to Db2 scalar functions. DAYOFWEEK is
// 1-indexed with Sunday = 1.
var extractFns = map[core.TemporalUnit]string{
	core.UnitMinuteOfHour:  "MINUTE",
	core.UnitHourOfDay:     "HOUR",
	core.UnitDayOfWeek:     "DAYOFWEEK",
	core.UnitDayOfMonth:    "DAY",
	core.UnitDayOfYear:     "DAYOFYEAR",
	core.UnitWeekOfYear:    "WEEK",
	core.UnitMonthOfYear:   "MONTH",
	core.UnitQuarterOfYear: "QUARTER",
}

// Date truncates with TRUNC_TIMESTAMP or extracts with the native scalar
// functions. Weeks are Sunday-start.
func (*Driver) Date(unit core.TemporalUnit, e expr.Expr) (expr.Expr, error) {
	switch unit {
	case core.UnitDefault:
		return e, nil
	case core.UnitWeek:
		return weekTruncate(e), nil
	case core.UnitQuarter:
		return quarterTruncate(e), nil
	}
	if fn, ok := extractFns[unit]; ok {
		return expr.Fn(fn, e), nil
	}
	if format, ok := truncFormats[unit]; ok {
		return expr.Fn("TRUNC_TIMESTAMP", e, expr.String(format)), nil
	}
	return nil, &driver.UnknownUnitError{Op: "date", Unit: unit}
}

// weekTruncate rounds e down to the Sunday starting its week: subtract
// (DAYOFWEEK(e) - 1) days from the date portion, then cast back to a
// timestamp so downstream truncations still see a datetime.
func weekTruncate(e expr.Expr) expr.Expr {
	offset := expr.Op(expr.Fn("DAYOFWEEK", e), "-", expr.Int(1))
	return expr.Fn("TIMESTAMP",
		expr.Op(expr.Fn("DATE", e), "-", expr.Duration(offset, "DAYS")))
}

// quarterTruncate anchors at the year start and adds whole months, since
// TRUNC_TIMESTAMP has no quarter format element.
func quarterTruncate(e expr.Expr) expr.Expr {
	months := expr.Op(
		expr.Op(expr.Fn("QUARTER", e), "-", expr.Int(1)),
		"*", expr.Int(3))
	return expr.Op(
		expr.Fn("TRUNC_TIMESTAMP", e, expr.String("YEAR")),
		"+", expr.Duration(months, "MONTHS"))
}

// durations maps addable units to Db2 labeled-duration keywords. Weeks and
// quarters scale into days and months: Db2 has no WEEKS or QUARTERS label.
var durations = map[core.TemporalUnit]struct {
	label string
	scale int64
}{
	core.UnitMinute:  {"MINUTES", 1},
	core.UnitHour:    {"HOURS", 1},
	core.UnitDay:     {"DAYS", 1},
	core.UnitWeek:    {"DAYS", 7},
	core.UnitMonth:   {"MONTHS", 1},
	core.UnitQuarter: {"MONTHS", 3},
	core.UnitYear:    {"YEARS", 1},
}

// DateAdd builds e + n LABEL using labeled durations. Negative amounts
// flip to subtraction; Db2 rejects negative duration operands.
func (*Driver) DateAdd(unit core.TemporalUnit, amount int64, e expr.Expr) (expr.Expr, error) {
	u, ok := durations[unit]
	if !ok {
		return nil, &driver.UnknownUnitError{Op: "date-add", Unit: unit}
	}
	op, n := "+", amount*u.scale
	if n < 0 {
		op, n = "-", -n
	}
	return expr.Op(e, op, expr.Duration(expr.Int(n), u.label)), nil
}

// DateInterval is DateAdd anchored at CURRENT TIMESTAMP. Spelled out here
// rather than inherited so it picks up the Db2 DateAdd.
func (d *Driver) DateInterval(unit core.TemporalUnit, amount int64) (expr.Expr, error) {
	return d.DateAdd(unit, amount, d.CurrentDatetimeExpr())
}

func epochAnchor() expr.Expr {
	return expr.Raw("TIMESTAMP('1970-01-01 00:00:00')")
}

// UnixTimestampToTimestamp adds a minute duration to the epoch anchor.
// The seconds count is pre-divided by 60 because the labeled-duration
// operand is a 32-bit integer on some Db2 releases; a raw seconds count
// past 2038 overflows it, a minutes count does not.
func (d *Driver) UnixTimestampToTimestamp(e expr.Expr, precision core.TimestampPrecision) (expr.Expr, error) {
	switch precision {
	case core.PrecisionSeconds:
		minutes := driver.DivideLiteral(e, 60)
		return expr.Op(epochAnchor(), "+", expr.Duration(minutes, "MINUTES")), nil
	case core.PrecisionMilliseconds:
		return d.UnixTimestampToTimestamp(driver.DivideLiteral(e, 1000), core.PrecisionSeconds)
	default:
		return nil, fmt.Errorf("unix-timestamp conversion: unsupported precision %q", precision)
	}
}
