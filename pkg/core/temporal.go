package core

import "strings"

// TemporalUnit names a granularity or sub-component of time used by the
// dialect expression builders. Units without an "-of-" infix truncate a
// timestamp down to the start of the named period; units with "-of-"
// extract the integer sub-component instead.
type TemporalUnit string

// The closed set of temporal units. Drivers must either handle a unit or
// reject it explicitly; silently producing SQL for an unhandled unit is a
// bug, not a fallback.
const (
	UnitDefault       TemporalUnit = "default"
	UnitMinute        TemporalUnit = "minute"
	UnitMinuteOfHour  TemporalUnit = "minute-of-hour"
	UnitHour          TemporalUnit = "hour"
	UnitHourOfDay     TemporalUnit = "hour-of-day"
	UnitDay           TemporalUnit = "day"
	UnitDayOfWeek     TemporalUnit = "day-of-week"
	UnitDayOfMonth    TemporalUnit = "day-of-month"
	UnitDayOfYear     TemporalUnit = "day-of-year"
	UnitWeek          TemporalUnit = "week"
	UnitWeekOfYear    TemporalUnit = "week-of-year"
	UnitMonth         TemporalUnit = "month"
	UnitMonthOfYear   TemporalUnit = "month-of-year"
	UnitQuarter       TemporalUnit = "quarter"
	UnitQuarterOfYear TemporalUnit = "quarter-of-year"
	UnitYear          TemporalUnit = "year"
)

// allUnits is the membership table for Valid and the iteration order for
// AllUnits. The order matches the constant declarations above.
var allUnits = []TemporalUnit{
	UnitDefault,
	UnitMinute,
	UnitMinuteOfHour,
	UnitHour,
	UnitHourOfDay,
	UnitDay,
	UnitDayOfWeek,
	UnitDayOfMonth,
	UnitDayOfYear,
	UnitWeek,
	UnitWeekOfYear,
	UnitMonth,
	UnitMonthOfYear,
	UnitQuarter,
	UnitQuarterOfYear,
	UnitYear,
}

// AllUnits returns every temporal unit in declaration order.
func AllUnits() []TemporalUnit {
	units := make([]TemporalUnit, len(allUnits))
	copy(units, allUnits)
	return units
}

// Valid reports whether u is a member of the closed unit set.
func (u TemporalUnit) Valid() bool {
	for _, known := range allUnits {
		if u == known {
			return true
		}
	}
	return false
}

// IsExtraction reports whether the unit names an integer sub-component
// (day-of-week, quarter-of-year, ...) rather than a truncation target.
func (u TemporalUnit) IsExtraction() bool {
	return strings.Contains(string(u), "-of-")
}

// TimestampPrecision is the resolution of a numeric Unix timestamp handed
// to a driver's unix-timestamp conversion.
type TimestampPrecision string

const (
	PrecisionSeconds      TimestampPrecision = "seconds"
	PrecisionMilliseconds TimestampPrecision = "milliseconds"
)
