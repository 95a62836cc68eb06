package db2_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/drivers/db2"
	"github.com/querybridge/querybridge/pkg/expr"
)

func TestDate(t *testing.T) {
	col := expr.Col("created_at")
	tests := []struct {
		unit core.TemporalUnit
		want string
	}{
		{core.UnitDefault, `"created_at"`},
		{core.UnitMinute, `TRUNC_TIMESTAMP("created_at", 'MI')`},
		{core.UnitHour, `TRUNC_TIMESTAMP("created_at", 'HH24')`},
		{core.UnitDay, `TRUNC_TIMESTAMP("created_at", 'DD')`},
		{core.UnitMonth, `TRUNC_TIMESTAMP("created_at", 'MONTH')`},
		{core.UnitYear, `TRUNC_TIMESTAMP("created_at", 'YEAR')`},
		{core.UnitWeek, `TIMESTAMP((DATE("created_at") - (DAYOFWEEK("created_at") - 1) DAYS))`},
		{core.UnitQuarter, `(TRUNC_TIMESTAMP("created_at", 'YEAR') + ((QUARTER("created_at") - 1) * 3) MONTHS)`},
		{core.UnitMinuteOfHour, `MINUTE("created_at")`},
		{core.UnitHourOfDay, `HOUR("created_at")`},
		{core.UnitDayOfWeek, `DAYOFWEEK("created_at")`},
		{core.UnitDayOfMonth, `DAY("created_at")`},
		{core.UnitDayOfYear, `DAYOFYEAR("created_at")`},
		{core.UnitWeekOfYear, `WEEK("created_at")`},
		{core.UnitMonthOfYear, `MONTH("created_at")`},
		{core.UnitQuarterOfYear, `QUARTER("created_at")`},
	}
	d := db2.New()
	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			got, err := d.Date(tt.unit, col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.SQL(got))
		})
	}
}

func TestDateCoversEveryUnit(t *testing.T) {
	d := db2.New()
	for _, unit := range core.AllUnits() {
		_, err := d.Date(unit, expr.Col("ts"))
		assert.NoError(t, err, "unit %s", unit)
	}
}

func TestDateRejectsUnknownUnit(t *testing.T) {
	d := db2.New()
	_, err := d.Date(core.TemporalUnit("century"), expr.Col("ts"))

	var unitErr *driver.UnknownUnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "date", unitErr.Op)
	assert.Equal(t, core.TemporalUnit("century"), unitErr.Unit)
}

func TestDateAdd(t *testing.T) {
	col := expr.Col("created_at")
	tests := []struct {
		name   string
		unit   core.TemporalUnit
		amount int64
		want   string
	}{
		{"minutes", core.UnitMinute, 30, `("created_at" + 30 MINUTES)`},
		{"hours", core.UnitHour, 12, `("created_at" + 12 HOURS)`},
		{"days", core.UnitDay, 1, `("created_at" + 1 DAYS)`},
		{"weeks scale to days", core.UnitWeek, 3, `("created_at" + 21 DAYS)`},
		{"months", core.UnitMonth, 3, `("created_at" + 3 MONTHS)`},
		{"quarters scale to months", core.UnitQuarter, 2, `("created_at" + 6 MONTHS)`},
		{"years", core.UnitYear, 1, `("created_at" + 1 YEARS)`},
		{"negative flips to subtraction", core.UnitDay, -7, `("created_at" - 7 DAYS)`},
	}
	d := db2.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.DateAdd(tt.unit, tt.amount, col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.SQL(got))
		})
	}
}

func TestDateAddRejectsExtractionUnits(t *testing.T) {
	d := db2.New()
	_, err := d.DateAdd(core.UnitDayOfWeek, 1, expr.Col("ts"))

	var unitErr *driver.UnknownUnitError
	require.True(t, errors.As(err, &unitErr))
	assert.Equal(t, "date-add", unitErr.Op)
}

func TestDateIntervalAnchorsAtCurrentTimestamp(t *testing.T) {
	d := db2.New()
	got, err := d.DateInterval(core.UnitQuarter, -2)
	require.NoError(t, err)
	assert.Equal(t, `(CURRENT TIMESTAMP - 6 MONTHS)`, expr.SQL(got))
}

func TestUnixTimestampToTimestamp(t *testing.T) {
	d := db2.New()

	t.Run("seconds column pre-divides to minutes", func(t *testing.T) {
		got, err := d.UnixTimestampToTimestamp(expr.Col("ts"), core.PrecisionSeconds)
		require.NoError(t, err)
		assert.Equal(t, `(TIMESTAMP('1970-01-01 00:00:00') + ("ts" / 60) MINUTES)`, expr.SQL(got))
	})

	t.Run("milliseconds column divides by 1000 first", func(t *testing.T) {
		got, err := d.UnixTimestampToTimestamp(expr.Col("ts"), core.PrecisionMilliseconds)
		require.NoError(t, err)
		assert.Equal(t, `(TIMESTAMP('1970-01-01 00:00:00') + (("ts" / 1000) / 60) MINUTES)`, expr.SQL(got))
	})

	t.Run("zero stays at the epoch anchor", func(t *testing.T) {
		got, err := d.UnixTimestampToTimestamp(expr.Int(0), core.PrecisionSeconds)
		require.NoError(t, err)
		assert.Equal(t, `(TIMESTAMP('1970-01-01 00:00:00') + 0 MINUTES)`, expr.SQL(got))
	})

	t.Run("literal milliseconds and seconds agree", func(t *testing.T) {
		ms, err := d.UnixTimestampToTimestamp(expr.Int(1696204800000), core.PrecisionMilliseconds)
		require.NoError(t, err)
		s, err := d.UnixTimestampToTimestamp(expr.Int(1696204800), core.PrecisionSeconds)
		require.NoError(t, err)
		assert.Equal(t, expr.SQL(s), expr.SQL(ms))
	})

	t.Run("unsupported precision fails", func(t *testing.T) {
		_, err := d.UnixTimestampToTimestamp(expr.Col("ts"), core.TimestampPrecision("nanoseconds"))
		assert.Error(t, err)
	})
}
