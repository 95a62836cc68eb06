package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/expr"
	"github.com/querybridge/querybridge/pkg/query"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var (
		unit   string
		column string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "render <dialect>",
		Short: "Render sample SQL for a dialect",
		Long: `Render representative SQL fragments for a dialect: temporal truncation
and extraction, date arithmetic, unix timestamp conversion, and a
row-limited sample statement.`,
		Example: `  # Everything db2 generates for the default column
  querybridge render db2

  # A single unit
  querybridge render db2 --unit week

  # Different column and row cap
  querybridge render db2 --column order_ts --limit 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := RuntimeFrom(cmd.Context())

			d, err := rt.Registry.Get(driver.Key(args[0]))
			if err != nil {
				return err
			}
			return renderSamples(cmd.OutOrStdout(), d, core.TemporalUnit(unit), column, limit)
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "render a single temporal unit instead of all")
	cmd.Flags().StringVar(&column, "column", "created_at", "column name used in the samples")
	cmd.Flags().IntVar(&limit, "limit", 10, "row limit for the sample statement")

	return cmd
}

func renderSamples(w io.Writer, d driver.Driver, unit core.TemporalUnit, column string, limit int) error {
	col := expr.Col(column)

	units := core.AllUnits()
	if unit != "" {
		units = []core.TemporalUnit{unit}
	}
	for _, u := range units {
		e, err := d.Date(u, col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "date %-16s %s\n", u, expr.SQL(e))
	}

	// Arithmetic and conversion samples only make sense for the full run.
	if unit != "" {
		return nil
	}

	add, err := d.DateAdd(core.UnitMonth, 3, col)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "date-add 3 months     %s\n", expr.SQL(add))

	interval, err := d.DateInterval(core.UnitDay, -30)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "date-interval -30d    %s\n", expr.SQL(interval))

	seconds, err := d.UnixTimestampToTimestamp(col, core.PrecisionSeconds)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "unix-ts seconds       %s\n", expr.SQL(seconds))

	millis, err := d.UnixTimestampToTimestamp(col, core.PrecisionMilliseconds)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "unix-ts milliseconds  %s\n", expr.SQL(millis))

	plan := query.Plan{
		Columns: []expr.Expr{col},
		From:    query.Table{Schema: "SALES", Name: "ORDERS"},
		OrderBy: []query.OrderItem{{E: col, Desc: true}},
	}
	fmt.Fprintf(w, "sample statement      %s\n", d.ApplyLimit(plan, limit).SQL())
	return nil
}
