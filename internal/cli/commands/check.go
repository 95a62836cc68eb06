package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/querybridge/querybridge/pkg/driver"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configured sources",
		Long: `Resolve every source in querybridge.yaml against its dialect driver
and build its connection spec. Misconfigured sources are reported here,
before any SQL would be generated against them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd.Context())
			out := cmd.OutOrStdout()

			names := rt.Config.SourceNames()
			if len(names) == 0 {
				fmt.Fprintln(out, "no sources configured")
				return nil
			}

			failed := 0
			for _, name := range names {
				src := rt.Config.Sources[name]

				d, err := rt.Registry.Get(driver.Key(src.Type))
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", name, err)
					continue
				}

				spec, err := d.SpecFromDetails(src.Details)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", name, err)
					continue
				}

				rt.Logger.Debug("source resolved",
					slog.String("source", name),
					slog.String("dialect", string(d.Key())))
				fmt.Fprintf(out, "OK    %s: %s %s\n", name, spec.Subprotocol, spec.Subname)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d sources failed validation", failed, len(names))
			}
			return nil
		},
	}
}
