package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type dialectInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered SQL dialects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd.Context())

			dialects := make([]dialectInfo, 0, len(rt.Registry.Keys()))
			for _, key := range rt.Registry.Keys() {
				d, err := rt.Registry.Get(key)
				if err != nil {
					return err
				}
				dialects = append(dialects, dialectInfo{Key: string(key), Name: d.Name()})
			}

			if rt.Config.Output == OutputJSON {
				return renderJSON(cmd.OutOrStdout(), dialects)
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"KEY", "NAME"})
			for _, d := range dialects {
				t.AppendRow(table.Row{d.Key, d.Name})
			}
			t.Render()
			return nil
		},
	}
}
