package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/querybridge/querybridge/pkg/driver"
)

type fieldInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// NewFieldsCommand creates the fields command.
func NewFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <dialect>",
		Short: "Show a dialect's connection detail fields",
		Long: `Print the connection parameters a dialect accepts, in the order a
configuration form should present them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := RuntimeFrom(cmd.Context())

			d, err := rt.Registry.Get(driver.Key(args[0]))
			if err != nil {
				return err
			}

			fields := make([]fieldInfo, 0, len(d.DetailsFields()))
			for _, f := range d.DetailsFields() {
				fields = append(fields, fieldInfo{
					Name:        f.Name,
					DisplayName: f.DisplayName,
					Type:        string(f.Kind),
					Required:    f.Required,
					Default:     f.Default,
					Placeholder: f.Placeholder,
				})
			}

			if rt.Config.Output == OutputJSON {
				return renderJSON(cmd.OutOrStdout(), fields)
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"NAME", "DISPLAY NAME", "TYPE", "REQUIRED", "DEFAULT"})
			for _, f := range fields {
				def := ""
				if f.Default != nil {
					def = fmt.Sprintf("%v", f.Default)
				}
				t.AppendRow(table.Row{f.Name, f.DisplayName, f.Type, f.Required, def})
			}
			t.Render()
			return nil
		},
	}
}
