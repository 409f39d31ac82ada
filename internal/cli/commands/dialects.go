package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsift/pkg/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered SQL dialects",
		Long: `List every registered dialect, built in or loaded through
--dialects-config.`,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Rules", "Default"})

			for _, name := range dialect.List() {
				d, ok := dialect.Lookup(name)
				if !ok {
					continue
				}
				def := ""
				if d == dialect.Default() {
					def = "*"
				}
				t.AppendRow(table.Row{d.Name, len(d.Rules()), def})
			}
			t.Render()
		},
	}
}
