package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	sqlsift "github.com/leapstack-labs/sqlsift"
)

// SplitOptions holds options for the split command.
type SplitOptions struct {
	Dialect string
	File    string
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}
	cmd := &cobra.Command{
		Use:   "split [sql]",
		Short: "Split input into individual statements",
		Long:  `Split the input on statement boundaries and print one statement per line.`,
		Example: `  # Split a script
  sqlsift split "select 1; select 2;"

  # Split a Transact-SQL script on GO separators
  sqlsift split --file batch.sql --dialect transactsql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, opts.File)
			if err != nil {
				return err
			}
			for _, stmt := range sqlsift.Split(sql, sqlsift.WithDialect(opts.Dialect)) {
				fmt.Fprintln(cmd.OutOrStdout(), stmt)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Dialect, "dialect", "d", "", "SQL dialect to split with")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from a file")

	return cmd
}
