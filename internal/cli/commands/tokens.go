package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	sqlsift "github.com/leapstack-labs/sqlsift"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Dialect string
	File    string
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}
	cmd := &cobra.Command{
		Use:   "tokens [sql]",
		Short: "Show the flat token stream",
		Long:  `Lex the input and print every token with its classification.`,
		Example: `  # Tokenize a statement
  sqlsift tokens "select * from foo;"

  # Tokenize a file with the Transact-SQL dialect
  sqlsift tokens --file query.sql --dialect transactsql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, opts.File)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "Type", "Value"})

			for i, tok := range sqlsift.Tokenize(sql, sqlsift.WithDialect(opts.Dialect)) {
				t.AppendRow(table.Row{i, tok.Type().String(), tok.Raw()})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Dialect, "dialect", "d", "", "SQL dialect to lex with")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from a file")

	return cmd
}
