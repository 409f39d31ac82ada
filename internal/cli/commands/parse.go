package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	sqlsift "github.com/leapstack-labs/sqlsift"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Dialect string
	File    string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [sql]",
		Short: "Show the grouped statement tree",
		Long: `Parse the input and print one indented tree per statement, with the
composite node kinds and the leaf tokens under them.`,
		Example: `  # Parse a statement
  sqlsift parse "select a, b from t where a = 1"

  # Parse stdin
  cat query.sql | sqlsift parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args, opts.File)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, stmt := range sqlsift.Parse(sql, sqlsift.WithDialect(opts.Dialect)) {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printNode(out, stmt, 0)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Dialect, "dialect", "d", "", "SQL dialect to parse with")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from a file")

	return cmd
}

func printNode(w io.Writer, n tree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *tree.TokenList:
		fmt.Fprintf(w, "%s%s\n", indent, v.Type())
		for _, c := range v.Children() {
			printNode(w, c, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%s %q\n", indent, n.Type(), n.Raw())
	}
}
