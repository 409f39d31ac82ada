// Package cli provides the command-line interface for sqlsift.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlsift/internal/cli/commands"
	"github.com/leapstack-labs/sqlsift/pkg/dialect"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		dialectsFile string
		verbose      bool
	)

	rootCmd := &cobra.Command{
		Use:   "sqlsift",
		Short: "sqlsift - non-validating SQL parser",
		Long: `sqlsift lexes SQL of any dialect into a token stream and groups it
into a statement tree without validating it against a grammar. Malformed
SQL still parses, and output always reproduces the input text exactly.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})))

			if dialectsFile != "" {
				if err := dialect.LoadFile(dialectsFile); err != nil {
					return fmt.Errorf("loading dialects: %w", err)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&dialectsFile, "dialects-config", "",
		"YAML file with extra dialect definitions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
