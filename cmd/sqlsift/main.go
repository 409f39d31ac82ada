// Package main provides the CLI for the sqlsift SQL parser.
package main

import (
	"github.com/leapstack-labs/sqlsift/internal/cli"
	_ "github.com/leapstack-labs/sqlsift/pkg/dialects/tsql"
)

func main() {
	cli.Execute()
}
