// Package main provides tests for the sqlsift CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlsift/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "sqlsift") {
		t.Errorf("version output missing name: %q", out)
	}
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "tokens", "select * from foo;")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	for _, want := range []string{"Keyword.DML", "Wildcard", "Punctuation"} {
		if !strings.Contains(out, want) {
			t.Errorf("tokens output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "select a, b from t where a = 1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, want := range []string{"Group.Statement", "Group.Where", "Group.IdentifierList"} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output missing %q:\n%s", want, out)
		}
	}
}

func TestSplitCommand(t *testing.T) {
	out, err := run(t, "split", "select 1; select 2;")
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected two statements, got:\n%s", out)
	}
}

func TestDialectsCommand(t *testing.T) {
	out, err := run(t, "dialects")
	if err != nil {
		t.Fatalf("dialects failed: %v", err)
	}
	if !strings.Contains(out, "ansi") || !strings.Contains(out, "transactsql") {
		t.Errorf("dialects output incomplete:\n%s", out)
	}
}

func TestTokensConflictingInput(t *testing.T) {
	if _, err := run(t, "tokens", "--file", "x.sql", "select 1"); err == nil {
		t.Fatal("expected an error for both --file and an argument")
	}
}
