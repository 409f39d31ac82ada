// Package sqlsift is a non-validating SQL parser. It lexes SQL of any
// dialect into a flat token stream and folds that stream into a shallow
// statement tree without checking the SQL against a grammar, so malformed
// input still parses and every tree prints back to the exact input text.
//
// The three entry points mirror the three stages: Tokenize for the flat
// stream, Split for statement texts, Parse for grouped statement trees.
package sqlsift

import (
	"io"
	"strings"

	"github.com/leapstack-labs/sqlsift/pkg/dialect"
	"github.com/leapstack-labs/sqlsift/pkg/grouping"
	"github.com/leapstack-labs/sqlsift/pkg/lexer"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
)

// Option adjusts how input is parsed.
type Option func(*options)

type options struct {
	dialect *dialect.Dialect
}

// WithDialect selects a registered dialect by name. Unknown or empty
// names fall back to the default dialect.
func WithDialect(name string) Option {
	return func(o *options) { o.dialect = dialect.Resolve(name) }
}

func newOptions(opts []Option) *options {
	o := &options{dialect: dialect.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse lexes sql, splits it into statements, and returns each statement
// as a grouped tree.
func Parse(sql string, opts ...Option) []*tree.TokenList {
	o := newOptions(opts)
	return build(lexer.Tokenize(sql, o.dialect), o.dialect)
}

// ParseReader is Parse for streamed input.
func ParseReader(r io.Reader, opts ...Option) []*tree.TokenList {
	o := newOptions(opts)
	return build(lexer.TokenizeReader(r, o.dialect), o.dialect)
}

func build(tokens []*tree.Token, d *dialect.Dialect) []*tree.TokenList {
	chunks := grouping.Split(tokens, d)
	stmts := make([]*tree.TokenList, 0, len(chunks))
	for _, chunk := range chunks {
		stmts = append(stmts, grouping.Group(tree.NewStatement(chunk)))
	}
	return stmts
}

// Tokenize returns the flat token stream for sql without any grouping.
func Tokenize(sql string, opts ...Option) []*tree.Token {
	o := newOptions(opts)
	return lexer.Tokenize(sql, o.dialect)
}

// Split returns the text of each statement in sql, outer whitespace
// trimmed. Empty statements are dropped.
func Split(sql string, opts ...Option) []string {
	o := newOptions(opts)
	chunks := grouping.Split(lexer.Tokenize(sql, o.dialect), o.dialect)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		var b strings.Builder
		for _, tok := range chunk {
			b.WriteString(tok.Raw())
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
