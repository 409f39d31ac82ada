package grouping

import (
	"github.com/leapstack-labs/sqlsift/pkg/dialect"
	"github.com/leapstack-labs/sqlsift/pkg/token"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
)

// Split cuts a flat token stream into per-statement slices. A statement
// ends after a semicolon outside parentheses, or after a dialect batch
// separator word like GO. Whitespace following the terminator stays with
// the statement it ends, so the slices concatenate back to the input.
func Split(tokens []*tree.Token, d *dialect.Dialect) [][]*tree.Token {
	var (
		out   [][]*tree.Token
		cur   []*tree.Token
		depth int
		cut   bool
	)
	for _, tok := range tokens {
		if cut && !tok.Type().Matches(token.Whitespace) {
			out = append(out, cur)
			cur, cut = nil, false
		}
		cur = append(cur, tok)

		switch {
		case tok.Type() == token.Punctuation:
			switch tok.Raw() {
			case "(":
				depth++
			case ")":
				if depth > 0 {
					depth--
				}
			case ";":
				if depth == 0 {
					cut = true
				}
			}
		case depth == 0 && d != nil && d.IsBatchSeparator(tok.Raw()):
			cut = true
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
