package tree

import (
	"strings"

	"github.com/leapstack-labs/sqlsift/pkg/token"
)

// StatementType returns the normalized leading keyword of a statement
// (SELECT, INSERT, CREATE OR REPLACE, ...) or UNKNOWN when the statement
// does not start with a DML/DDL/DCL keyword.
func (tl *TokenList) StatementType() string {
	n := tl.TokenFirst(true)
	if n == nil {
		return "UNKNOWN"
	}
	t := n.Type()
	if t.Matches(token.KeywordDML) || t.Matches(token.KeywordDDL) || t.Matches(token.KeywordDCL) {
		return Normalize(n.Raw())
	}
	return "UNKNOWN"
}

// RealName returns the unquoted name this identifier refers to: the part
// after the last dot for qualified names, otherwise the first name-shaped
// child, ignoring any alias.
func (tl *TokenList) RealName() string {
	if i := tl.lastDot(); i >= 0 {
		if _, n := tl.TokenNext(i); n != nil {
			return nameOf(n)
		}
		return ""
	}
	if expr, _ := tl.aliasSplit(); expr != nil {
		return nameOf(expr)
	}
	for _, c := range tl.children {
		if nameShaped(c) {
			return nameOf(c)
		}
	}
	return ""
}

// ParentName returns the qualifier before the last dot of a qualified
// identifier (b for a.b.c), or the empty string.
func (tl *TokenList) ParentName() string {
	i := tl.lastDot()
	if i < 0 {
		return ""
	}
	if _, n := tl.TokenPrev(i); n != nil {
		return nameOf(n)
	}
	return ""
}

// Alias returns the alias of an aliased identifier, explicit (AS x) or
// implicit (expr x), or the empty string when there is none.
func (tl *TokenList) Alias() string {
	if _, alias := tl.aliasSplit(); alias != nil {
		return nameOf(alias)
	}
	return ""
}

// Arguments returns the argument nodes of a function call: the significant
// children inside its parenthesis, with the bracketing punctuation and any
// comma run unwrapped.
func (tl *TokenList) Arguments() []Node {
	var parens *TokenList
	for _, c := range tl.children {
		if sub, ok := c.(*TokenList); ok && Is(sub, token.Parenthesis) {
			parens = sub
			break
		}
	}
	if parens == nil {
		return nil
	}
	inner := significantInside(parens)
	if len(inner) == 1 {
		if lst, ok := inner[0].(*TokenList); ok && Is(lst, token.IdentifierList) {
			var out []Node
			for _, c := range lst.children {
				if insignificant(c) || isPunct(c, ",") {
					continue
				}
				out = append(out, c)
			}
			return out
		}
	}
	return inner
}

// aliasSplit returns the aliased expression and the alias node, or nils.
// An explicit alias follows an AS keyword; an implicit alias is a trailing
// name-shaped child separated from the expression by whitespace.
func (tl *TokenList) aliasSplit() (expr, alias Node) {
	for i, c := range tl.children {
		if KeywordIs(c, "AS") {
			_, alias = tl.TokenNext(i)
			_, expr = tl.TokenPrev(i)
			return expr, alias
		}
	}
	last, n := tl.TokenPrev(len(tl.children))
	if last <= 0 || n == nil || !nameShaped(n) {
		return nil, nil
	}
	if !IsWhitespace(tl.Child(last - 1)) {
		return nil, nil
	}
	first, f := tl.TokenNext(-1)
	if f == nil || first == last {
		return nil, nil
	}
	return f, n
}

// lastDot returns the index of the last dot punctuation child, or -1.
func (tl *TokenList) lastDot() int {
	for i := len(tl.children) - 1; i >= 0; i-- {
		if isPunct(tl.children[i], ".") {
			return i
		}
	}
	return -1
}

func isPunct(n Node, text string) bool {
	return Is(n, token.Punctuation) && n.Raw() == text
}

// nameShaped reports whether n can serve as a name: a plain or quoted name
// token, or a grouped identifier.
func nameShaped(n Node) bool {
	if Is(n, token.Name) || Is(n, token.StringSymbol) || Is(n, token.Identifier) {
		return true
	}
	if t, ok := n.(*Token); ok && Is(t, token.Name) {
		return true
	}
	return false
}

func nameOf(n Node) string {
	switch v := n.(type) {
	case *TokenList:
		if name := v.RealName(); name != "" {
			return name
		}
		return Unquote(strings.TrimSpace(v.Raw()))
	default:
		return Unquote(n.Raw())
	}
}

func significantInside(parens *TokenList) []Node {
	var out []Node
	for i, c := range parens.children {
		if i == 0 || i == len(parens.children)-1 {
			if isPunct(c, "(") || isPunct(c, ")") {
				continue
			}
		}
		if insignificant(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Unquote strips one level of identifier quoting: "x", `x`, or [x].
// Doubled quote escapes inside the delimiters are collapsed.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	switch {
	case s[0] == '"' && s[len(s)-1] == '"':
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	case s[0] == '`' && s[len(s)-1] == '`':
		return strings.ReplaceAll(s[1:len(s)-1], "``", "`")
	case s[0] == '[' && s[len(s)-1] == ']':
		return s[1 : len(s)-1]
	}
	return s
}
