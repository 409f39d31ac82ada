// Package tree holds the token tree produced by lexing and grouping: leaf
// Tokens, composite TokenLists, and the traversal helpers consumers use to
// walk a parsed statement.
//
// The round-trip invariant holds throughout: concatenating the Raw value of
// every leaf token in depth-first order reproduces the original input text
// exactly. Grouping only re-nests tokens, it never drops, duplicates, or
// reorders them.
package tree

import (
	"strings"

	"github.com/leapstack-labs/sqlsift/pkg/token"
)

// Node is either a leaf *Token or a composite *TokenList.
type Node interface {
	// Type returns the node classification; nil for untyped groups.
	Type() *token.Type
	// Raw returns the exact source text covered by this node.
	Raw() string
	// Parent returns the containing list, or nil at the root. The link is
	// non-owning; ownership runs through the child sequence.
	Parent() *TokenList

	setParent(*TokenList)
}

// Token is a leaf unit of source text. Tokens are created by the lexer and
// never mutated afterwards.
type Token struct {
	ttype  *token.Type
	value  string
	parent *TokenList
}

// NewToken returns a leaf token of the given type holding the exact source
// slice value.
func NewToken(t *token.Type, value string) *Token {
	return &Token{ttype: t, value: value}
}

// Type returns the token classification.
func (t *Token) Type() *token.Type { return t.ttype }

// Raw returns the exact source text, including original whitespace, case,
// and quoting.
func (t *Token) Raw() string { return t.value }

func (t *Token) String() string { return t.value }

// Parent returns the containing list, or nil.
func (t *Token) Parent() *TokenList { return t.parent }

func (t *Token) setParent(p *TokenList) { t.parent = p }

// TokenList is an ordered composite of tokens and nested lists. Child order
// is source order. Lists start flat and are restructured in place by the
// grouping engine; after grouping completes the tree is not mutated again.
type TokenList struct {
	ttype    *token.Type
	children []Node
	parent   *TokenList
}

// NewList returns a composite node of the given type (nil for a plain
// group) adopting the children.
func NewList(t *token.Type, children []Node) *TokenList {
	tl := &TokenList{ttype: t, children: children}
	for _, c := range children {
		c.setParent(tl)
	}
	return tl
}

// NewStatement wraps a flat token run into a statement root.
func NewStatement(tokens []*Token) *TokenList {
	children := make([]Node, len(tokens))
	for i, tok := range tokens {
		children[i] = tok
	}
	return NewList(token.Statement, children)
}

// Type returns the composite classification, or nil for untyped groups.
func (tl *TokenList) Type() *token.Type { return tl.ttype }

// Raw returns the concatenated text of all leaf tokens under this list.
func (tl *TokenList) Raw() string {
	var b strings.Builder
	w := tl.Flatten()
	for tok, ok := w.Next(); ok; tok, ok = w.Next() {
		b.WriteString(tok.Raw())
	}
	return b.String()
}

func (tl *TokenList) String() string { return tl.Raw() }

// Parent returns the containing list, or nil at the root.
func (tl *TokenList) Parent() *TokenList { return tl.parent }

func (tl *TokenList) setParent(p *TokenList) { tl.parent = p }

// Len returns the number of direct children.
func (tl *TokenList) Len() int { return len(tl.children) }

// Child returns the i-th direct child, or nil if out of range.
func (tl *TokenList) Child(i int) Node {
	if i < 0 || i >= len(tl.children) {
		return nil
	}
	return tl.children[i]
}

// Children returns the direct child sequence. Callers must treat the slice
// as read-only.
func (tl *TokenList) Children() []Node { return tl.children }

// Is reports whether the node's type matches t hierarchically. Untyped
// nodes match only the nil wildcard.
func Is(n Node, t *token.Type) bool {
	if n == nil {
		return false
	}
	return n.Type().Matches(t)
}

// IsWhitespace reports whether n is a whitespace token.
func IsWhitespace(n Node) bool { return Is(n, token.Whitespace) }

// IsComment reports whether n is a comment token or a grouped comment.
func IsComment(n Node) bool {
	return Is(n, token.Comment) || Is(n, token.CommentGroup)
}

// insignificant nodes are skipped by keyword-position traversal.
func insignificant(n Node) bool { return IsWhitespace(n) || IsComment(n) }

// KeywordIs reports whether n is a keyword token whose normalized value
// (uppercased, internal whitespace collapsed) equals word.
func KeywordIs(n Node, word string) bool {
	if !Is(n, token.Keyword) {
		return false
	}
	return Normalize(n.Raw()) == word
}

// Normalize uppercases a token value and collapses internal whitespace, so
// multi-word keywords like "END \t IF" compare as "END IF".
func Normalize(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), " "))
}
