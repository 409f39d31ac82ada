package tree

import "github.com/leapstack-labs/sqlsift/pkg/token"

// Predicate tests a child node during searches.
type Predicate func(Node) bool

// TokenFirst returns the first direct child. With skip set, whitespace and
// comment children are passed over. Returns nil for an empty list.
func (tl *TokenList) TokenFirst(skip bool) Node {
	for _, c := range tl.children {
		if skip && insignificant(c) {
			continue
		}
		return c
	}
	return nil
}

// TokenMatching returns the first child at or after start satisfying any of
// the predicates, or nil.
func (tl *TokenList) TokenMatching(preds []Predicate, start int) Node {
	for i := start; i < len(tl.children); i++ {
		for _, p := range preds {
			if p(tl.children[i]) {
				return tl.children[i]
			}
		}
	}
	return nil
}

// TokenIndex returns the position of n among the direct children, or -1.
func (tl *TokenList) TokenIndex(n Node) int {
	for i, c := range tl.children {
		if c == n {
			return i
		}
	}
	return -1
}

// TokenNext returns the first significant child after index i, skipping
// whitespace and comments. Returns (-1, nil) when none remains.
func (tl *TokenList) TokenNext(i int) (int, Node) {
	for j := i + 1; j < len(tl.children); j++ {
		if !insignificant(tl.children[j]) {
			return j, tl.children[j]
		}
	}
	return -1, nil
}

// TokenPrev returns the last significant child before index i, skipping
// whitespace and comments. Returns (-1, nil) when none exists.
func (tl *TokenList) TokenPrev(i int) (int, Node) {
	for j := i - 1; j >= 0; j-- {
		if !insignificant(tl.children[j]) {
			return j, tl.children[j]
		}
	}
	return -1, nil
}

// GroupRange replaces children[start:end] with a single composite node of
// the given type covering exactly that span, and returns the new node. The
// span keeps its order, so the round-trip invariant is preserved.
func (tl *TokenList) GroupRange(start, end int, t *token.Type) *TokenList {
	span := make([]Node, end-start)
	copy(span, tl.children[start:end])
	grp := NewList(t, span)
	grp.parent = tl

	rest := append([]Node{grp}, tl.children[end:]...)
	tl.children = append(tl.children[:start], rest...)
	return grp
}

// InsertBefore inserts n as a direct child at position i.
func (tl *TokenList) InsertBefore(i int, n Node) {
	if i < 0 {
		i = 0
	}
	if i > len(tl.children) {
		i = len(tl.children)
	}
	n.setParent(tl)
	tl.children = append(tl.children[:i], append([]Node{n}, tl.children[i:]...)...)
}

// HasAncestor reports whether ancestor appears on n's parent chain.
func HasAncestor(n Node, ancestor *TokenList) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
