package tree

// Walker is a lazy depth-first enumerator over the leaf tokens of a list.
// It is a pull iterator: Next produces the next leaf or reports exhaustion.
// A Walker is single-use; call Flatten again for a fresh traversal.
type Walker struct {
	stack [][]Node
}

// Flatten returns a Walker over the leaf tokens under tl, in source order.
func (tl *TokenList) Flatten() *Walker {
	return &Walker{stack: [][]Node{tl.children}}
}

// Next returns the next leaf token, or false when the traversal is done.
func (w *Walker) Next() (*Token, bool) {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		if len(top) == 0 {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		n := top[0]
		w.stack[len(w.stack)-1] = top[1:]
		switch v := n.(type) {
		case *Token:
			return v, true
		case *TokenList:
			w.stack = append(w.stack, v.children)
		}
	}
	return nil, false
}

// Leaves collects the remaining leaf tokens of the traversal.
func (w *Walker) Leaves() []*Token {
	var out []*Token
	for tok, ok := w.Next(); ok; tok, ok = w.Next() {
		out = append(out, tok)
	}
	return out
}
