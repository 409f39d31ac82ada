// Package grouping folds a flat token stream into a nested statement
// tree. Passes run in a fixed order over the statement; each one scans
// for a single construct and replaces the matched span with a composite
// node covering exactly that span, so the tree concatenates back to the
// original text after every pass.
package grouping

import (
	"strings"

	"github.com/leapstack-labs/sqlsift/pkg/token"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
)

// Group structures the children of stmt in place and returns it.
func Group(stmt *tree.TokenList) *tree.TokenList {
	for _, pass := range passes {
		pass(stmt)
	}
	return stmt
}

var passes = []func(*tree.TokenList){
	groupComments,
	groupSquareBrackets,
	groupParenthesis,
	groupCase,
	groupFunctions,
	groupWhere,
	groupPeriod,
	groupTypecasts,
	groupIdentifiers,
	groupOperations,
	groupComparisons,
	groupAs,
	groupAliased,
	groupAssignments,
	groupIdentifierLists,
}

// walk applies f to every list in the subtree bottom-up, without
// descending into lists whose kind is in skip. f may regroup the
// children of the list it receives.
func walk(tl *tree.TokenList, skip []*token.Type, f func(*tree.TokenList)) {
	for _, c := range tl.Children() {
		sub, ok := c.(*tree.TokenList)
		if !ok {
			continue
		}
		if !typeIn(sub, skip) {
			walk(sub, skip, f)
		}
	}
	f(tl)
}

func typeIn(n tree.Node, types []*token.Type) bool {
	for _, t := range types {
		if tree.Is(n, t) {
			return true
		}
	}
	return false
}

func isPunct(n tree.Node, text string) bool {
	tok, ok := n.(*tree.Token)
	return ok && tok.Type() == token.Punctuation && tok.Raw() == text
}

func punct(text string) func(tree.Node) bool {
	return func(n tree.Node) bool { return isPunct(n, text) }
}

// matchPairs groups balanced open/close spans, innermost pairs included,
// into nodes of kind t. An unmatched opener stays where it is.
func matchPairs(tl *tree.TokenList, t *token.Type, open, cls func(tree.Node) bool) {
	for _, c := range tl.Children() {
		if sub, ok := c.(*tree.TokenList); ok && !tree.Is(sub, t) {
			matchPairs(sub, t, open, cls)
		}
	}
	i := 0
	if tree.Is(tl, t) {
		// skip the list's own opener
		i = 1
	}
	for ; i < tl.Len(); i++ {
		if !open(tl.Child(i)) {
			continue
		}
		depth, end := 0, -1
		for j := i; j < tl.Len(); j++ {
			if open(tl.Child(j)) {
				depth++
			} else if cls(tl.Child(j)) {
				depth--
				if depth == 0 {
					end = j
					break
				}
			}
		}
		if end < 0 {
			continue
		}
		grp := tl.GroupRange(i, end+1, t)
		matchPairs(grp, t, open, cls)
	}
}

func groupParenthesis(tl *tree.TokenList) {
	matchPairs(tl, token.Parenthesis, punct("("), punct(")"))
}

func groupSquareBrackets(tl *tree.TokenList) {
	matchPairs(tl, token.SquareBrackets, punct("["), punct("]"))
}

// groupCase folds CASE ... END spans. A multi-word END IF or END LOOP
// never closes a CASE.
func groupCase(tl *tree.TokenList) {
	open := func(n tree.Node) bool { return tree.KeywordIs(n, "CASE") }
	cls := func(n tree.Node) bool { return tree.KeywordIs(n, "END") }
	matchPairs(tl, token.Case, open, cls)
}

// groupComments joins runs of comments, interior whitespace included,
// under a single comment node. Whitespace after the last comment of a
// run stays outside.
func groupComments(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.CommentGroup}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			c, ok := l.Child(i).(*tree.Token)
			if !ok || !tree.Is(c, token.Comment) {
				continue
			}
			last := i
			for j := i + 1; j < l.Len(); j++ {
				n, ok := l.Child(j).(*tree.Token)
				if !ok || !tree.IsWhitespace(n) && !tree.Is(n, token.Comment) {
					break
				}
				if tree.Is(n, token.Comment) {
					last = j
				}
			}
			l.GroupRange(i, last+1, token.CommentGroup)
		}
	})
}

func groupFunctions(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Function}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			tok, ok := l.Child(i).(*tree.Token)
			if !ok || tok.Type() != token.Name {
				continue
			}
			nidx, next := l.TokenNext(i)
			if _, ok := next.(*tree.TokenList); !ok || !tree.Is(next, token.Parenthesis) {
				continue
			}
			l.GroupRange(i, nidx+1, token.Function)
		}
	})
}

// Clause keywords that end a WHERE group, by their first word.
var whereTerminators = map[string]struct{}{
	"GROUP": {}, "ORDER": {}, "LIMIT": {}, "UNION": {}, "EXCEPT": {},
	"INTERSECT": {}, "HAVING": {}, "WINDOW": {}, "RETURNING": {},
	"FETCH": {}, "OFFSET": {}, "INTO": {},
}

func groupWhere(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Where}, func(l *tree.TokenList) {
		// Inside a bracket group the closing bracket belongs to the
		// bracket, not to a WHERE clause that runs to the end.
		isBracket := tree.Is(l, token.Parenthesis) || tree.Is(l, token.SquareBrackets)
		for i := 0; i < l.Len(); i++ {
			if !tree.KeywordIs(l.Child(i), "WHERE") {
				continue
			}
			limit := l.Len()
			if isBracket {
				limit--
			}
			if i >= limit {
				break
			}
			end := limit
			for j := i + 1; j < limit; j++ {
				if terminatesWhere(l.Child(j)) {
					end = j
					break
				}
			}
			l.GroupRange(i, end, token.Where)
		}
	})
}

func terminatesWhere(n tree.Node) bool {
	tok, ok := n.(*tree.Token)
	if !ok {
		return false
	}
	if tok.Type() == token.Punctuation && tok.Raw() == ";" {
		return true
	}
	if tok.Type().Matches(token.KeywordDML) {
		return true
	}
	if !tok.Type().Matches(token.Keyword) {
		return false
	}
	first, _, _ := strings.Cut(tree.Normalize(tok.Raw()), " ")
	_, ok = whereTerminators[first]
	return ok
}

// groupPeriod folds maximal dotted name chains like a.b.c or s.t.* into
// one identifier. A dangling trailing dot is kept inside the chain.
func groupPeriod(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Identifier}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			if !isPunct(l.Child(i), ".") {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			if prev == nil || !dottablePrev(prev) {
				continue
			}
			end := i
			for {
				nidx, next := l.TokenNext(end)
				if next == nil || !dottableNext(next) {
					break
				}
				end = nidx
				didx, d := l.TokenNext(end)
				if d == nil || !isPunct(d, ".") {
					break
				}
				end = didx
			}
			l.GroupRange(pidx, end+1, token.Identifier)
			i = pidx
		}
	})
}

func dottablePrev(n tree.Node) bool {
	if typeIn(n, []*token.Type{token.SquareBrackets, token.Identifier}) {
		return true
	}
	return n.Type() == token.Name || n.Type() == token.StringSymbol
}

func dottableNext(n tree.Node) bool {
	if typeIn(n, []*token.Type{token.Function, token.SquareBrackets}) {
		return true
	}
	t := n.Type()
	return t == token.Name || t == token.StringSymbol || t == token.Wildcard
}

// groupTypecasts folds expr::type into one identifier.
func groupTypecasts(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Identifier}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			if !isPunct(l.Child(i), "::") {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			nidx, next := l.TokenNext(i)
			if prev == nil || next == nil {
				continue
			}
			if !operandNode(prev) || !castTarget(next) {
				continue
			}
			l.GroupRange(pidx, nidx+1, token.Identifier)
			i = pidx
		}
	})
}

func castTarget(n tree.Node) bool {
	if typeIn(n, []*token.Type{token.Identifier, token.Function}) {
		return true
	}
	return n.Type() == token.Name || n.Type() == token.NameBuiltin
}

// groupIdentifiers wraps each remaining bare name or quoted symbol in an
// identifier node. Placeholders and builtin type names stay bare.
func groupIdentifiers(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Identifier}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			tok, ok := l.Child(i).(*tree.Token)
			if !ok {
				continue
			}
			if tok.Type() != token.Name && tok.Type() != token.StringSymbol {
				continue
			}
			l.GroupRange(i, i+1, token.Identifier)
		}
	})
}

// groupOperations folds arithmetic chains like a + b * 2 left to right
// into a single flat operation node.
func groupOperations(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Operation}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			if !operatorToken(l.Child(i)) {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			if prev == nil || !operandNode(prev) {
				continue
			}
			nidx, next := l.TokenNext(i)
			if next == nil || !operandNode(next) {
				continue
			}
			end := nidx
			for {
				oidx, op := l.TokenNext(end)
				if op == nil || !operatorToken(op) {
					break
				}
				n2idx, n2 := l.TokenNext(oidx)
				if n2 == nil || !operandNode(n2) {
					break
				}
				end = n2idx
			}
			l.GroupRange(pidx, end+1, token.Operation)
			i = pidx
		}
	})
}

func operatorToken(n tree.Node) bool {
	tok, ok := n.(*tree.Token)
	return ok && (tok.Type() == token.Operator || tok.Type() == token.Wildcard)
}

func operandNode(n tree.Node) bool {
	if typeIn(n, []*token.Type{token.Parenthesis, token.Function, token.Identifier,
		token.Operation, token.SquareBrackets, token.Case}) {
		return true
	}
	t := n.Type()
	return t.Matches(token.Name) || t.Matches(token.String) ||
		t.Matches(token.Number) || t.Matches(token.Literal) ||
		t == token.Wildcard
}

func groupComparisons(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Comparison}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			tok, ok := l.Child(i).(*tree.Token)
			if !ok || tok.Type() != token.OperatorComparison {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			nidx, next := l.TokenNext(i)
			if prev == nil || next == nil {
				continue
			}
			if !comparable(prev) || !comparable(next) {
				continue
			}
			l.GroupRange(pidx, nidx+1, token.Comparison)
			i = pidx
		}
	})
}

func comparable(n tree.Node) bool {
	return operandNode(n) || tree.KeywordIs(n, "NULL")
}

// groupAs folds explicit aliases. The alias side must look like a name;
// a builtin type after AS, as in cast(x AS varchar), is not an alias.
func groupAs(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Identifier}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			if !tree.KeywordIs(l.Child(i), "AS") {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			nidx, next := l.TokenNext(i)
			if prev == nil || next == nil {
				continue
			}
			if !operandNode(prev) || !aliasNode(next) {
				continue
			}
			l.GroupRange(pidx, nidx+1, token.Identifier)
			i = pidx
		}
	})
}

func aliasNode(n tree.Node) bool {
	if tree.Is(n, token.Identifier) {
		return true
	}
	return n.Type() == token.Name || n.Type() == token.StringSymbol
}

// groupAliased folds implicit aliases: an operand directly followed by
// an identifier, as in "from foo f".
func groupAliased(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.Identifier}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			if !aliasablePrev(l.Child(i)) {
				continue
			}
			nidx, next := l.TokenNext(i)
			if _, ok := next.(*tree.TokenList); !ok || !tree.Is(next, token.Identifier) {
				continue
			}
			l.GroupRange(i, nidx+1, token.Identifier)
		}
	})
}

func aliasablePrev(n tree.Node) bool {
	if typeIn(n, []*token.Type{token.Parenthesis, token.Function, token.Case,
		token.Identifier, token.Operation, token.Comparison}) {
		return true
	}
	return n.Type().Matches(token.Number)
}

func groupAssignments(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.AssignmentGroup}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			tok, ok := l.Child(i).(*tree.Token)
			if !ok || tok.Type() != token.Assignment {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			nidx, next := l.TokenNext(i)
			if prev == nil || next == nil || isPunct(next, ";") {
				continue
			}
			l.GroupRange(pidx, nidx+1, token.AssignmentGroup)
			i = pidx
		}
	})
}

// groupIdentifierLists folds comma separated item runs into a single
// list node, extending over every ", item" repetition.
func groupIdentifierLists(tl *tree.TokenList) {
	walk(tl, []*token.Type{token.IdentifierList}, func(l *tree.TokenList) {
		for i := 0; i < l.Len(); i++ {
			if !isPunct(l.Child(i), ",") {
				continue
			}
			pidx, prev := l.TokenPrev(i)
			if prev == nil || !listItem(prev) {
				continue
			}
			end, cur := -1, i
			for {
				nidx, next := l.TokenNext(cur)
				if next == nil || !listItem(next) {
					break
				}
				end = nidx
				cidx, c := l.TokenNext(end)
				if c == nil || !isPunct(c, ",") {
					break
				}
				cur = cidx
			}
			if end < 0 {
				continue
			}
			l.GroupRange(pidx, end+1, token.IdentifierList)
			i = pidx
		}
	})
}

func listItem(n tree.Node) bool {
	if operandNode(n) || tree.Is(n, token.Comparison) || tree.Is(n, token.IdentifierList) {
		return true
	}
	t := n.Type()
	return t.Matches(token.Keyword) && !t.Matches(token.KeywordDML)
}
