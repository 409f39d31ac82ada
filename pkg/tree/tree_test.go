package tree_test

import (
	"testing"

	"github.com/leapstack-labs/sqlsift/pkg/token"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toks(pairs ...any) []*tree.Token {
	var out []*tree.Token
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, tree.NewToken(pairs[i].(*token.Type), pairs[i+1].(string)))
	}
	return out
}

func TestTokenBasics(t *testing.T) {
	tok := tree.NewToken(token.Keyword, "FoO")
	assert.Equal(t, "FoO", tok.Raw())
	assert.Equal(t, "FoO", tok.String())
	assert.Same(t, token.Keyword, tok.Type())
	assert.Nil(t, tok.Parent())
}

func TestStatementRoundTrip(t *testing.T) {
	stmt := tree.NewStatement(toks(
		token.KeywordDML, "select",
		token.Whitespace, " ",
		token.Name, "foo",
		token.Punctuation, ";",
	))
	assert.Equal(t, "select foo;", stmt.Raw())
	assert.Equal(t, 4, stmt.Len())
	for _, c := range stmt.Children() {
		assert.Same(t, stmt, c.Parent())
	}
}

func TestFlattenWalker(t *testing.T) {
	stmt := tree.NewStatement(toks(
		token.Name, "a",
		token.Punctuation, ".",
		token.Name, "b",
	))
	stmt.GroupRange(0, 3, token.Identifier)

	w := stmt.Flatten()
	var texts []string
	for tok, ok := w.Next(); ok; tok, ok = w.Next() {
		texts = append(texts, tok.Raw())
	}
	assert.Equal(t, []string{"a", ".", "b"}, texts)

	// a fresh walker restarts from the beginning
	assert.Len(t, stmt.Flatten().Leaves(), 3)

	// an exhausted walker stays exhausted
	_, ok := w.Next()
	assert.False(t, ok)
}

func TestTokenFirst(t *testing.T) {
	stmt := tree.NewStatement(toks(
		token.Whitespace, " ",
		token.KeywordDML, "select",
		token.Whitespace, " ",
		token.Name, "foo",
	))
	first := stmt.TokenFirst(true)
	require.NotNil(t, first)
	assert.Equal(t, "select", first.Raw())

	raw := stmt.TokenFirst(false)
	require.NotNil(t, raw)
	assert.Equal(t, " ", raw.Raw())

	empty := tree.NewList(nil, nil)
	assert.Nil(t, empty.TokenFirst(true))
}

func TestTokenMatching(t *testing.T) {
	stmt := tree.NewStatement(toks(
		token.Keyword, "foo",
		token.Punctuation, ",",
	))
	isKeyword := func(n tree.Node) bool { return tree.Is(n, token.Keyword) }
	isPunct := func(n tree.Node) bool { return tree.Is(n, token.Punctuation) }

	assert.Equal(t, "foo", stmt.TokenMatching([]tree.Predicate{isKeyword}, 0).Raw())
	assert.Equal(t, ",", stmt.TokenMatching([]tree.Predicate{isPunct}, 0).Raw())
	assert.Nil(t, stmt.TokenMatching([]tree.Predicate{isKeyword}, 1))
}

func TestGroupRange(t *testing.T) {
	stmt := tree.NewStatement(toks(
		token.Name, "a",
		token.Whitespace, " ",
		token.OperatorComparison, "=",
		token.Whitespace, " ",
		token.NumberInteger, "1",
		token.Punctuation, ";",
	))
	grp := stmt.GroupRange(0, 5, token.Comparison)

	require.Equal(t, 2, stmt.Len())
	assert.Same(t, grp, stmt.Child(0))
	assert.Equal(t, "a = 1", grp.Raw())
	assert.Equal(t, "a = 1;", stmt.Raw(), "grouping preserves round-trip")
	assert.Same(t, stmt, grp.Parent())
	assert.True(t, tree.HasAncestor(grp.Child(0), stmt))
}

func TestTokenNextPrev(t *testing.T) {
	stmt := tree.NewStatement(toks(
		token.Name, "a",
		token.Whitespace, " ",
		token.CommentSingle, "-- c\n",
		token.Name, "b",
	))
	i, n := stmt.TokenNext(0)
	assert.Equal(t, 3, i)
	assert.Equal(t, "b", n.Raw())

	i, n = stmt.TokenPrev(3)
	assert.Equal(t, 0, i)
	assert.Equal(t, "a", n.Raw())

	i, n = stmt.TokenNext(3)
	assert.Equal(t, -1, i)
	assert.Nil(t, n)
}

func TestStatementType(t *testing.T) {
	tests := []struct {
		name string
		toks []*tree.Token
		want string
	}{
		{
			"select",
			toks(token.Whitespace, " ", token.KeywordDML, "select", token.Whitespace, " ", token.Name, "foo"),
			"SELECT",
		},
		{
			"create or replace",
			toks(token.KeywordDDL, "CREATE\t\nOR REPLACE", token.Whitespace, " ", token.Name, "v"),
			"CREATE OR REPLACE",
		},
		{
			"bare identifier",
			toks(token.Name, "foo"),
			"UNKNOWN",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.NewStatement(tt.toks).StatementType())
		})
	}
}

func TestIdentifierNames(t *testing.T) {
	// a.b
	qualified := tree.NewList(token.Identifier, []tree.Node{
		tree.NewToken(token.Name, "a"),
		tree.NewToken(token.Punctuation, "."),
		tree.NewToken(token.Name, "b"),
	})
	assert.Equal(t, "b", qualified.RealName())
	assert.Equal(t, "a", qualified.ParentName())
	assert.Equal(t, "", qualified.Alias())

	// foo AS bar
	explicit := tree.NewList(token.Identifier, []tree.Node{
		tree.NewToken(token.Name, "foo"),
		tree.NewToken(token.Whitespace, " "),
		tree.NewToken(token.Keyword, "AS"),
		tree.NewToken(token.Whitespace, " "),
		tree.NewToken(token.Name, "bar"),
	})
	assert.Equal(t, "foo", explicit.RealName())
	assert.Equal(t, "bar", explicit.Alias())

	// "Quoted" alias
	implicit := tree.NewList(token.Identifier, []tree.Node{
		tree.NewToken(token.Name, "foo"),
		tree.NewToken(token.Whitespace, " "),
		tree.NewToken(token.StringSymbol, `"Bar"`),
	})
	assert.Equal(t, "Bar", implicit.Alias())
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "x", tree.Unquote(`"x"`))
	assert.Equal(t, `a"b`, tree.Unquote(`"a""b"`))
	assert.Equal(t, "x", tree.Unquote("`x`"))
	assert.Equal(t, "x", tree.Unquote("[x]"))
	assert.Equal(t, "plain", tree.Unquote("plain"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "END IF", tree.Normalize("END\t\nIF"))
	assert.Equal(t, "LEFT OUTER JOIN", tree.Normalize("left  outer\tjoin"))
}
