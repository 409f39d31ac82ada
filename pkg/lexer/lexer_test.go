package lexer_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/leapstack-labs/sqlsift/pkg/dialect"
	_ "github.com/leapstack-labs/sqlsift/pkg/dialects/tsql"
	"github.com/leapstack-labs/sqlsift/pkg/lexer"
	"github.com/leapstack-labs/sqlsift/pkg/token"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(tokens []*tree.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Raw()
	}
	return out
}

func joined(tokens []*tree.Token) string {
	return strings.Join(values(tokens), "")
}

func TestSimpleStatement(t *testing.T) {
	sql := "select * from foo;"
	tokens := lexer.Tokenize(sql, nil)

	require.Len(t, tokens, 8)
	assert.Equal(t, []string{"select", " ", "*", " ", "from", " ", "foo", ";"}, values(tokens))
	assert.Same(t, token.KeywordDML, tokens[0].Type())
	assert.Same(t, token.Wildcard, tokens[2].Type())
	assert.Same(t, token.Keyword, tokens[4].Type())
	assert.Same(t, token.Name, tokens[6].Type())
	assert.Same(t, token.Punctuation, tokens[7].Type())
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"select * from foo;",
		"select 'one string'\n\"another string\";",
		"select * from foo\nwhere  bar = 1\n  and baz %% 2;",
		"-- a comment\nselect 1;\r\n/* block\ncomment */ select 2",
		"insert into foo values (-1)",
		"create table \"a\" (\"b\" int);",
		"SELECT @@version",
		"foo\nbar\r\nbaz\rqux\n",
	}
	for _, sql := range inputs {
		assert.Equal(t, sql, joined(lexer.Tokenize(sql, nil)), "input %q", sql)
	}
}

func TestMultiWordKeywords(t *testing.T) {
	tests := []struct {
		sql  string
		want string
		typ  *token.Type
	}{
		{"LEFT JOIN foo", "LEFT JOIN", token.Keyword},
		{"LEFT  OUTER  JOIN foo", "LEFT  OUTER  JOIN", token.Keyword},
		{"FULL OUTER JOIN foo", "FULL OUTER JOIN", token.Keyword},
		{"CROSS JOIN foo", "CROSS JOIN", token.Keyword},
		{"STRAIGHT JOIN foo", "STRAIGHT JOIN", token.Keyword},
		{"UNION ALL select", "UNION ALL", token.Keyword},
		{"UNION  ALL select", "UNION  ALL", token.Keyword},
		{"END IF;", "END IF", token.Keyword},
		{"END  IF;", "END  IF", token.Keyword},
		{"END LOOP;", "END LOOP", token.Keyword},
		{"NOT NULL,", "NOT NULL", token.Keyword},
		{"CREATE OR REPLACE view", "CREATE OR REPLACE", token.KeywordDDL},
		{"DOUBLE PRECISION,", "DOUBLE PRECISION", token.NameBuiltin},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			tokens := lexer.Tokenize(tt.sql, nil)
			require.NotEmpty(t, tokens)
			assert.Equal(t, tt.want, tokens[0].Raw(), "multi-word match keeps its literal whitespace")
			assert.Same(t, tt.typ, tokens[0].Type())
		})
	}
}

func TestKeywordBoundary(t *testing.T) {
	// A keyword prefix inside a longer word is not a keyword.
	tokens := lexer.Tokenize("enddate", nil)
	require.Len(t, tokens, 1)
	assert.Same(t, token.Name, tokens[0].Type())

	tokens = lexer.Tokenize("join_col", nil)
	require.Len(t, tokens, 1)
	assert.Same(t, token.Name, tokens[0].Type())

	tokens = lexer.Tokenize("left join_col", nil)
	require.Len(t, tokens, 3)
	assert.Equal(t, "join_col", tokens[2].Raw())
	assert.Same(t, token.Name, tokens[2].Type())

	tokens = lexer.Tokenize("create created_foo", nil)
	require.Len(t, tokens, 3)
	assert.Same(t, token.KeywordDDL, tokens[0].Type())
	assert.Same(t, token.Name, tokens[2].Type())
}

func TestBackticks(t *testing.T) {
	tokens := lexer.Tokenize("`foo`.`bar`", nil)
	require.Len(t, tokens, 3)
	assert.Same(t, token.Name, tokens[0].Type())
	assert.Equal(t, "`foo`", tokens[0].Raw())
}

func TestSignedNumbers(t *testing.T) {
	t.Run("prefix position", func(t *testing.T) {
		tokens := lexer.Tokenize("insert into foo values (-1)", nil)
		var neg *tree.Token
		for _, tok := range tokens {
			if tok.Raw() == "-1" {
				neg = tok
			}
		}
		require.NotNil(t, neg, "-1 lexes as one token")
		assert.Same(t, token.NumberInteger, neg.Type())
	})

	t.Run("after operand", func(t *testing.T) {
		tokens := lexer.Tokenize("select 1-2", nil)
		assert.Equal(t, []string{"select", " ", "1", "-", "2"}, values(tokens))
		assert.Same(t, token.Operator, tokens[3].Type())
	})

	t.Run("after comparison", func(t *testing.T) {
		tokens := lexer.Tokenize("where bar = -1", nil)
		assert.Equal(t, "-1", tokens[len(tokens)-1].Raw())
		assert.Same(t, token.NumberInteger, tokens[len(tokens)-1].Type())
	})

	t.Run("float and hex", func(t *testing.T) {
		tokens := lexer.Tokenize("select .5, -0x1F, 1.5e-3", nil)
		types := map[string]*token.Type{}
		for _, tok := range tokens {
			types[tok.Raw()] = tok.Type()
		}
		assert.Same(t, token.NumberFloat, types[".5"])
		assert.Same(t, token.NumberHexadecimal, types["-0x1F"])
		assert.Same(t, token.NumberFloat, types["1.5e-3"])
	})

	t.Run("digits glued to a word", func(t *testing.T) {
		tokens := lexer.Tokenize("1abc", nil)
		require.Len(t, tokens, 1)
		assert.Same(t, token.Name, tokens[0].Type())
	})
}

func TestWordContext(t *testing.T) {
	t.Run("before parenthesis", func(t *testing.T) {
		tokens := lexer.Tokenize("max(a)", nil)
		assert.Same(t, token.Name, tokens[0].Type(), "a word before ( is a function name")
	})

	t.Run("values keeps keyword before parenthesis", func(t *testing.T) {
		tokens := lexer.Tokenize("values(-1)", nil)
		assert.Same(t, token.Keyword, tokens[0].Type())
		assert.Equal(t, "-1", tokens[2].Raw())
	})

	t.Run("around a dot", func(t *testing.T) {
		tokens := lexer.Tokenize("where.foo", nil)
		require.Len(t, tokens, 3)
		assert.Same(t, token.Name, tokens[0].Type())
		assert.Same(t, token.Punctuation, tokens[1].Type())
		assert.Same(t, token.Name, tokens[2].Type())
	})
}

func TestBracketedName(t *testing.T) {
	tokens := lexer.Tokenize("select [col name] from [my table]", nil)
	assert.Same(t, token.Name, tokens[2].Type())
	assert.Equal(t, "[col name]", tokens[2].Raw())

	// Directly after an operand the brackets are a subscript.
	tokens = lexer.Tokenize("a[1]", nil)
	assert.Equal(t, []string{"a", "[", "1", "]"}, values(tokens))
	assert.Same(t, token.Punctuation, tokens[1].Type())
}

func TestStringsAndComments(t *testing.T) {
	tokens := lexer.Tokenize("select 'it''s' || \"col\"\n-- trailing\n", nil)
	types := map[string]*token.Type{}
	for _, tok := range tokens {
		types[tok.Raw()] = tok.Type()
	}
	assert.Same(t, token.StringSingle, types["'it''s'"])
	assert.Same(t, token.StringSymbol, types[`"col"`])
	assert.Same(t, token.CommentSingle, types["-- trailing\n"])

	tokens = lexer.Tokenize("/* multi\nline */ select 1", nil)
	assert.Same(t, token.CommentMultiline, tokens[0].Type())
	assert.Equal(t, "/* multi\nline */", tokens[0].Raw())
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"where id = ?", "?"},
		{"where id = %s", "%s"},
		{"where id = %(name)s", "%(name)s"},
		{"where id = :name", ":name"},
		{"where id = $1", "$1"},
	}
	for _, tt := range tests {
		tokens := lexer.Tokenize(tt.sql, nil)
		last := tokens[len(tokens)-1]
		assert.Equal(t, tt.want, last.Raw())
		assert.Same(t, token.NamePlaceholder, last.Type(), tt.sql)
	}
}

func TestErrorRecovery(t *testing.T) {
	tokens := lexer.Tokenize("FOOBAR{", nil)
	require.Len(t, tokens, 2)
	assert.Same(t, token.Name, tokens[0].Type())
	assert.Same(t, token.Error, tokens[1].Type())
	assert.Equal(t, "{", tokens[1].Raw())
	assert.Equal(t, "FOOBAR{", joined(tokens))
}

func TestPullIteration(t *testing.T) {
	l := lexer.New("SELECT 1; SELECT 2;", nil)
	n := 0
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		require.NotNil(t, tok)
		n++
	}
	assert.Equal(t, 9, n, "no end-of-input token is emitted")

	// Exhausted lexers keep reporting done.
	_, ok := l.Next()
	assert.False(t, ok)
}

func TestStreamInput(t *testing.T) {
	r := strings.NewReader("SELECT 1; SELECT 2;")
	for i := 0; i < 3; i++ {
		_, err := r.Seek(0, 0)
		require.NoError(t, err)
		tokens := lexer.TokenizeReader(r, nil)
		assert.Len(t, tokens, 9, "pass %d", i)
	}
}

func TestStreamChunkBoundaries(t *testing.T) {
	// bytes.Reader goes through the chunked window, so tokens straddle
	// read boundaries here.
	sql := "select " + strings.Repeat("x", 5000) + " from foo -- tail comment with no newline"
	tokens := lexer.TokenizeReader(bytes.NewReader([]byte(sql)), nil)
	assert.Equal(t, sql, joined(tokens))

	var long *tree.Token
	for _, tok := range tokens {
		if len(tok.Raw()) == 5000 {
			long = tok
		}
	}
	require.NotNil(t, long)
	assert.Same(t, token.Name, long.Type())
}

func TestStreamDelimitedTokensAcrossChunks(t *testing.T) {
	// Delimited and multi-word tokens whose tail lies beyond the first
	// read must not be cut short or degrade into error tokens.
	inputs := []string{
		"select '" + strings.Repeat("x", 5000) + "' from t",
		"select \"" + strings.Repeat("n", 4200) + "\" from t",
		"select `" + strings.Repeat("n", 4200) + "` from t",
		"/* " + strings.Repeat("c", 9000) + " */ select 1",
		// doubled-quote escape straddling the first read boundary
		"select '" + strings.Repeat("x", 4090) + "''" + strings.Repeat("y", 100) + "' from t",
		strings.Repeat(" ", 4090) + "END" + strings.Repeat(" ", 20) + "IF",
	}
	for _, sql := range inputs {
		want := lexer.Tokenize(sql, nil)
		got := lexer.TokenizeReader(bytes.NewReader([]byte(sql)), nil)
		require.Equal(t, values(want), values(got), "len %d", len(sql))
		for i := range want {
			assert.Same(t, want[i].Type(), got[i].Type(), "token %d", i)
		}
	}
}

func TestStreamMatchesStringTokens(t *testing.T) {
	sql := "select a.b, max(c) from foo where bar = -1 and s = 'lit''eral'; -- done"
	want := lexer.Tokenize(sql, nil)
	for name, r := range map[string]io.Reader{
		"bytes":    bytes.NewReader([]byte(sql)),
		"one byte": iotest.OneByteReader(strings.NewReader(sql)),
	} {
		got := lexer.TokenizeReader(r, nil)
		require.Equal(t, values(want), values(got), name)
		for i := range want {
			assert.Same(t, want[i].Type(), got[i].Type(), "%s token %d", name, i)
		}
	}
}

func TestDialectParameter(t *testing.T) {
	d, ok := dialect.Lookup("transactsql")
	require.True(t, ok)

	tokens := lexer.Tokenize("SELECT @@version", d)
	assert.Equal(t, "@@version", tokens[2].Raw())
	assert.Same(t, token.NameBuiltin, tokens[2].Type())

	// The default table has no @@ rule of its own.
	tokens = lexer.Tokenize("SELECT @@version", nil)
	assert.Equal(t, "@@", tokens[2].Raw())
	assert.Same(t, token.Operator, tokens[2].Type())
}

func TestLinebreakPreservation(t *testing.T) {
	for _, sql := range []string{"foo\nbar\n", "foo\rbar\r", "foo\r\nbar\r\n", "foo\r\nbar\n"} {
		tokens := lexer.Tokenize(sql, nil)
		assert.Equal(t, sql, joined(tokens), "%q", sql)
	}
}
