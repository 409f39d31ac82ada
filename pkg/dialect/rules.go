package dialect

import "github.com/leapstack-labs/sqlsift/pkg/token"

// baseRules is the ordered lexical rule table shared by every dialect.
// Multi-word keyword rules sit ahead of the generic word rule so the
// longest construct wins; the matched text is emitted literally, internal
// whitespace included, so single-token round-trip holds.
var baseRules = []RuleSpec{
	{Pattern: `(--|# ).*?(\r\n|\r|\n|$)`, Type: token.CommentSingle},
	{Pattern: `/\*[\s\S]*?\*/`, Type: token.CommentMultiline, Opens: "/*"},
	{Pattern: `(\r\n|\r|\n)`, Type: token.Newline},
	{Pattern: `[ \t\f]+`, Type: token.Whitespace},

	{Pattern: `:=`, Type: token.Assignment},
	{Pattern: `::`, Type: token.Punctuation},
	{Pattern: `\*`, Type: token.Wildcard},

	{Pattern: "`(``|[^`])*`", Type: token.Name, Opens: "`"},
	{Pattern: `\$\$[\s\S]*?\$\$`, Type: token.Literal, Opens: "$$"},
	{Pattern: `'(''|\\'|[^'])*'`, Type: token.StringSingle, Opens: "'"},
	{Pattern: `"(""|\\"|[^"])*"`, Type: token.StringSymbol, Opens: `"`},

	{Pattern: `\?`, Type: token.NamePlaceholder},
	{Pattern: `%\(\w+\)s`, Type: token.NamePlaceholder},
	{Pattern: `%s`, Type: token.NamePlaceholder},
	{Pattern: `(@|##|#)[A-Za-z_]\w*`, Type: token.Name},
	{Pattern: `[$:]\w+`, Type: token.NamePlaceholder, NotAfterOperand: true},
	{Pattern: `\\\w+`, Type: token.Command},

	// words that keep their keyword meaning even directly before "("
	{Pattern: `(CASE|IN|VALUES|USING|FROM|AS)\b`, Type: token.Keyword},

	{Pattern: `(LEFT\s+|RIGHT\s+|FULL\s+)?(INNER\s+|OUTER\s+|STRAIGHT\s+|CROSS\s+|NATURAL\s+)?JOIN\b`, Type: token.Keyword},
	{Pattern: `END(\s+IF|\s+LOOP)?\b`, Type: token.Keyword},
	{Pattern: `NOT\s+NULL\b`, Type: token.Keyword},
	{Pattern: `UNION\s+ALL\b`, Type: token.Keyword},
	{Pattern: `CREATE(\s+OR\s+REPLACE)?\b`, Type: token.KeywordDDL},
	{Pattern: `DOUBLE\s+PRECISION\b`, Type: token.NameBuiltin},

	{Pattern: `-?0x[0-9a-fA-F]+`, Type: token.NumberHexadecimal, Signed: true},
	{Pattern: `-?(\d+(\.\d*)?|\.\d+)[eE][-+]?\d+`, Type: token.NumberFloat, Signed: true},
	{Pattern: `-?(\d+\.\d*|\.\d+)`, Type: token.NumberFloat, Signed: true},
	{Pattern: `-?\d+`, Type: token.NumberInteger, Signed: true},

	{Pattern: `\[[^\[\]]*\]`, Type: token.Name, NotAfterOperand: true},
	{Pattern: `[\p{L}\p{N}_][\p{L}\p{N}_$#]*`, Keyword: true},

	{Pattern: `[;:()\[\],\.]`, Type: token.Punctuation},
	{Pattern: `[<>=~!]+`, Type: token.OperatorComparison},
	{Pattern: "[+/@#%^&|`?^-]+", Type: token.Operator},
}

// ANSI is the base dialect every variant extends.
var ANSI = New("ansi").
	Rules(baseRules...).
	KeywordMap(keywordsCommon).
	Keywords(token.Keyword, keywordsGeneral...).
	Keywords(token.NameBuiltin, keywordsBuiltin...).
	Keywords(token.KeywordOrder, "asc", "desc").
	Keywords(token.KeywordDCL, "grant", "revoke").
	MustBuild()

func init() {
	Register(ANSI)
}
