// Package tsql provides the Transact-SQL dialect: GO batch separators,
// @@ system variables, procedural block keywords, and the T-SQL keyword
// vocabulary layered onto the ANSI base table.
//
// Import for side effects to make the dialect available by name:
//
//	import _ "github.com/leapstack-labs/sqlsift/pkg/dialects/tsql"
package tsql

import (
	"github.com/leapstack-labs/sqlsift/pkg/dialect"
	"github.com/leapstack-labs/sqlsift/pkg/token"
)

func init() {
	dialect.Register(TransactSQL)
}

// TransactSQL is the T-SQL dialect table.
var TransactSQL = dialect.New("transactsql").
	Extend(dialect.Default()).
	PrependRules(
		dialect.RuleSpec{Pattern: `@@[A-Za-z_]\w*`, Type: token.NameBuiltin},
		dialect.RuleSpec{Pattern: `END\s+(IF|LOOP|TRY|CATCH)\b`, Type: token.Keyword},
		dialect.RuleSpec{Pattern: `BEGIN\s+(TRY|CATCH)\b`, Type: token.Keyword},
	).
	Keywords(token.Keyword, keywordsTSQL...).
	BatchSeparators("go").
	MustBuild()

// keywordsTSQL extends the vocabulary with common T-SQL words.
var keywordsTSQL = []string{
	"apply", "bulk", "catch", "clustered", "columnstore", "containstable",
	"dbcc", "deny", "disk", "dump", "errlvl", "exec", "fillfactor",
	"freetext", "freetexttable", "go", "holdlock",
	"identity_insert", "identitycol", "instead", "kill", "lineno",
	"nocount", "nolock", "nonclustered", "offsets", "opendatasource",
	"openquery", "openrowset", "openxml", "pivot", "plan", "print",
	"proc", "raiserror", "readtext", "reconfigure", "replication",
	"rowcount", "rowguidcol", "securityaudit", "semantickeyphrasetable",
	"semanticsimilaritydetailstable", "semanticsimilaritytable",
	"setuser", "shutdown", "tablesample", "textsize", "top", "tran",
	"try", "tsequal", "unpivot", "updatetext", "waitfor", "writetext",
}
