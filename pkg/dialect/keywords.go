package dialect

import "github.com/leapstack-labs/sqlsift/pkg/token"

// keywordsCommon carries the words whose sub-classification matters to
// consumers: statement verbs and the structural keywords the grouping
// engine keys on.
var keywordsCommon = map[string]*token.Type{
	"select":  token.KeywordDML,
	"insert":  token.KeywordDML,
	"delete":  token.KeywordDML,
	"update":  token.KeywordDML,
	"replace": token.KeywordDML,
	"merge":   token.KeywordDML,

	"drop":     token.KeywordDDL,
	"alter":    token.KeywordDDL,
	"truncate": token.KeywordDDL,

	"where":    token.Keyword,
	"from":     token.Keyword,
	"inner":    token.Keyword,
	"join":     token.Keyword,
	"and":      token.Keyword,
	"or":       token.Keyword,
	"like":     token.Keyword,
	"on":       token.Keyword,
	"in":       token.Keyword,
	"set":      token.Keyword,
	"by":       token.Keyword,
	"group":    token.Keyword,
	"order":    token.Keyword,
	"left":     token.Keyword,
	"right":    token.Keyword,
	"outer":    token.Keyword,
	"full":     token.Keyword,
	"if":       token.Keyword,
	"end":      token.Keyword,
	"then":     token.Keyword,
	"loop":     token.Keyword,
	"as":       token.Keyword,
	"else":     token.Keyword,
	"for":      token.Keyword,
	"while":    token.Keyword,
	"case":     token.Keyword,
	"when":     token.Keyword,
	"min":      token.Keyword,
	"max":      token.Keyword,
	"distinct": token.Keyword,
}

// keywordsGeneral is the broad ANSI vocabulary. Words lex as keywords only
// on exact whole-word matches; identifier-shaped runs that merely start
// with one of these stay names.
var keywordsGeneral = []string{
	"abort", "absolute", "access", "add", "after", "aggregate", "all",
	"also", "always", "analyze", "any", "array", "assertion", "at",
	"authorization", "backward", "before", "begin", "between", "binary",
	"both", "cache", "call", "cascade", "cascaded", "cast", "chain",
	"characteristics", "check", "checkpoint", "class", "close", "cluster",
	"coalesce", "collate", "column", "comment", "commit", "committed",
	"concat", "connect", "connection", "constraint", "constraints",
	"conversion", "convert", "copy", "createdb", "createuser", "cross",
	"current", "current_date", "current_time", "current_timestamp",
	"current_user", "cursor", "cycle", "database", "deallocate", "dec",
	"declare", "default", "deferrable", "deferred", "definer", "delimiter",
	"disable", "do", "domain", "each", "enable", "encoding",
	"encrypted", "escape", "except", "exception", "exclude", "excluding",
	"exclusive", "execute", "exists", "explain", "external", "extract",
	"fetch", "first", "following", "force", "foreign", "forward", "found",
	"function", "global", "grouping", "handler", "having", "header", "hold",
	"hour", "identity", "ignore", "ilike", "immediate", "immutable",
	"implicit", "including", "increment", "index", "inherits", "initially",
	"inout", "input", "insensitive", "instead", "intersect", "into",
	"invoker", "is", "isnull", "isolation", "key", "language", "large",
	"last", "lateral", "leading", "level", "limit", "listen", "load",
	"local", "localtime", "localtimestamp", "location", "lock", "login",
	"match", "minute", "mode", "month", "move", "natural", "next", "no",
	"nocreatedb", "nocreateuser", "none", "not", "nothing", "notify",
	"notnull", "now", "nowait", "null", "nullif", "nulls", "object", "of",
	"off", "offset", "oids", "only", "operator", "option", "options", "out",
	"over", "overlaps", "overlay", "owner", "partial", "partition",
	"passing", "password", "placing", "position", "preceding", "precision",
	"prepare", "preserve", "primary", "prior", "privileges", "procedural",
	"procedure", "quarter", "range", "read", "recheck", "recursive", "ref",
	"references", "reindex", "relative", "release", "rename", "repeatable",
	"reset", "restart", "restrict", "returning", "returns", "role",
	"rollback", "row", "rows", "rule", "savepoint", "schema", "scroll",
	"second", "security", "sequence", "serializable", "session",
	"session_user", "share", "show", "similar", "simple", "some",
	"stable", "start", "statement", "statistics", "stdin", "stdout",
	"storage", "strict", "substring", "sysid", "table", "tablespace",
	"temp", "template", "temporary", "to", "toast", "trailing",
	"transaction", "trigger", "trim", "true", "false", "unbounded",
	"uncommitted", "unencrypted", "union", "unique", "unknown", "unlisten",
	"until", "usage", "user", "using", "vacuum", "valid", "validator",
	"values", "variable", "verbose", "view", "volatile", "week", "window",
	"with", "within", "without", "work", "write", "year", "zone",
}

// keywordsBuiltin are type names, classified Name.Builtin.
var keywordsBuiltin = []string{
	"bigint", "bigserial", "bit", "blob", "bool", "boolean", "bytea",
	"char", "character", "date", "datetime", "decimal", "double", "enum",
	"float", "float4", "float8", "int", "int2", "int4", "int8", "integer",
	"interval", "long", "longblob", "longtext", "mediumblob", "mediumint",
	"mediumtext", "money", "number", "numeric", "real", "serial",
	"serial8", "signed", "smallint", "text", "time", "timestamp",
	"timestamptz", "tinyblob", "tinyint", "tinytext", "unsigned", "uuid",
	"varbinary", "varchar", "varying", "xml",
}
