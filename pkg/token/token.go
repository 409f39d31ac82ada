// Package token defines the hierarchical token type taxonomy used by the
// lexer and the grouping engine.
//
// Types form a dotted hierarchy (Keyword.DML is a Keyword). Classification
// is done with ancestor matching via Matches rather than exact equality, so
// consumers can test against any level of the hierarchy. The taxonomy is
// built once at init time; dialect packages may add classifications through
// Register but never mutate existing ones.
package token

import (
	"fmt"
	"strings"
	"sync"
)

// Type is an interned node in the token type taxonomy. Types are immutable
// after creation, so comparing two *Type values with == is a valid exact
// match; use Matches for hierarchical ("is-a") checks.
type Type struct {
	name   string
	parent *Type
}

var (
	mu    sync.RWMutex
	index = make(map[string]*Type)
)

// Register interns the type named by the given dotted path, creating any
// missing ancestors, and returns it. Registering an existing path returns
// the original value. Safe for concurrent use; dialect packages call it
// from init to add dialect specific classifications.
func Register(path string) *Type {
	mu.Lock()
	defer mu.Unlock()
	return intern(path)
}

func intern(path string) *Type {
	if t, ok := index[path]; ok {
		return t
	}
	var parent *Type
	if i := strings.LastIndex(path, "."); i >= 0 {
		parent = intern(path[:i])
	}
	t := &Type{name: path, parent: parent}
	index[path] = t
	return t
}

// Parse returns the registered type with the given dotted path. Unknown
// paths are a configuration error; Parse never creates new types.
func Parse(path string) (*Type, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := index[path]
	if !ok {
		return nil, fmt.Errorf("unknown token type %q", path)
	}
	return t, nil
}

// String returns the full dotted path, e.g. "Keyword.DML".
func (t *Type) String() string {
	if t == nil {
		return "None"
	}
	return t.name
}

// Parent returns the immediate ancestor, or nil for a root type.
func (t *Type) Parent() *Type {
	if t == nil {
		return nil
	}
	return t.parent
}

// Matches reports whether t equals other or descends from it in the
// taxonomy. A nil other acts as a wildcard and matches every type; a nil t
// matches only the wildcard.
func (t *Type) Matches(other *Type) bool {
	if other == nil {
		return true
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Leaf classifications produced by the lexer.
var (
	Error = Register("Error")

	Whitespace = Register("Whitespace")
	Newline    = Register("Whitespace.Newline")

	Comment          = Register("Comment")
	CommentSingle    = Register("Comment.Single")
	CommentMultiline = Register("Comment.Multiline")

	Keyword      = Register("Keyword")
	KeywordDML   = Register("Keyword.DML")
	KeywordDDL   = Register("Keyword.DDL")
	KeywordDCL   = Register("Keyword.DCL")
	KeywordOrder = Register("Keyword.Order")

	Name            = Register("Name")
	NamePlaceholder = Register("Name.Placeholder")
	NameBuiltin     = Register("Name.Builtin")

	Literal           = Register("Literal")
	String            = Register("String")
	StringSingle      = Register("String.Single")
	StringSymbol      = Register("String.Symbol")
	Number            = Register("Number")
	NumberInteger     = Register("Number.Integer")
	NumberFloat       = Register("Number.Float")
	NumberHexadecimal = Register("Number.Hexadecimal")

	Operator           = Register("Operator")
	OperatorComparison = Register("Operator.Comparison")

	Punctuation = Register("Punctuation")
	Wildcard    = Register("Wildcard")
	Assignment  = Register("Assignment")
	Command     = Register("Command")
)

// Composite classifications assigned by the grouping engine. They live in a
// Group subtree so any grouped node answers Matches(Group).
var (
	Group           = Register("Group")
	Statement       = Register("Group.Statement")
	Identifier      = Register("Group.Identifier")
	IdentifierList  = Register("Group.IdentifierList")
	Function        = Register("Group.Function")
	Parenthesis     = Register("Group.Parenthesis")
	SquareBrackets  = Register("Group.SquareBrackets")
	Case            = Register("Group.Case")
	Where           = Register("Group.Where")
	Comparison      = Register("Group.Comparison")
	Operation       = Register("Group.Operation")
	AssignmentGroup = Register("Group.Assignment")
	CommentGroup    = Register("Group.Comment")
)
