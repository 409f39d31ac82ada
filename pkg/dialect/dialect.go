// Package dialect holds the per-dialect lexical configuration: the ordered
// rule table the lexer scans with, the keyword vocabulary, and statement
// batch separators.
//
// Dialects are data, not behavior. A variant layers onto a base table
// through the Builder (extra keywords, prepended rules, different
// separators) instead of re-specifying the whole table. Concrete variants
// register themselves from pkg/dialects/*/ packages; the ANSI base table is
// registered here.
package dialect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/sqlsift/pkg/token"
)

// RuleSpec declares one lexical rule. Pattern is an RE2 expression matched
// case-insensitively at the current scan position; rules are tried in table
// order and the first match wins.
type RuleSpec struct {
	Pattern string
	// Type is the fixed classification for the matched text. Leave nil
	// with Keyword set to classify against the keyword vocabulary instead.
	Type *token.Type
	// Keyword classifies the matched word via the dialect keyword sets,
	// falling back to Name.
	Keyword bool
	// Signed marks rules whose leading minus sign is only consumed in a
	// prefix position (after an operator, opening bracket, comma, or
	// start of input).
	Signed bool
	// NotAfterOperand suppresses the rule directly after a word character
	// or closing bracket, e.g. bracketed names in a[1].
	NotAfterOperand bool
	// Opens is the literal opening delimiter of a construct that may span
	// any amount of input, such as "/*" or "'". When a streamed window
	// starts with it, the lexer buffers the rest of the input before
	// matching, since only the full text settles where the construct ends.
	Opens string
}

// Rule is a compiled lexical rule.
type Rule struct {
	RuleSpec
	Re *regexp.Regexp
}

// Dialect is an immutable, registered lexical configuration. Safe to share
// across concurrent lexer instances.
type Dialect struct {
	Name string

	specs     []RuleSpec
	rules     []Rule
	keywords  map[string]*token.Type
	batchSeps map[string]struct{}
}

// Rules returns the compiled rule table in match order.
func (d *Dialect) Rules() []Rule { return d.rules }

// ClassifyWord resolves a matched word against the keyword vocabulary,
// case-insensitively. Words outside the vocabulary are names.
func (d *Dialect) ClassifyWord(word string) *token.Type {
	if t, ok := d.keywords[strings.ToLower(word)]; ok {
		return t
	}
	return token.Name
}

// IsKeyword reports whether word is in the dialect vocabulary.
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[strings.ToLower(word)]
	return ok
}

// IsBatchSeparator reports whether word separates statement batches in this
// dialect (e.g. GO in Transact-SQL). The ";" separator is universal and
// handled by the splitter directly.
func (d *Dialect) IsBatchSeparator(word string) bool {
	_, ok := d.batchSeps[strings.ToLower(word)]
	return ok
}

// Builder assembles a dialect from a base table plus layered differences.
type Builder struct {
	name      string
	base      *Dialect
	prepend   []RuleSpec
	replace   []RuleSpec
	keywords  map[string]*token.Type
	batchSeps []string
}

// New starts building a dialect with the given registry name.
func New(name string) *Builder {
	return &Builder{name: name, keywords: make(map[string]*token.Type)}
}

// Extend layers this dialect on top of base: rules, keywords, and batch
// separators are inherited and may be added to.
func (b *Builder) Extend(base *Dialect) *Builder {
	b.base = base
	return b
}

// Rules replaces the inherited rule table entirely.
func (b *Builder) Rules(specs ...RuleSpec) *Builder {
	b.replace = specs
	return b
}

// PrependRules inserts rules ahead of the inherited table so they win over
// base rules at the same position.
func (b *Builder) PrependRules(specs ...RuleSpec) *Builder {
	b.prepend = append(b.prepend, specs...)
	return b
}

// Keywords merges words with the given classification into the vocabulary.
func (b *Builder) Keywords(t *token.Type, words ...string) *Builder {
	for _, w := range words {
		b.keywords[strings.ToLower(w)] = t
	}
	return b
}

// KeywordMap merges an explicit word-to-type table into the vocabulary.
func (b *Builder) KeywordMap(words map[string]*token.Type) *Builder {
	for w, t := range words {
		b.keywords[strings.ToLower(w)] = t
	}
	return b
}

// BatchSeparators adds words that split statement batches at top level.
func (b *Builder) BatchSeparators(words ...string) *Builder {
	b.batchSeps = append(b.batchSeps, words...)
	return b
}

// Build compiles the dialect. A malformed rule pattern is a configuration
// error and fails here, before any input is lexed.
func (b *Builder) Build() (*Dialect, error) {
	d := &Dialect{
		Name:      b.name,
		keywords:  make(map[string]*token.Type),
		batchSeps: make(map[string]struct{}),
	}

	if b.base != nil {
		for w, t := range b.base.keywords {
			d.keywords[w] = t
		}
		for s := range b.base.batchSeps {
			d.batchSeps[s] = struct{}{}
		}
	}
	for w, t := range b.keywords {
		d.keywords[w] = t
	}
	for _, s := range b.batchSeps {
		d.batchSeps[strings.ToLower(s)] = struct{}{}
	}

	switch {
	case b.replace != nil:
		d.specs = append(b.prepend, b.replace...)
	case b.base != nil:
		d.specs = append(b.prepend, b.base.specs...)
	default:
		d.specs = b.prepend
	}

	d.rules = make([]Rule, 0, len(d.specs))
	for _, spec := range d.specs {
		re, err := regexp.Compile(`(?i)^(?:` + spec.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("dialect %s: rule %q: %w", b.name, spec.Pattern, err)
		}
		d.rules = append(d.rules, Rule{RuleSpec: spec, Re: re})
	}
	return d, nil
}

// MustBuild is Build for statically known tables; it panics on a malformed
// pattern.
func (b *Builder) MustBuild() *Dialect {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
