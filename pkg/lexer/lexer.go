// Package lexer turns SQL text into a flat token stream.
//
// Scanning is pull based: each Next call tries the dialect rule table in
// order at the current position and emits the first match. The lexer never
// rejects input; text no rule covers comes back as a single-rune Error
// token, so concatenating all token values always reproduces the input
// exactly.
package lexer

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlsift/pkg/dialect"
	"github.com/leapstack-labs/sqlsift/pkg/token"
	"github.com/leapstack-labs/sqlsift/pkg/tree"
)

// peekAhead bounds how far past a word the lexer looks when deciding
// whether a dot follows it.
const peekAhead = 32

// Lexer scans one input. Instances are single use and not safe for
// concurrent calls; the dialect behind them is immutable and may be
// shared freely.
type Lexer struct {
	d   *dialect.Dialect
	src *source

	// prefix is true when a minus sign at the current position starts a
	// signed number rather than a subtraction.
	prefix bool
	// prevRaw is the last byte emitted, whitespace included. Zero at the
	// start of input.
	prevRaw byte
}

// New returns a lexer over input. A nil dialect means the default one.
func New(input string, d *dialect.Dialect) *Lexer {
	if d == nil {
		d = dialect.Default()
	}
	return &Lexer{d: d, src: newStringSource(input), prefix: true}
}

// NewReader returns a lexer that scans r incrementally.
func NewReader(r io.Reader, d *dialect.Dialect) *Lexer {
	if d == nil {
		d = dialect.Default()
	}
	return &Lexer{d: d, src: newReaderSource(r), prefix: true}
}

// Tokenize scans input to the end and returns all tokens.
func Tokenize(input string, d *dialect.Dialect) []*tree.Token {
	return drain(New(input, d))
}

// TokenizeReader scans r to the end and returns all tokens.
func TokenizeReader(r io.Reader, d *dialect.Dialect) []*tree.Token {
	return drain(NewReader(r, d))
}

func drain(l *Lexer) []*tree.Token {
	var out []*tree.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// Next returns the next token, or ok=false once the input is exhausted.
func (l *Lexer) Next() (*tree.Token, bool) {
	if l.src.empty() {
		return nil, false
	}

scan:
	win := l.src.window()
	for _, rule := range l.d.Rules() {
		if rule.Signed && win[0] == '-' && !l.prefix {
			continue
		}
		if rule.NotAfterOperand && isOperandByte(l.prevRaw) {
			continue
		}
		// A delimited construct may close beyond the window, or a doubled
		// delimiter may straddle its edge. Only the full input settles
		// where (or whether) it ends, so buffer the rest first.
		if rule.Opens != "" && !l.src.eof && strings.HasPrefix(win, rule.Opens) {
			for l.src.fill() {
			}
			goto scan
		}
		m := rule.Re.FindStringIndex(win)
		if m == nil {
			continue
		}
		// A match ending at or near the window edge may extend once more
		// input arrives: a rule with an optional tail can match short when
		// the rest of its text is still unread. Keep a full chunk of slack
		// past the match before accepting it.
		if len(win)-m[1] < chunkSize && l.src.fill() {
			goto scan
		}
		// Numbers do not end inside a word: "1abc" is a name, not a
		// number followed by a name.
		if rule.Signed && m[1] < len(win) && isWordByte(win[m[1]]) {
			continue
		}
		text := win[:m[1]]
		ttype := rule.Type
		if rule.Keyword {
			ttype = l.classifyWord(text, m[1])
		}
		l.src.advance(m[1])
		l.update(ttype, text)
		return tree.NewToken(ttype, text), true
	}

	// Nothing matched, but unread input may still complete a token that
	// starts here, such as a string whose closing quote lies beyond the
	// window. Grow and rescan; errors are only final at end of input.
	if l.src.fill() {
		goto scan
	}

	// Emit one rune as an error token and move on.
	_, size := utf8.DecodeRuneInString(win)
	text := win[:size]
	l.src.advance(size)
	l.update(token.Error, text)
	return tree.NewToken(token.Error, text), true
}

// classifyWord resolves a word that matched the generic word rule. The
// position decides first: words adjacent to a dot are part of a qualified
// name, and a word directly before "(" is a function name, whatever the
// vocabulary says. Everything else goes through the dialect keyword sets.
func (l *Lexer) classifyWord(text string, end int) *token.Type {
	if l.prevRaw == '.' {
		return token.Name
	}
	l.src.ensure(end + peekAhead)
	follow := l.src.window()[end:]
	if len(follow) > 0 && follow[0] == '(' {
		return token.Name
	}
	for i := 0; i < len(follow); i++ {
		switch follow[i] {
		case ' ', '\t', '\f', '\r', '\n':
			continue
		case '.':
			return token.Name
		}
		break
	}
	return l.d.ClassifyWord(text)
}

func (l *Lexer) update(t *token.Type, text string) {
	l.prevRaw = text[len(text)-1]
	if t.Matches(token.Whitespace) || t.Matches(token.Comment) {
		return
	}
	l.prefix = !endsOperand(t, text)
}

// endsOperand reports whether a token completes an operand, meaning a
// minus sign right after it is a subtraction.
func endsOperand(t *token.Type, text string) bool {
	switch {
	case t.Matches(token.Name), t.Matches(token.String), t.Matches(token.Number),
		t.Matches(token.Literal), t.Matches(token.Wildcard):
		return true
	case t.Matches(token.Punctuation):
		return text == ")" || text == "]"
	default:
		return false
	}
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		'0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isOperandByte(b byte) bool {
	return b == ')' || b == ']' || isWordByte(b)
}
