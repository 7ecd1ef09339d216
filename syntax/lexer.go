package syntax

import (
	"unicode"

	"github.com/reusee/clipc/diags"
)

type Lexer struct {
	src    []rune
	offset int
	pos    Pos

	tokens []Token
	errs   []diags.Diagnostic
}

func NewLexer(text string) *Lexer {
	return &Lexer{
		src: []rune(text),
		pos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize scans the whole text. The token slice always ends with exactly one EOF token.
func Tokenize(text string) ([]Token, []diags.Diagnostic) {
	l := NewLexer(text)
	l.run()
	return l.tokens, l.errs
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(n int) rune {
	if l.offset+n < len(l.src) {
		return l.src[l.offset+n]
	}
	return 0
}

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.src)
}

func (l *Lexer) hasPrefix(prefix string) bool {
	i := 0
	for _, r := range prefix {
		if l.peekAt(i) != r {
			return false
		}
		i++
	}
	return true
}

func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	r := l.src[l.offset]
	l.offset++
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return r
}

func (l *Lexer) text(start int) string {
	return string(l.src[start:l.offset])
}

func (l *Lexer) emit(typ TokenType, text string, pos Pos) {
	l.tokens = append(l.tokens, Token{
		Type: typ,
		Text: text,
		Pos:  pos,
	})
}

func (l *Lexer) report(kind diags.Kind, pos Pos, format string, args ...any) {
	l.errs = append(l.errs, diags.New(kind, pos, format, args...))
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) run() {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			break
		}
		start := l.pos
		r := l.peek()

		switch {

		case l.hasPrefix("//"):
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}

		case l.hasPrefix("/*"):
			l.report(diags.MalformedComment, start, "malformed comment")
			l.advance()
			l.advance()
			for !l.atEnd() && !l.hasPrefix("*/") {
				l.advance()
			}
			if l.hasPrefix("*/") {
				l.advance()
				l.advance()
			}

		case isDigit(r):
			l.scanNumber()

		case r == '"':
			l.scanString()

		case isIdentStart(r):
			l.scanIdentifier()

		case r == '@':
			l.scanOperation()

		default:
			if typ, ok := compoundOperators[string([]rune{r, l.peekAt(1)})]; ok {
				text := string([]rune{l.advance(), l.advance()})
				l.emit(typ, text, start)
				continue
			}
			if typ, ok := symbols[r]; ok {
				l.advance()
				l.emit(typ, string(r), start)
				continue
			}
			l.advance()
			l.report(diags.InvalidCharacter, start, "invalid character '%c'", r)
		}
	}

	l.emit(TokenEOF, "", l.pos)
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) scanNumber() {
	startOffset, start := l.offset, l.pos
	hasDot := false
	for {
		r := l.peek()
		if isDigit(r) {
			l.advance()
			continue
		}
		if r == '.' {
			if hasDot {
				// the whole digit/dot run is the offending lexeme
				for isDigit(l.peek()) || l.peek() == '.' {
					l.advance()
				}
				l.report(diags.MalformedNumber, start, "malformed number '%s'", l.text(startOffset))
				return
			}
			hasDot = true
			l.advance()
			continue
		}
		break
	}

	if isIdentStart(l.peek()) {
		for isIdentPart(l.peek()) {
			l.advance()
		}
		l.report(diags.InvalidIdentifier, start, "invalid identifier '%s'", l.text(startOffset))
		return
	}

	typ := TokenIntLiteral
	if hasDot {
		typ = TokenFloatLiteral
	}
	l.emit(typ, l.text(startOffset), start)
}

func (l *Lexer) scanString() {
	startOffset, start := l.offset, l.pos
	l.advance() // opening quote
	for {
		switch l.peek() {
		case 0:
			if l.atEnd() {
				l.report(diags.UnterminatedString, start, "unterminated string")
				return
			}
			l.advance()
		case '\n':
			l.report(diags.UnterminatedString, start, "unterminated string")
			return
		case '"':
			l.advance()
			l.emit(TokenStringLiteral, l.text(startOffset), start)
			return
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanIdentifier() {
	startOffset, start := l.offset, l.pos
	for isIdentPart(l.peek()) {
		l.advance()
	}
	text := l.text(startOffset)
	typ, ok := keywords[text]
	if !ok {
		typ = TokenIdentifier
	}
	l.emit(typ, text, start)
}

func (l *Lexer) scanOperation() {
	startOffset, start := l.offset, l.pos
	l.advance() // sigil
	if !isIdentStart(l.peek()) {
		invalid := "@"
		if !l.atEnd() {
			invalid += string(l.advance())
		}
		l.report(diags.InvalidCharacter, start, "invalid character '%s'", invalid)
		return
	}
	for isIdentPart(l.peek()) {
		l.advance()
	}
	text := l.text(startOffset)
	typ, ok := operations[text]
	if !ok {
		l.report(diags.InvalidOperationName, start, "invalid function '%s'", text)
		return
	}
	l.emit(typ, text, start)
}
