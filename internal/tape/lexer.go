package tape

import (
	"strings"
	"unicode"
)

// Lexer tokenizes .tape file input
type Lexer struct {
	input   string
	pos     int  // current position
	nextPos int  // next position
	ch      byte // current character
	line    int  // line of ch
	column  int  // column of ch
}

// NewLexer creates a new Lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// readChar advances to the next character. Line and column always describe
// the character in l.ch.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.nextPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.nextPos]
	}

	l.pos = l.nextPos
	l.nextPos++
	l.column++
}

// peekChar returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.nextPos >= len(l.input) {
		return 0
	}
	return l.input[l.nextPos]
}

// skipWhitespace skips spaces and tabs (not newlines)
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips a comment line (from # to end of line)
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readString reads a quoted string (single, double, or backtick). The
// second result is false when the input ends before the closing quote.
func (l *Lexer) readString(quote byte) (string, bool) {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(l.ch)
			}
		} else {
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}

	if l.ch != quote {
		return sb.String(), false
	}
	l.readChar() // skip closing quote
	return sb.String(), true
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isIdentifierChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads an optionally signed decimal number, plus a unit suffix
// when it is a duration (500ms, 1.5s).
func (l *Lexer) readNumber() (string, TokenType) {
	start := l.pos
	if l.ch == '-' || l.ch == '+' {
		l.readChar()
	}
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	if !unicode.IsLetter(rune(l.ch)) {
		return l.input[start:l.pos], TOKEN_NUMBER
	}
	for unicode.IsLetter(rune(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.pos], TOKEN_DURATION
}

// NextToken returns the next token in the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF

	case '\n':
		tok.Type = TOKEN_NEWLINE
		tok.Literal = "\n"
		l.readChar()

	case '#':
		l.skipComment()
		return l.NextToken()

	case '@':
		tok.Type = TOKEN_AT
		tok.Literal = "@"
		l.readChar()

	case '"', '\'', '`':
		literal, closed := l.readString(l.ch)
		tok.Type = TOKEN_STRING
		tok.Literal = literal
		if !closed {
			tok.Type = TOKEN_ILLEGAL
		}

	default:
		switch {
		case isDigit(l.ch), (l.ch == '-' || l.ch == '+') && (isDigit(l.peekChar()) || l.peekChar() == '.'):
			tok.Literal, tok.Type = l.readNumber()
		case isIdentifierChar(l.ch):
			tok.Literal = l.readIdentifier()
			tok.Type = LookupKeyword(tok.Literal)
		default:
			tok.Type = TOKEN_ILLEGAL
			tok.Literal = string(l.ch)
			l.readChar()
		}
	}

	return tok
}

// isDigit returns true if ch is a digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentifierChar returns true if ch is valid in an identifier
func isIdentifierChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || isDigit(ch) || ch == '_'
}

// Tokenize returns all tokens from the input (useful for testing)
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
