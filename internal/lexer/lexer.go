package lexer

import (
	"github.com/gdql/songsim/internal/token"
)

// Lexer tokenizes song text.
type Lexer interface {
	NextToken() token.Token
	PeekToken() token.Token
	Position() token.Position
}

type lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
	line    int
	col     int
	peeked  *token.Token
}

// isWordByte reports whether b belongs inside a word: ASCII letters, ASCII digits
// and the apostrophe. Everything else, including non-ASCII bytes, separates words.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '\'':
		return true
	}
	return false
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// New creates a lexer for the given text.
func New(input string) Lexer {
	l := &lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.pos < len(l.input) && l.readPos > 0 && l.input[l.pos] == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) Position() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *lexer) NextToken() token.Token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.nextToken()
}

func (l *lexer) PeekToken() token.Token {
	if l.peeked == nil {
		t := l.nextToken()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *lexer) nextToken() token.Token {
	for !l.atEnd() && !isWordByte(l.ch) {
		l.readChar()
	}
	if l.atEnd() {
		return token.Token{Type: token.EOF, Pos: l.Position()}
	}
	return l.readWord(l.Position())
}

func (l *lexer) readWord(start token.Position) token.Token {
	buf := make([]byte, 0, 16)
	for !l.atEnd() && isWordByte(l.ch) {
		buf = append(buf, toLower(l.ch))
		l.readChar()
	}
	return token.Token{Type: token.WORD, Literal: string(buf), Pos: start}
}

// Tokens returns every word of text in order of appearance.
func Tokens(text string) []string {
	var out []string
	l := New(text)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		out = append(out, tok.Literal)
	}
	return out
}

// Tokenize maps each lowercased word of text to its number of occurrences.
// The result is never nil.
func Tokenize(text string) map[string]int {
	counts := make(map[string]int)
	l := New(text)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		counts[tok.Literal]++
	}
	return counts
}
