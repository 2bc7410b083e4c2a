package token

// TokenType identifies the type of lexer token.
type TokenType int

const (
	EOF TokenType = iota

	// WORD is a run of ASCII letters, digits and apostrophes, already lowercased.
	WORD
)

var tokens = [...]string{
	EOF:  "<eof>",
	WORD: "<word>",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokens) {
		return tokens[tt]
	}
	return "<unknown>"
}

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position represents a source position. Line and Column are 1-based; Offset is
// the byte offset into the text.
type Position struct {
	Line   int
	Column int
	Offset int
}
