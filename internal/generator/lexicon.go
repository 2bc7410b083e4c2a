package generator

import (
	"context"
	"slices"
)

// Word categories understood by the generator.
const (
	Noun        = "N"
	Verb        = "V"
	Adjective   = "Adj"
	Preposition = "P"
	Possessive  = "S"
	Closing     = "C"
)

// Categories lists every category the generator draws from.
var Categories = []string{Noun, Verb, Adjective, Preposition, Possessive, Closing}

// Lexicon supplies word lists by category. Implemented by the SQLite lexicon and StaticLexicon.
type Lexicon interface {
	Words(ctx context.Context, category string) ([]string, error)
}

// StaticLexicon is an in-memory Lexicon.
type StaticLexicon map[string][]string

// Words returns a copy of the category's words.
func (s StaticLexicon) Words(_ context.Context, category string) ([]string, error) {
	return slices.Clone(s[category]), nil
}

// SampleLexicon returns the built-in word lists.
func SampleLexicon() StaticLexicon {
	return StaticLexicon{
		Noun:        {"corazon", "ciudad", "mar", "noche", "camino"},
		Verb:        {"late", "brilla", "canta", "corre", "susurra"},
		Adjective:   {"oscuro", "silencioso", "eterno", "dulce"},
		Preposition: {"en", "sobre", "bajo", "entre"},
		Possessive:  {"mi", "tu", "nuestro"},
		Closing:     {"de la madrugada", "sin final", "de papel"},
	}
}
