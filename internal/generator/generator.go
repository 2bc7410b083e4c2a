// Package generator produces random song lyrics from categorized word lists.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultChorusLines is the number of lines in each chorus of a generated song.
const DefaultChorusLines = 2

// Generator builds verses and songs. Not safe for concurrent use (shares its *rand.Rand).
type Generator struct {
	words       map[string][]string
	rng         *rand.Rand
	chorusLines int
	upper       cases.Caser
	logger      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithChorusLines sets the chorus length used by SongText. Values below 1 are ignored.
func WithChorusLines(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.chorusLines = n
		}
	}
}

// WithLogger sets the logger used while loading the lexicon.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New loads every category from lex. A lexicon without nouns cannot produce a verse,
// so the sample lexicon is used instead (and logged).
func New(ctx context.Context, lex Lexicon, rng *rand.Rand, opts ...Option) (*Generator, error) {
	g := &Generator{
		words:       make(map[string][]string, len(Categories)),
		rng:         rng,
		chorusLines: DefaultChorusLines,
		upper:       cases.Upper(language.Und),
		logger:      slog.Default(),
	}
	for _, o := range opts {
		o(g)
	}
	for _, c := range Categories {
		ws, err := lex.Words(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("load category %s: %w", c, err)
		}
		g.words[c] = ws
	}
	if len(g.words[Noun]) == 0 {
		g.logger.Debug("lexicon has no nouns, using sample lexicon")
		for c, ws := range SampleLexicon() {
			g.words[c] = ws
		}
	}
	return g, nil
}

// pick returns a random word of the category, or "" when it is empty.
func (g *Generator) pick(category string) string {
	ws := g.words[category]
	if len(ws) == 0 {
		return ""
	}
	return ws[g.rng.IntN(len(ws))]
}

func (g *Generator) coin() bool {
	return g.rng.IntN(2) == 1
}

// join joins the non-empty words with single spaces.
func join(words ...string) string {
	out := words[:0:0]
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// capitalize upper-cases the first rune only.
func (g *Generator) capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return g.upper.String(s[:size]) + s[size:]
}

// SimpleVerse returns "[S] [P] N V [C]." with the first letter capitalized.
func (g *Generator) SimpleVerse() string {
	var words []string
	if g.coin() {
		words = append(words, g.pick(Possessive))
	}
	if g.coin() {
		words = append(words, g.pick(Preposition))
	}
	words = append(words, g.pick(Noun), g.pick(Verb))
	if g.coin() {
		words = append(words, g.pick(Closing))
	}
	return g.capitalize(join(words...)) + "."
}

// PoeticVerse returns "[Adj] N, P N V." with the first letter capitalized.
func (g *Generator) PoeticVerse() string {
	var first []string
	if g.coin() {
		first = append(first, g.pick(Adjective))
	}
	first = append(first, g.pick(Noun))
	second := join(g.pick(Preposition), g.pick(Noun), g.pick(Verb))
	return g.capitalize(join(first...) + ", " + second + ".")
}

// Chorus returns lines "Oh, <hook> <verb>." sharing one hook noun, each ending in a newline.
func (g *Generator) Chorus(lines int) string {
	hook := g.pick(Noun)
	var b strings.Builder
	for range lines {
		b.WriteString(g.capitalize(join("Oh,", hook, g.pick(Verb))))
		b.WriteString(".\n")
	}
	return b.String()
}

// SongText returns a full song: two verses, each followed by the chorus.
func (g *Generator) SongText() string {
	var b strings.Builder
	b.WriteString("--- Verse 1 ---\n")
	b.WriteString(g.PoeticVerse() + "\n" + g.SimpleVerse() + "\n\n")
	b.WriteString("--- Chorus ---\n")
	b.WriteString(g.Chorus(g.chorusLines) + "\n")
	b.WriteString("--- Verse 2 ---\n")
	b.WriteString(g.SimpleVerse() + "\n" + g.PoeticVerse() + "\n\n")
	b.WriteString("--- Chorus ---\n")
	b.WriteString(g.Chorus(g.chorusLines) + "\n")
	return b.String()
}
