package data

import (
	"sort"

	"github.com/gdql/songsim/internal/lexer"
)

// Song is a titled piece of text together with its word counts.
// The zero value is an untitled, empty song.
type Song struct {
	title  string
	text   string
	counts map[string]int
}

// NewSong builds a song and tokenizes its text eagerly.
func NewSong(title, text string) Song {
	return Song{title: title, text: text, counts: lexer.Tokenize(text)}
}

// Title returns the store key.
func (s *Song) Title() string { return s.title }

// Text returns the raw song text.
func (s *Song) Text() string { return s.text }

// WordCounts returns the word -> occurrence mapping derived from Text.
// Callers must not modify the returned map.
func (s *Song) WordCounts() map[string]int {
	return s.counts
}

// UniqueWords returns the number of distinct words in the song.
func (s *Song) UniqueWords() int { return len(s.counts) }

// Words returns the distinct words of the song in ascending order.
func (s *Song) Words() []string {
	out := make([]string, 0, len(s.counts))
	for w := range s.counts {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
