// Package vector builds bag-of-words sparse vectors for songs and compares them.
package vector

import (
	"sort"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/vocab"
)

// Entry is a single index-count pair in a sparse vector.
type Entry struct {
	Index int
	Value float64
}

// Sparse is a bag-of-words vector, always sorted by Index with unique indices.
type Sparse []Entry

// Build converts the song's word counts into a Sparse vector.
// Every word is passed through v.Ensure, so unseen words grow the vocabulary.
// Words are registered in ascending order so new indices do not depend on map
// iteration order.
func Build(song *data.Song, v *vocab.Vocabulary) Sparse {
	counts := song.WordCounts()
	if len(counts) == 0 {
		return nil
	}
	out := make(Sparse, 0, len(counts))
	for _, word := range song.Words() {
		out = append(out, Entry{Index: v.Ensure(word), Value: float64(counts[word])})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}
