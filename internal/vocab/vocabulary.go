// Package vocab assigns stable integer indices to words.
//
// A Vocabulary only grows: indices are handed out in first-seen order and are never
// reused or reassigned, even after the songs that introduced a word are gone.
package vocab

// Vocabulary maps words to stable, dense, non-negative indices.
// The zero value is not usable; call New.
type Vocabulary struct {
	words   []string
	indexOf map[string]int
}

// New returns an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{indexOf: make(map[string]int)}
}

// Ensure returns the index of word, appending it first if it has not been seen.
func (v *Vocabulary) Ensure(word string) int {
	if idx, ok := v.indexOf[word]; ok {
		return idx
	}
	idx := len(v.words)
	v.words = append(v.words, word)
	v.indexOf[word] = idx
	return idx
}

// Lookup returns the index of word without modifying the vocabulary.
func (v *Vocabulary) Lookup(word string) (int, bool) {
	idx, ok := v.indexOf[word]
	return idx, ok
}

// Word returns the word stored at index i.
func (v *Vocabulary) Word(i int) (string, bool) {
	if i < 0 || i >= len(v.words) {
		return "", false
	}
	return v.words[i], true
}

// Words returns a copy of all words in index order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Len returns the number of distinct words seen so far.
func (v *Vocabulary) Len() int { return len(v.words) }
