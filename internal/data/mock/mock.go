package mock

import (
	"github.com/gdql/songsim/internal/data"
)

// Store is a mock that returns configurable results (for detector and session tests
// that need to observe or control store calls).
type Store struct {
	InsertFunc func(song data.Song) bool
	FindFunc   func(title string) *data.Song
	RemoveFunc func(title string) bool
	AllFunc    func() []*data.Song
	LenFunc    func() int

	Inserted []data.Song
	Removed  []string
}

var _ data.Store = (*Store)(nil)

// Insert records song and calls InsertFunc if set, else reports a new entry.
func (m *Store) Insert(song data.Song) bool {
	m.Inserted = append(m.Inserted, song)
	if m.InsertFunc != nil {
		return m.InsertFunc(song)
	}
	return true
}

// Find calls FindFunc if set, else returns nil.
func (m *Store) Find(title string) *data.Song {
	if m.FindFunc != nil {
		return m.FindFunc(title)
	}
	return nil
}

// Remove records title and calls RemoveFunc if set, else returns false.
func (m *Store) Remove(title string) bool {
	m.Removed = append(m.Removed, title)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(title)
	}
	return false
}

// All calls AllFunc if set, else returns nil.
func (m *Store) All() []*data.Song {
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return nil
}

// Len calls LenFunc if set, else returns len(All()).
func (m *Store) Len() int {
	if m.LenFunc != nil {
		return m.LenFunc()
	}
	return len(m.All())
}
