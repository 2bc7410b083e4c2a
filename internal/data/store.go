package data

// Store holds songs keyed by title.
type Store interface {
	// Insert adds song, or replaces the song with the same title in place.
	// It reports whether a new entry was created.
	Insert(song Song) bool
	// Find returns the song stored under title, or nil.
	Find(title string) *Song
	// Remove deletes the song stored under title and reports whether it existed.
	Remove(title string) bool
	// All returns every song in ascending title order.
	All() []*Song
	// Len returns the number of stored songs.
	Len() int
}
