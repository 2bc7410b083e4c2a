// Package resolver normalizes user-entered titles and resolves them against a store.
package resolver

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/errors"
)

// Fallback title prefixes used when the user leaves a title empty.
const (
	GeneratedPrefix = "Song"
	ProbePrefix     = "probe"
)

const maxSuggestions = 5

// NormalizeTitle trims leading and trailing spaces, tabs and line breaks.
func NormalizeTitle(title string) string {
	return strings.Trim(title, " \t\n\r")
}

// FallbackTitle builds a timestamp-derived title such as "Song_1718000000000000000".
func FallbackTitle(prefix string, now time.Time) string {
	return prefix + "_" + strconv.FormatInt(now.UnixNano(), 10)
}

// Suggest returns stored titles that might be what the user meant: titles
// containing the input or contained in it, compared case-insensitively.
// Results follow title order and are capped.
func Suggest(store data.Store, title string) []string {
	lower := strings.ToLower(NormalizeTitle(title))
	if lower == "" {
		return nil
	}
	var out []string
	for _, s := range store.All() {
		n := strings.ToLower(s.Title())
		if strings.Contains(n, lower) || strings.Contains(lower, n) {
			out = append(out, s.Title())
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Resolve returns the song stored under the normalized title. When there is none it
// returns an *errors.Error of type ErrSongNotFound carrying suggestions.
func Resolve(store data.Store, title string) (*data.Song, error) {
	title = NormalizeTitle(title)
	if s := store.Find(title); s != nil {
		return s, nil
	}
	err := &errors.Error{
		Type:        errors.ErrSongNotFound,
		Message:     strconv.Quote(title),
		Suggestions: Suggest(store, title),
	}
	if store.Len() == 0 {
		err.Hint = "the store is empty; generate or create a song first"
	}
	return nil, err
}
