package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// WordList maps a category code to its words.
// Format (JSON): {"N": ["corazon", "mar"], "V": ["canta"]}; YAML uses the same shape.
type WordList map[string][]string

// ParseWordList decodes a word list. YAML is a superset of JSON, but JSON input is
// decoded with encoding/json so syntax errors report JSON offsets.
func ParseWordList(raw []byte, ext string) (WordList, error) {
	var wl WordList
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &wl); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &wl); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	return wl, nil
}

// LoadWordListFromFile reads a JSON or YAML word list and inserts its words into the
// lexicon. Categories are processed in sorted order so ids are reproducible.
// Blank words and words already present are counted as skipped.
func LoadWordListFromFile(ctx context.Context, db *DB, path string) (loaded, skipped int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	wl, err := ParseWordList(raw, filepath.Ext(path))
	if err != nil {
		return 0, 0, err
	}
	cats := make([]string, 0, len(wl))
	for c := range wl {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		for _, w := range wl[c] {
			if err := ctx.Err(); err != nil {
				return loaded, skipped, err
			}
			added, err := db.AddWord(ctx, c, w)
			if err != nil {
				return loaded, skipped, err
			}
			if added {
				loaded++
			} else {
				skipped++
			}
		}
	}
	return loaded, skipped, nil
}
