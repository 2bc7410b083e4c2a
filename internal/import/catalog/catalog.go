// Package catalog loads songs from a source-agnostic JSON or YAML file into a store.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/errors"
	"github.com/gdql/songsim/internal/resolver"
)

// Entry is one song in a catalog file.
// JSON: [{"title": "Alpha", "text": "the night is dark"}]; YAML uses the same keys.
type Entry struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

// Parse decodes catalog entries; ext selects YAML (".yaml", ".yml") or JSON (anything else).
func Parse(raw []byte, ext string) ([]Entry, error) {
	var entries []Entry
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	return entries, nil
}

// Load reads a catalog file. Failures are reported as ErrCatalog.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCatalog, err, "read %s", path)
	}
	entries, err := Parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCatalog, err, "load %s", path)
	}
	return entries, nil
}

// Insert adds entries to store in file order. Titles are normalized; entries with a
// blank title are skipped. A later entry with the same title replaces the earlier song.
func Insert(ctx context.Context, store data.Store, entries []Entry) (added, replaced, skipped int, err error) {
	for _, e := range entries {
		select {
		case <-ctx.Done():
			return added, replaced, skipped, ctx.Err()
		default:
		}
		title := resolver.NormalizeTitle(e.Title)
		if title == "" {
			skipped++
			continue
		}
		if store.Insert(data.NewSong(title, e.Text)) {
			added++
		} else {
			replaced++
		}
	}
	return added, replaced, skipped, nil
}
