// Package fixtures provides shared test data: a seeded lexicon database, the
// Alpha/Beta catalog and populated stores.
package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/data/bst"
	"github.com/gdql/songsim/internal/data/sqlite"
	"github.com/gdql/songsim/internal/import/catalog"
)

// AlphaBeta is the reference catalog: a probe "sun moon sun" scores 1.0 against
// Alpha and 3/sqrt(15) against Beta, and 0 against Gamma.
var AlphaBeta = []catalog.Entry{
	{Title: "Alpha", Text: "sun moon sun"},
	{Title: "Beta", Text: "sun moon star"},
	{Title: "Gamma", Text: "rain falls down"},
}

// CreateTestLexicon creates a temporary lexicon database with schema and sample words.
// Returns the file path and a cleanup function. The database is closed before return.
func CreateTestLexicon(t *testing.T) (path string, cleanup func()) {
	t.Helper()
	dir := t.TempDir()
	path = filepath.Join(dir, "lexicon.db")
	if err := sqlite.Init(path); err != nil {
		t.Fatalf("init lexicon: %v", err)
	}
	cleanup = func() { os.RemoveAll(dir) }
	return path, cleanup
}

// OpenTestLexicon opens a temporary seeded lexicon (closed on test cleanup).
func OpenTestLexicon(t *testing.T) *sqlite.DB {
	t.Helper()
	path, cleanup := CreateTestLexicon(t)
	t.Cleanup(cleanup)
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open lexicon: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Store returns a BST holding entries in order.
func Store(t *testing.T, entries ...catalog.Entry) *bst.Tree {
	t.Helper()
	tree := bst.New()
	for _, e := range entries {
		tree.Insert(data.NewSong(e.Title, e.Text))
	}
	return tree
}

// WriteCatalog writes entries as a JSON catalog file and returns its path.
func WriteCatalog(t *testing.T, entries []catalog.Entry) string {
	t.Helper()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}
