package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/data/bst"
	"github.com/gdql/songsim/internal/data/mock"
	"github.com/gdql/songsim/internal/errors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "songs.json", `[
		{"title": "Alpha", "text": "the night is dark"},
		{"title": "Beta", "text": "night is dark and cold"}
	]`)
	entries, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Title: "Alpha", Text: "the night is dark"},
		{Title: "Beta", Text: "night is dark and cold"},
	}, entries)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "songs.yml", "- title: Gamma\n  text: sunshine happy day\n")
	entries, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Entry{{Title: "Gamma", Text: "sunshine happy day"}}, entries)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.ErrorIs(t, err, &errors.Error{Type: errors.ErrCatalog})

	path := writeFile(t, "bad.json", `{"title": "not a list"}`)
	_, err = Load(path)
	require.ErrorIs(t, err, &errors.Error{Type: errors.ErrCatalog})
	require.Contains(t, err.Error(), "parse json")
}

func TestInsert_Counts(t *testing.T) {
	store := bst.New()
	entries := []Entry{
		{Title: "  Alpha ", Text: "the night is dark"},
		{Title: "", Text: "orphan"},
		{Title: "Beta", Text: "night is dark and cold"},
		{Title: "Alpha", Text: "rewritten"},
	}
	added, replaced, skipped, err := Insert(context.Background(), store, entries)
	require.NoError(t, err)
	require.Equal(t, 2, added)
	require.Equal(t, 1, replaced)
	require.Equal(t, 1, skipped)

	require.Equal(t, []string{"Alpha", "Beta"}, store.Titles())
	require.Equal(t, "rewritten", store.Find("Alpha").Text())
}

func TestInsert_Cancelled(t *testing.T) {
	m := &mock.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	added, _, _, err := Insert(ctx, m, []Entry{{Title: "A", Text: "a"}})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, added)
	require.Empty(t, m.Inserted)
}

func TestInsert_UsesStore(t *testing.T) {
	m := &mock.Store{
		InsertFunc: func(s data.Song) bool { return s.Title() != "dup" },
	}
	added, replaced, _, err := Insert(context.Background(), m, []Entry{{Title: "x"}, {Title: "dup"}})
	require.NoError(t, err)
	require.Equal(t, 1, added)
	require.Equal(t, 1, replaced)
	require.Len(t, m.Inserted, 2)
}
