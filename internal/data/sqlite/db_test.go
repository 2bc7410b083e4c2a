package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_Close(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpen_MemoryIsSeeded(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	nouns, err := db.Words(ctx, "N")
	require.NoError(t, err)
	require.Equal(t, []string{"corazon", "ciudad", "mar", "noche", "camino"}, nouns)

	closings, err := db.Words(ctx, "C")
	require.NoError(t, err)
	require.Contains(t, closings, "de la madrugada")
}

func TestOpen_FileIsNotSeeded(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	defer db.Close()

	nouns, err := db.Words(context.Background(), "N")
	require.NoError(t, err)
	require.Empty(t, nouns)
}

func TestInit_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	require.NoError(t, Init(path))
	require.NoError(t, Init(path))

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	verbs, err := db.Words(context.Background(), "V")
	require.NoError(t, err)
	require.Len(t, verbs, 5)
}

func TestInitSchema_NoSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	require.NoError(t, InitSchema(path))

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	cats, err := db.Categories(context.Background())
	require.NoError(t, err)
	require.Empty(t, cats)
}

func TestWords_UnknownCategory(t *testing.T) {
	db := openMemory(t)
	words, err := db.Words(context.Background(), "X")
	require.NoError(t, err)
	require.Nil(t, words)
}

func TestCategories_Counts(t *testing.T) {
	db := openMemory(t)
	cats, err := db.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 6)
	// ordered by code: Adj, C, N, P, S, V
	require.Equal(t, "Adj", cats[0].Code)
	require.Equal(t, 4, cats[0].Words)
	require.Equal(t, "adjective", cats[0].Description)
	require.Equal(t, "V", cats[5].Code)
	require.Equal(t, 5, cats[5].Words)
}

func TestAddWord(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	added, err := db.AddWord(ctx, "N", "luna")
	require.NoError(t, err)
	require.True(t, added)

	added, err = db.AddWord(ctx, "N", "luna")
	require.NoError(t, err)
	require.False(t, added, "duplicate word")

	added, err = db.AddWord(ctx, "N", "  ")
	require.NoError(t, err)
	require.False(t, added, "blank word")

	nouns, err := db.Words(ctx, "N")
	require.NoError(t, err)
	require.Equal(t, "luna", nouns[len(nouns)-1])
}

func TestAddWord_NewCategory(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	added, err := db.AddWord(ctx, "Adv", "lento")
	require.NoError(t, err)
	require.True(t, added)

	cats, err := db.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, "Adv", cats[1].Code)
	require.Equal(t, 1, cats[1].Words)
}

func TestLoadWordListFromFile_JSON(t *testing.T) {
	db := openMemory(t)
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"V": ["sueña", "late"], "N": ["luna", ""]}`), 0o644))

	loaded, skipped, err := LoadWordListFromFile(context.Background(), db, path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded)  // luna, sueña
	require.Equal(t, 2, skipped) // blank, existing "late"
}

func TestLoadWordListFromFile_YAML(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	defer db.Close()
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("N:\n  - estrella\n  - rio\nP:\n  - hacia\n"), 0o644))

	loaded, skipped, err := LoadWordListFromFile(context.Background(), db, path)
	require.NoError(t, err)
	require.Equal(t, 3, loaded)
	require.Equal(t, 0, skipped)

	nouns, err := db.Words(context.Background(), "N")
	require.NoError(t, err)
	require.Equal(t, []string{"estrella", "rio"}, nouns)
}

func TestLoadWordListFromFile_Errors(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	_, _, err := LoadWordListFromFile(ctx, db, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`["not", "a", "map"]`), 0o644))
	_, _, err = LoadWordListFromFile(ctx, db, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse json")
}
