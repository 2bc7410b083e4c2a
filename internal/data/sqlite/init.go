package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

// Init creates a lexicon database at path with the schema and the sample word lists.
// Safe to call multiple times: existing rows are kept.
func Init(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if _, err := db.Exec(seedSQL); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// InitSchema creates the database with schema only (no seed). Use before importing
// a custom word list.
func InitSchema(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
