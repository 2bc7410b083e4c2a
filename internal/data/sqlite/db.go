package sqlite

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens an ephemeral lexicon seeded with the sample word lists.
const MemoryPath = ":memory:"

// DB is a lexicon of generator words grouped by category, backed by SQLite.
type DB struct {
	conn *sql.DB
}

// Open opens a SQLite lexicon at the given path (file path or ":memory:").
// Ensures the schema exists on existing DBs (migration). An in-memory lexicon is
// also seeded, since nothing else could populate it.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, err
	}
	if path == MemoryPath {
		if _, err := conn.Exec(seedSQL); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DB returns the underlying *sql.DB for use with packages that need it (e.g. word list import).
func (db *DB) DB() *sql.DB {
	return db.conn
}

// Words returns the words of a category in insertion order. Unknown categories yield nil.
func (db *DB) Words(ctx context.Context, category string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT word FROM words WHERE category = ? ORDER BY id", category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// CategoryCount is one category with the number of words it holds.
type CategoryCount struct {
	Code        string
	Description string
	Words       int
}

// Categories lists every known category ordered by code, including empty ones.
func (db *DB) Categories(ctx context.Context) ([]CategoryCount, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT c.code, c.description, COUNT(w.id)
		FROM categories c LEFT JOIN words w ON w.category = c.code
		GROUP BY c.code, c.description ORDER BY c.code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Code, &c.Description, &c.Words); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddWord adds word to category, creating the category if needed. Returns false when
// the word was already present or is blank.
func (db *DB) AddWord(ctx context.Context, category, word string) (bool, error) {
	category = strings.TrimSpace(category)
	word = strings.TrimSpace(word)
	if category == "" || word == "" {
		return false, nil
	}
	if _, err := db.conn.ExecContext(ctx, "INSERT OR IGNORE INTO categories (code) VALUES (?)", category); err != nil {
		return false, err
	}
	res, err := db.conn.ExecContext(ctx, "INSERT OR IGNORE INTO words (category, word) VALUES (?, ?)", category, word)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
