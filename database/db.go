package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/korjavin/speedquestions/models"
	_ "github.com/mattn/go-sqlite3"
)

// DB is a read-only view of a SQLite question bank
type DB struct {
	conn *sql.DB
}

// Open opens an existing database file in read-only mode. Tables are never
// created, so a missing file or schema is reported as an error.
func Open(dbPath string) (*DB, error) {
	dsn, err := readOnlyDSN(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{conn: db}, nil
}

// readOnlyDSN turns a filesystem path into a read-only SQLite URI. The path
// is made absolute so it never lands in the URI authority, and escaped so
// '#', '%' and '?' stay part of the file name.
func readOnlyDSN(dbPath string) (string, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: url.Values{"mode": {"ro"}}.Encode(),
	}
	return u.String(), nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Questions returns every row of the questions table in insertion order.
// The options column holds a JSON array of strings.
func (db *DB) Questions(ctx context.Context) ([]models.Question, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, text, options, correct_index FROM questions ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Question
	for rows.Next() {
		var (
			q       models.Question
			options string
		)
		if err := rows.Scan(&q.ID, &q.Text, &options, &q.CorrectIndex); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("question %d: decode options: %w", q.ID, err)
		}
		result = append(result, q)
	}

	return result, rows.Err()
}
