package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/korjavin/speedquestions/database"
	"github.com/korjavin/speedquestions/models"
	"gopkg.in/yaml.v3"
)

// DataError reports a question source that is missing, unreadable, or not
// in the expected format.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("load questions from %s: %v", e.Path, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// Load reads the whole question collection at path. The format is picked by
// file extension: YAML for .yaml/.yml, SQLite for .db/.sqlite/.sqlite3, and
// JSON otherwise. Either everything loads or a *DataError is returned.
// The command always reads questions.json; the YAML and SQLite formats are
// for library callers that pass their own path.
func Load(path string) ([]models.Question, error) {
	var (
		qs  []models.Question
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		qs, err = loadSQLite(path)
	case ".yaml", ".yml":
		qs, err = loadFile(path, yaml.Unmarshal)
	default:
		qs, err = loadFile(path, json.Unmarshal)
	}
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}
	return qs, nil
}

func loadFile(path string, unmarshal func([]byte, any) error) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var qs []models.Question
	if err := unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return qs, nil
}

func loadSQLite(path string) ([]models.Question, error) {
	// sqlite would otherwise report a missing file only as "unable to open".
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	qs, err := db.Questions(context.Background())
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return qs, nil
}
