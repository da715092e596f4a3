package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the archive's sqlite database. Embedding vectors are kept
// as JSON text in the vector column; distance ranking happens in Go.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens (creating if needed) the archive database at path and sets
// up the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{conn: conn, path: path}
	if err := s.setupTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setup database tables: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) setupTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS interviews (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			subject_name TEXT,
			interviewer TEXT,
			occupation TEXT,
			political_affiliation TEXT,
			comments TEXT,
			raw_transcript TEXT,
			date_conducted TEXT,
			subject_age TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS interview_chunks (
			id TEXT PRIMARY KEY,
			interview_id TEXT NOT NULL REFERENCES interviews (id) ON DELETE CASCADE,
			sequence INTEGER NOT NULL,
			content TEXT NOT NULL,
			speaker TEXT,
			vector TEXT NOT NULL,
			start_time REAL NOT NULL,
			end_time REAL NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(interview_id, sequence)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_interview ON interview_chunks(interview_id)`,
	}

	for _, query := range queries {
		if _, err := s.conn.Exec(query); err != nil {
			return fmt.Errorf("execute query: %s, error: %w", query, err)
		}
	}

	return nil
}
