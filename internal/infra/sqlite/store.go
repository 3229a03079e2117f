// Package sqlite implements the persistence store on an embedded SQLite
// database. All timestamps are stored as naive local wall-clock strings
// with second precision.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mikevive/farhost/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

var seedProjects = []string{
	"Architecture",
	"Platform",
	"Product",
	"Team",
}

var seedCategories = []string{
	"Admin",
	"Break",
	"Burnout",
	"Code",
	"Code review",
	"Communication",
	"Daily planning",
	"Distraction",
	"Improvements",
	"Interviewing",
	"Learning",
	"Long-term planning",
	"Meeting",
	"Mentorship",
	"Research",
	"Support",
	"System Design",
}

// Store owns the SQLite connection and hands out the per-entity
// repositories. The pool is capped at a single connection so statements
// from concurrent bubbletea commands are serialized.
type Store struct {
	db *sql.DB
}

// Projects returns the project repository.
func (s *Store) Projects() *ProjectRepo { return &ProjectRepo{db: s.db} }

// Tasks returns the task repository.
func (s *Store) Tasks() *TaskRepo { return &TaskRepo{db: s.db} }

// Categories returns the category repository.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{db: s.db} }

// Entries returns the time entry repository.
func (s *Store) Entries() *EntryRepo { return &EntryRepo{db: s.db} }

// Sessions returns the active session repository.
func (s *Store) Sessions() *SessionRepo { return &SessionRepo{db: s.db} }

// Reports returns the aggregate report reader.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{db: s.db} }

// Open opens (creating if needed) the database at path, applies the
// schema, and seeds default projects and categories on first run.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=8000", path)
	return open(dsn)
}

// OpenInMemory opens a fresh in-memory database. Used by tests.
func OpenInMemory() (*Store, error) {
	return open("file::memory:?_foreign_keys=on")
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return s.seed()
}

// seed inserts default projects and categories if the tables are empty.
func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count == 0 {
		for _, name := range seedProjects {
			if _, err := s.db.Exec(`INSERT INTO projects (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed project %q: %w", name, err)
			}
		}
	}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		for _, name := range seedCategories {
			if _, err := s.db.Exec(`INSERT INTO categories (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
		}
	}
	return nil
}

// formatTime renders a timestamp in the naive wall-clock layout.
func formatTime(t time.Time) string {
	return t.Format(domain.TimeLayout)
}

// parseTime reads a stored timestamp back as local time.
func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// parseNullTime reads an optional stored timestamp.
func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
