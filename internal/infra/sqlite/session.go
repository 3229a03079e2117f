package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Ensure SessionRepo implements domain.SessionRepository.
var _ domain.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persists the single active session. The table's CHECK
// (id = 1) constraint makes a second row impossible.
type SessionRepo struct {
	db *sql.DB
}

// Get retrieves the active session. Returns nil if no timer runs.
func (r *SessionRepo) Get() (*domain.ActiveSession, error) {
	row := r.db.QueryRow(`SELECT task_id, category_id, start_time FROM active_session WHERE id = 1`)

	var s domain.ActiveSession
	var start string
	if err := row.Scan(&s.TaskID, &s.CategoryID, &start); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}
	var err error
	if s.Start, err = parseTime(start); err != nil {
		return nil, err
	}
	return &s, nil
}

// Set replaces any existing session with a new one in one transaction.
func (r *SessionRepo) Set(taskID, categoryID int64, start time.Time) (*domain.ActiveSession, error) {
	start = domain.TruncateSecond(start)

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin set session: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM active_session`); err != nil {
		return nil, fmt.Errorf("replace active session: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO active_session (id, task_id, category_id, start_time) VALUES (1, ?, ?, ?)`,
		taskID, categoryID, formatTime(start),
	); err != nil {
		return nil, fmt.Errorf("set active session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit set session: %w", err)
	}
	return &domain.ActiveSession{TaskID: taskID, CategoryID: categoryID, Start: start}, nil
}

// Clear removes the active session. No-op if none exists.
func (r *SessionRepo) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM active_session`); err != nil {
		return fmt.Errorf("clear active session: %w", err)
	}
	return nil
}
