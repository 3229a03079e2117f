package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Ensure EntryRepo implements domain.EntryRepository.
var _ domain.EntryRepository = (*EntryRepo)(nil)

// EntryRepo persists time entries.
type EntryRepo struct {
	db *sql.DB
}

const entryColumns = `id, task_id, category_id, start_time, end_time, duration_seconds`

// Create inserts a new entry. The duration column is always recomputed
// from the interval; the caller's value is not trusted.
func (r *EntryRepo) Create(entry domain.TimeEntry) (*domain.TimeEntry, error) {
	start := domain.TruncateSecond(entry.Start)
	end := domain.TruncateSecond(entry.End)
	if !end.After(start) {
		return nil, domain.ErrInvalidInterval
	}
	duration := int64(end.Sub(start) / time.Second)

	res, err := r.db.Exec(
		`INSERT INTO time_entries (task_id, category_id, start_time, end_time, duration_seconds) VALUES (?, ?, ?, ?, ?)`,
		entry.TaskID, entry.CategoryID, formatTime(start), formatTime(end), duration,
	)
	if err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("time entry id: %w", err)
	}
	return &domain.TimeEntry{
		ID:              id,
		TaskID:          entry.TaskID,
		CategoryID:      entry.CategoryID,
		Start:           start,
		End:             end,
		DurationSeconds: duration,
	}, nil
}

// Get retrieves an entry by ID. Returns nil if not found.
func (r *EntryRepo) Get(id int64) (*domain.TimeEntry, error) {
	row := r.db.QueryRow(`SELECT `+entryColumns+` FROM time_entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// Update applies the non-nil fields and recomputes the duration from
// the resulting interval.
func (r *EntryRepo) Update(id int64, upd domain.EntryUpdate) error {
	entry, err := r.Get(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}

	if upd.TaskID != nil {
		entry.TaskID = *upd.TaskID
	}
	if upd.CategoryID != nil {
		entry.CategoryID = *upd.CategoryID
	}
	if upd.Start != nil {
		entry.Start = domain.TruncateSecond(*upd.Start)
	}
	if upd.End != nil {
		entry.End = domain.TruncateSecond(*upd.End)
	}
	if !entry.End.After(entry.Start) {
		return domain.ErrInvalidInterval
	}
	duration := int64(entry.End.Sub(entry.Start) / time.Second)

	if _, err := r.db.Exec(
		`UPDATE time_entries SET task_id = ?, category_id = ?, start_time = ?, end_time = ?, duration_seconds = ? WHERE id = ?`,
		entry.TaskID, entry.CategoryID, formatTime(entry.Start), formatTime(entry.End), duration, id,
	); err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	return nil
}

// Delete removes an entry permanently.
func (r *EntryRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM time_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

// ListByDay returns entries starting on the given calendar day, ordered
// chronologically.
func (r *EntryRepo) ListByDay(day time.Time) ([]domain.TimeEntry, error) {
	return r.ListByRange(domain.DayStart(day), domain.NextDay(day))
}

// ListByRange returns entries starting in [start, end), ordered
// chronologically.
func (r *EntryRepo) ListByRange(start, end time.Time) ([]domain.TimeEntry, error) {
	rows, err := r.db.Query(
		`SELECT `+entryColumns+` FROM time_entries WHERE start_time >= ? AND start_time < ? ORDER BY start_time ASC`,
		formatTime(start), formatTime(end),
	)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func scanEntry(row rowScanner) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var start, end string
	if err := row.Scan(&e.ID, &e.TaskID, &e.CategoryID, &start, &end, &e.DurationSeconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan time entry: %w", err)
	}
	var err error
	if e.Start, err = parseTime(start); err != nil {
		return nil, err
	}
	if e.End, err = parseTime(end); err != nil {
		return nil, err
	}
	return &e, nil
}
