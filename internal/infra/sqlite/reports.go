package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Ensure ReportRepo implements domain.ReportReader.
var _ domain.ReportReader = (*ReportRepo)(nil)

// ReportRepo computes aggregate totals over time entries. Joins go
// through tasks and projects regardless of archived state so archived
// entities keep their historical totals.
type ReportRepo struct {
	db *sql.DB
}

// TotalsByProject sums durations per project for entries starting in
// [start, end), ordered by project name.
func (r *ReportRepo) TotalsByProject(start, end time.Time) ([]domain.NameTotal, error) {
	return r.nameTotals(
		`SELECT p.name, SUM(te.duration_seconds) AS total
		 FROM time_entries te
		 JOIN tasks t ON te.task_id = t.id
		 JOIN projects p ON t.project_id = p.id
		 WHERE te.start_time >= ? AND te.start_time < ?
		 GROUP BY p.name ORDER BY p.name ASC`,
		start, end,
	)
}

// TotalsByCategory sums durations per category for entries starting in
// [start, end), ordered by category name.
func (r *ReportRepo) TotalsByCategory(start, end time.Time) ([]domain.NameTotal, error) {
	return r.nameTotals(
		`SELECT c.name, SUM(te.duration_seconds) AS total
		 FROM time_entries te
		 JOIN categories c ON te.category_id = c.id
		 WHERE te.start_time >= ? AND te.start_time < ?
		 GROUP BY c.name ORDER BY c.name ASC`,
		start, end,
	)
}

func (r *ReportRepo) nameTotals(query string, start, end time.Time) ([]domain.NameTotal, error) {
	rows, err := r.db.Query(query, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("report totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.NameTotal
	for rows.Next() {
		var t domain.NameTotal
		if err := rows.Scan(&t.Name, &t.TotalSeconds); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TotalsByDay sums durations per calendar day for entries starting in
// [start, end), ordered by day.
func (r *ReportRepo) TotalsByDay(start, end time.Time) ([]domain.DayTotal, error) {
	rows, err := r.db.Query(
		`SELECT date(start_time) AS day, SUM(duration_seconds) AS total
		 FROM time_entries
		 WHERE start_time >= ? AND start_time < ?
		 GROUP BY date(start_time) ORDER BY day ASC`,
		formatTime(start), formatTime(end),
	)
	if err != nil {
		return nil, fmt.Errorf("report totals by day: %w", err)
	}
	defer rows.Close()

	var totals []domain.DayTotal
	for rows.Next() {
		var day string
		var t domain.DayTotal
		if err := rows.Scan(&day, &t.TotalSeconds); err != nil {
			return nil, fmt.Errorf("scan day total: %w", err)
		}
		parsed, err := time.ParseInLocation(domain.DayLayout, day, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse day %q: %w", day, err)
		}
		t.Day = parsed
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
