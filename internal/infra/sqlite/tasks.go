package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Ensure TaskRepo implements domain.TaskRepository.
var _ domain.TaskRepository = (*TaskRepo)(nil)

// TaskRepo persists tasks.
type TaskRepo struct {
	db *sql.DB
}

// ListActive returns non-archived tasks of a project ordered by name.
func (r *TaskRepo) ListActive(projectID int64) ([]domain.Task, error) {
	return r.list(`SELECT id, project_id, name, archived_at FROM tasks WHERE project_id = ? AND archived_at IS NULL ORDER BY name ASC`, projectID)
}

// ListArchived returns archived tasks of a project ordered by name.
func (r *TaskRepo) ListArchived(projectID int64) ([]domain.Task, error) {
	return r.list(`SELECT id, project_id, name, archived_at FROM tasks WHERE project_id = ? AND archived_at IS NOT NULL ORDER BY name ASC`, projectID)
}

func (r *TaskRepo) list(query string, projectID int64) ([]domain.Task, error) {
	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Get retrieves a task by ID. Returns nil if not found.
func (r *TaskRepo) Get(id int64) (*domain.Task, error) {
	row := r.db.QueryRow(`SELECT id, project_id, name, archived_at FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// Create inserts a new task under a project.
func (r *TaskRepo) Create(projectID int64, name string) (*domain.Task, error) {
	res, err := r.db.Exec(`INSERT INTO tasks (project_id, name) VALUES (?, ?)`, projectID, name)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("task id: %w", err)
	}
	return &domain.Task{ID: id, ProjectID: projectID, Name: name}, nil
}

// Rename updates a task's name.
func (r *TaskRepo) Rename(id int64, name string) error {
	if _, err := r.db.Exec(`UPDATE tasks SET name = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("rename task: %w", err)
	}
	return nil
}

// Archive archives the task and clears the active session if it
// references the task, keeping the session from pointing at an archived
// entity.
func (r *TaskRepo) Archive(id int64, at time.Time) error {
	ts := formatTime(domain.TruncateSecond(at))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin archive task: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE tasks SET archived_at = ? WHERE id = ?`, ts, id); err != nil {
		return fmt.Errorf("archive task: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM active_session WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("clear session for task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive task: %w", err)
	}
	return nil
}

// Restore un-archives the task.
func (r *TaskRepo) Restore(id int64) error {
	if _, err := r.db.Exec(`UPDATE tasks SET archived_at = NULL WHERE id = ?`, id); err != nil {
		return fmt.Errorf("restore task: %w", err)
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var archived sql.NullString
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &archived); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	at, err := parseNullTime(archived)
	if err != nil {
		return nil, err
	}
	t.ArchivedAt = at
	return &t, nil
}
