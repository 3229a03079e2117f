package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Ensure ProjectRepo implements domain.ProjectRepository.
var _ domain.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo persists projects.
type ProjectRepo struct {
	db *sql.DB
}

// ListActive returns non-archived projects ordered by name.
func (r *ProjectRepo) ListActive() ([]domain.Project, error) {
	return r.list(`SELECT id, name, archived_at FROM projects WHERE archived_at IS NULL ORDER BY name ASC`)
}

// ListArchived returns archived projects ordered by name.
func (r *ProjectRepo) ListArchived() ([]domain.Project, error) {
	return r.list(`SELECT id, name, archived_at FROM projects WHERE archived_at IS NOT NULL ORDER BY name ASC`)
}

func (r *ProjectRepo) list(query string) ([]domain.Project, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// Get retrieves a project by ID. Returns nil if not found.
func (r *ProjectRepo) Get(id int64) (*domain.Project, error) {
	row := r.db.QueryRow(`SELECT id, name, archived_at FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// Create inserts a new project.
func (r *ProjectRepo) Create(name string) (*domain.Project, error) {
	res, err := r.db.Exec(`INSERT INTO projects (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("project id: %w", err)
	}
	return &domain.Project{ID: id, Name: name}, nil
}

// Rename updates a project's name.
func (r *ProjectRepo) Rename(id int64, name string) error {
	if _, err := r.db.Exec(`UPDATE projects SET name = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("rename project: %w", err)
	}
	return nil
}

// Archive archives the project at the given time. The same timestamp
// cascades to every non-archived task so a later Restore can scope to
// exactly this batch, and the active session is cleared if it points at
// a task under this project. All in one transaction.
func (r *ProjectRepo) Archive(id int64, at time.Time) error {
	ts := formatTime(domain.TruncateSecond(at))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin archive project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE projects SET archived_at = ? WHERE id = ?`, ts, id); err != nil {
		return fmt.Errorf("archive project: %w", err)
	}
	if _, err := tx.Exec(`UPDATE tasks SET archived_at = ? WHERE project_id = ? AND archived_at IS NULL`, ts, id); err != nil {
		return fmt.Errorf("archive project tasks: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM active_session WHERE task_id IN (SELECT id FROM tasks WHERE project_id = ?)`, id); err != nil {
		return fmt.Errorf("clear session for project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive project: %w", err)
	}
	return nil
}

// Restore un-archives the project and only the tasks whose archive
// timestamp equals the project's. Tasks archived independently keep
// their state.
func (r *ProjectRepo) Restore(id int64) error {
	project, err := r.Get(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}
	if project.ArchivedAt == nil {
		return domain.ErrNotArchived
	}
	ts := formatTime(*project.ArchivedAt)

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin restore project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE tasks SET archived_at = NULL WHERE project_id = ? AND archived_at = ?`, id, ts); err != nil {
		return fmt.Errorf("restore project tasks: %w", err)
	}
	if _, err := tx.Exec(`UPDATE projects SET archived_at = NULL WHERE id = ?`, id); err != nil {
		return fmt.Errorf("restore project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore project: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var archived sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &archived); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	at, err := parseNullTime(archived)
	if err != nil {
		return nil, err
	}
	p.ArchivedAt = at
	return &p, nil
}
