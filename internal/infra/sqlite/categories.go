package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Ensure CategoryRepo implements domain.CategoryRepository.
var _ domain.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo persists categories.
type CategoryRepo struct {
	db *sql.DB
}

// ListActive returns non-archived categories ordered by name.
func (r *CategoryRepo) ListActive() ([]domain.Category, error) {
	return r.list(`SELECT id, name, archived_at FROM categories WHERE archived_at IS NULL ORDER BY name ASC`)
}

// ListArchived returns archived categories ordered by name.
func (r *CategoryRepo) ListArchived() ([]domain.Category, error) {
	return r.list(`SELECT id, name, archived_at FROM categories WHERE archived_at IS NOT NULL ORDER BY name ASC`)
}

func (r *CategoryRepo) list(query string) ([]domain.Category, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// Get retrieves a category by ID. Returns nil if not found.
func (r *CategoryRepo) Get(id int64) (*domain.Category, error) {
	row := r.db.QueryRow(`SELECT id, name, archived_at FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// Create inserts a new category.
func (r *CategoryRepo) Create(name string) (*domain.Category, error) {
	res, err := r.db.Exec(`INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("category id: %w", err)
	}
	return &domain.Category{ID: id, Name: name}, nil
}

// Rename updates a category's name.
func (r *CategoryRepo) Rename(id int64, name string) error {
	if _, err := r.db.Exec(`UPDATE categories SET name = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("rename category: %w", err)
	}
	return nil
}

// Archive archives the category and clears the active session if it
// references the category.
func (r *CategoryRepo) Archive(id int64, at time.Time) error {
	ts := formatTime(domain.TruncateSecond(at))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin archive category: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE categories SET archived_at = ? WHERE id = ?`, ts, id); err != nil {
		return fmt.Errorf("archive category: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM active_session WHERE category_id = ?`, id); err != nil {
		return fmt.Errorf("clear session for category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive category: %w", err)
	}
	return nil
}

// Restore un-archives the category.
func (r *CategoryRepo) Restore(id int64) error {
	if _, err := r.db.Exec(`UPDATE categories SET archived_at = NULL WHERE id = ?`, id); err != nil {
		return fmt.Errorf("restore category: %w", err)
	}
	return nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	var archived sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &archived); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	at, err := parseNullTime(archived)
	if err != nil {
		return nil, err
	}
	c.ArchivedAt = at
	return &c, nil
}
