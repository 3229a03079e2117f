package domain

import "time"

// ProjectRepository manages project persistence.
type ProjectRepository interface {
	// ListActive returns non-archived projects ordered by name.
	ListActive() ([]Project, error)

	// ListArchived returns archived projects ordered by name.
	ListArchived() ([]Project, error)

	// Get retrieves a project by ID. Returns nil if not found.
	Get(id int64) (*Project, error)

	// Create inserts a new project.
	Create(name string) (*Project, error)

	// Rename updates a project's name.
	Rename(id int64, name string) error

	// Archive archives the project at the given time, cascades the same
	// timestamp to its non-archived tasks, and clears the active session
	// if it references a task under the project.
	Archive(id int64, at time.Time) error

	// Restore un-archives the project and exactly those tasks whose
	// archive timestamp matches the project's.
	Restore(id int64) error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// ListActive returns non-archived tasks of a project ordered by name.
	ListActive(projectID int64) ([]Task, error)

	// ListArchived returns archived tasks of a project ordered by name.
	ListArchived(projectID int64) ([]Task, error)

	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int64) (*Task, error)

	// Create inserts a new task under a project.
	Create(projectID int64, name string) (*Task, error)

	// Rename updates a task's name.
	Rename(id int64, name string) error

	// Archive archives the task and clears the active session if it
	// references the task.
	Archive(id int64, at time.Time) error

	// Restore un-archives the task.
	Restore(id int64) error
}

// CategoryRepository manages category persistence.
type CategoryRepository interface {
	// ListActive returns non-archived categories ordered by name.
	ListActive() ([]Category, error)

	// ListArchived returns archived categories ordered by name.
	ListArchived() ([]Category, error)

	// Get retrieves a category by ID. Returns nil if not found.
	Get(id int64) (*Category, error)

	// Create inserts a new category.
	Create(name string) (*Category, error)

	// Rename updates a category's name.
	Rename(id int64, name string) error

	// Archive archives the category and clears the active session if it
	// references the category.
	Archive(id int64, at time.Time) error

	// Restore un-archives the category.
	Restore(id int64) error
}

// EntryRepository manages time entry persistence.
type EntryRepository interface {
	// Create inserts a new entry. Duration is recomputed from the
	// interval regardless of the value passed in.
	Create(entry TimeEntry) (*TimeEntry, error)

	// Get retrieves an entry by ID. Returns nil if not found.
	Get(id int64) (*TimeEntry, error)

	// Update applies non-nil fields and recomputes the duration.
	Update(id int64, upd EntryUpdate) error

	// Delete removes an entry permanently.
	Delete(id int64) error

	// ListByDay returns entries starting on the given calendar day,
	// ordered chronologically.
	ListByDay(day time.Time) ([]TimeEntry, error)

	// ListByRange returns entries starting in [start, end), ordered
	// chronologically.
	ListByRange(start, end time.Time) ([]TimeEntry, error)
}

// EntryUpdate specifies optional field changes for a time entry.
type EntryUpdate struct {
	TaskID     *int64
	CategoryID *int64
	Start      *time.Time
	End        *time.Time
}

// SessionRepository manages the single active session slot.
type SessionRepository interface {
	// Get retrieves the active session. Returns nil if no timer runs.
	Get() (*ActiveSession, error)

	// Set replaces any existing session with a new one.
	Set(taskID, categoryID int64, start time.Time) (*ActiveSession, error)

	// Clear removes the active session. No-op if none exists.
	Clear() error
}

// NameTotal is an aggregate of tracked seconds under one name.
type NameTotal struct {
	Name         string
	TotalSeconds int64
}

// DayTotal is an aggregate of tracked seconds for one calendar day.
type DayTotal struct {
	Day          time.Time
	TotalSeconds int64
}

// ReportReader exposes aggregate queries over time entries. Totals
// include entries whose task, project, or category has since been
// archived: archiving never hides history.
type ReportReader interface {
	// TotalsByProject sums durations per project for entries starting in
	// [start, end), ordered by project name.
	TotalsByProject(start, end time.Time) ([]NameTotal, error)

	// TotalsByCategory sums durations per category for entries starting
	// in [start, end), ordered by category name.
	TotalsByCategory(start, end time.Time) ([]NameTotal, error)

	// TotalsByDay sums durations per calendar day for entries starting
	// in [start, end), ordered by day.
	TotalsByDay(start, end time.Time) ([]DayTotal, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger is the minimal logging interface used across layers.
type Logger interface {
	// Debug logs a debug message under a category.
	Debug(category, msg string)

	// Info logs an info message under a category.
	Info(category, msg string)

	// Warn logs a warning under a category.
	Warn(category, msg string)

	// Error logs an error under a category.
	Error(category, msg string)
}
