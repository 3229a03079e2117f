// Package domain contains core business entities and interfaces.
package domain

import "time"

// Project groups related tasks. Archived projects are hidden from
// pickers but keep their historical time entries.
type Project struct {
	ArchivedAt *time.Time // nil = active
	Name       string
	ID         int64
}

// IsArchived returns true if the project has been archived.
func (p *Project) IsArchived() bool {
	return p.ArchivedAt != nil
}

// Task is a unit of work under a project. Time entries and the active
// session reference tasks, never projects directly.
type Task struct {
	ArchivedAt *time.Time
	Name       string
	ID         int64
	ProjectID  int64
}

// IsArchived returns true if the task has been archived.
func (t *Task) IsArchived() bool {
	return t.ArchivedAt != nil
}

// Category is an orthogonal tag applied to tracked time.
type Category struct {
	ArchivedAt *time.Time
	Name       string
	ID         int64
}

// IsArchived returns true if the category has been archived.
func (c *Category) IsArchived() bool {
	return c.ArchivedAt != nil
}

// TimeEntry is a recorded interval of work against a task and category.
// Duration is always end minus start in whole seconds; it is recomputed
// on every write and never trusted independently.
type TimeEntry struct {
	Start           time.Time
	End             time.Time
	ID              int64
	TaskID          int64
	CategoryID      int64
	DurationSeconds int64
}

// ActiveSession is the single running timer. At most one exists
// system-wide; its absence means no timer is running.
type ActiveSession struct {
	Start      time.Time
	TaskID     int64
	CategoryID int64
}
