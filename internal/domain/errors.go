package domain

import "errors"

// Domain errors.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidInterval  = errors.New("end must be after start")
	ErrNotArchived      = errors.New("not archived")
)
