package usecase

import (
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// UpdateEntryInput contains the optional field changes for an entry.
// Nil fields are left untouched.
type UpdateEntryInput struct {
	TaskID     *int64
	CategoryID *int64
	Start      *time.Time
	End        *time.Time
	EntryID    int64
}

// UpdateEntry is the use case for editing a recorded time entry.
type UpdateEntry struct {
	entries    domain.EntryRepository
	tasks      domain.TaskRepository
	categories domain.CategoryRepository
	logger     domain.Logger
}

// NewUpdateEntry creates a new UpdateEntry use case.
func NewUpdateEntry(
	entries domain.EntryRepository,
	tasks domain.TaskRepository,
	categories domain.CategoryRepository,
	logger domain.Logger,
) *UpdateEntry {
	return &UpdateEntry{
		entries:    entries,
		tasks:      tasks,
		categories: categories,
		logger:     logger,
	}
}

// Execute validates the referenced entities, applies the changes, and
// recomputes the duration. Sub-second precision is dropped before the
// interval check.
func (uc *UpdateEntry) Execute(in UpdateEntryInput) error {
	entry, err := uc.entries.Get(in.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}

	if in.TaskID != nil {
		task, err := uc.tasks.Get(*in.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return domain.ErrTaskNotFound
		}
	}
	if in.CategoryID != nil {
		category, err := uc.categories.Get(*in.CategoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
	}

	upd := domain.EntryUpdate{TaskID: in.TaskID, CategoryID: in.CategoryID}
	if in.Start != nil {
		start := domain.TruncateSecond(*in.Start)
		upd.Start = &start
	}
	if in.End != nil {
		end := domain.TruncateSecond(*in.End)
		upd.End = &end
	}

	newStart, newEnd := entry.Start, entry.End
	if upd.Start != nil {
		newStart = *upd.Start
	}
	if upd.End != nil {
		newEnd = *upd.End
	}
	if !newEnd.After(newStart) {
		return domain.ErrInvalidInterval
	}

	if err := uc.entries.Update(in.EntryID, upd); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("entries", fmt.Sprintf("updated entry id=%d", in.EntryID))
	}
	return nil
}
