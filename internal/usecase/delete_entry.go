package usecase

import (
	"fmt"

	"github.com/mikevive/farhost/internal/domain"
)

// DeleteEntryInput contains the parameters for deleting an entry.
type DeleteEntryInput struct {
	EntryID int64
}

// DeleteEntry is the use case for permanently removing a time entry.
type DeleteEntry struct {
	entries domain.EntryRepository
	logger  domain.Logger
}

// NewDeleteEntry creates a new DeleteEntry use case.
func NewDeleteEntry(entries domain.EntryRepository, logger domain.Logger) *DeleteEntry {
	return &DeleteEntry{entries: entries, logger: logger}
}

// Execute deletes the entry. There is no undo.
func (uc *DeleteEntry) Execute(in DeleteEntryInput) error {
	entry, err := uc.entries.Get(in.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}

	if err := uc.entries.Delete(in.EntryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("entries", fmt.Sprintf("deleted entry id=%d duration=%ds", in.EntryID, entry.DurationSeconds))
	}
	return nil
}
