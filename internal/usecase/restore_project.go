package usecase

import (
	"errors"
	"fmt"

	"github.com/mikevive/farhost/internal/domain"
)

// RestoreProjectInput contains the parameters for restoring a project.
type RestoreProjectInput struct {
	ProjectID int64
}

// RestoreProject is the use case for un-archiving a project. Only tasks
// archived in the same cascade come back with it; tasks archived on
// their own stay archived.
type RestoreProject struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewRestoreProject creates a new RestoreProject use case.
func NewRestoreProject(projects domain.ProjectRepository, logger domain.Logger) *RestoreProject {
	return &RestoreProject{projects: projects, logger: logger}
}

// Execute restores the project and its cascade-archived tasks.
func (uc *RestoreProject) Execute(in RestoreProjectInput) error {
	if err := uc.projects.Restore(in.ProjectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) || errors.Is(err, domain.ErrNotArchived) {
			return err
		}
		return fmt.Errorf("restore project: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("projects", fmt.Sprintf("restored project id=%d", in.ProjectID))
	}
	return nil
}
