package usecase

import (
	"fmt"

	"github.com/mikevive/farhost/internal/domain"
)

// ArchiveProjectInput contains the parameters for archiving a project.
type ArchiveProjectInput struct {
	ProjectID int64
}

// ArchiveProject is the use case for archiving a project together with
// its tasks. All cascaded rows get one shared timestamp so a later
// restore can tell them apart from tasks archived independently.
type ArchiveProject struct {
	projects domain.ProjectRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewArchiveProject creates a new ArchiveProject use case.
func NewArchiveProject(projects domain.ProjectRepository, clock domain.Clock, logger domain.Logger) *ArchiveProject {
	return &ArchiveProject{projects: projects, clock: clock, logger: logger}
}

// Execute archives the project. Archiving an already archived project
// is a no-op.
func (uc *ArchiveProject) Execute(in ArchiveProjectInput) error {
	project, err := uc.projects.Get(in.ProjectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}
	if project.IsArchived() {
		return nil
	}

	at := domain.TruncateSecond(uc.clock.Now())
	if err := uc.projects.Archive(in.ProjectID, at); err != nil {
		return fmt.Errorf("archive project: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("projects", fmt.Sprintf("archived project id=%d name=%q", project.ID, project.Name))
	}
	return nil
}
