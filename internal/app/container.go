// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/mikevive/farhost/internal/domain"
	"github.com/mikevive/farhost/internal/infra/config"
	"github.com/mikevive/farhost/internal/infra/logging"
	"github.com/mikevive/farhost/internal/infra/sqlite"
	"github.com/mikevive/farhost/internal/timer"
	"github.com/mikevive/farhost/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Projects   domain.ProjectRepository
	Tasks      domain.TaskRepository
	Categories domain.CategoryRepository
	Entries    domain.EntryRepository
	Sessions   domain.SessionRepository
	Reports    domain.ReportReader
	Clock      domain.Clock
	Logger     domain.Logger

	Timer *timer.Engine

	// Configuration
	Config *config.Config

	store     *sqlite.Store
	logCloser func() error
}

// New creates a new Container, loading configuration and opening the
// database.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(filepath.Dir(cfg.DBPath), logging.ParseLevel(cfg.Log.Level))

	c := build(store, domain.RealClock{}, logger, cfg)
	c.logCloser = logger.Close
	return c, nil
}

// NewInMemory creates a Container backed by an in-memory database.
// This is useful for testing.
func NewInMemory() (*Container, error) {
	store, err := sqlite.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return build(store, domain.RealClock{}, logging.New("", 0), config.NewDefault()), nil
}

func build(store *sqlite.Store, clock domain.Clock, logger domain.Logger, cfg *config.Config) *Container {
	c := &Container{
		Projects:   store.Projects(),
		Tasks:      store.Tasks(),
		Categories: store.Categories(),
		Entries:    store.Entries(),
		Sessions:   store.Sessions(),
		Reports:    store.Reports(),
		Clock:      clock,
		Logger:     logger,
		Config:     cfg,
		store:      store,
	}
	c.Timer = timer.New(c.Sessions, c.Entries, c.Clock, c.Logger)
	return c
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	projects domain.ProjectRepository,
	tasks domain.TaskRepository,
	categories domain.CategoryRepository,
	entries domain.EntryRepository,
	sessions domain.SessionRepository,
	reports domain.ReportReader,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	c := &Container{
		Projects:   projects,
		Tasks:      tasks,
		Categories: categories,
		Entries:    entries,
		Sessions:   sessions,
		Reports:    reports,
		Clock:      clock,
		Logger:     logger,
		Config:     config.NewDefault(),
	}
	c.Timer = timer.New(sessions, entries, clock, logger)
	return c
}

// Close releases the database and log file.
func (c *Container) Close() error {
	var err error
	if c.store != nil {
		err = c.store.Close()
	}
	if c.logCloser != nil {
		if cerr := c.logCloser(); err == nil {
			err = cerr
		}
	}
	return err
}

// UseCase factory methods

// TimerStatusUseCase returns a new TimerStatus use case.
func (c *Container) TimerStatusUseCase() *usecase.TimerStatus {
	return usecase.NewTimerStatus(c.Sessions, c.Tasks, c.Projects, c.Categories, c.Clock)
}

// DailyReportUseCase returns a new DailyReport use case.
func (c *Container) DailyReportUseCase() *usecase.DailyReport {
	return usecase.NewDailyReport(c.Entries, c.Tasks, c.Projects, c.Categories, c.Reports)
}

// WeeklyReportUseCase returns a new WeeklyReport use case.
func (c *Container) WeeklyReportUseCase() *usecase.WeeklyReport {
	return usecase.NewWeeklyReport(c.Reports)
}

// UpdateEntryUseCase returns a new UpdateEntry use case.
func (c *Container) UpdateEntryUseCase() *usecase.UpdateEntry {
	return usecase.NewUpdateEntry(c.Entries, c.Tasks, c.Categories, c.Logger)
}

// DeleteEntryUseCase returns a new DeleteEntry use case.
func (c *Container) DeleteEntryUseCase() *usecase.DeleteEntry {
	return usecase.NewDeleteEntry(c.Entries, c.Logger)
}

// ArchiveProjectUseCase returns a new ArchiveProject use case.
func (c *Container) ArchiveProjectUseCase() *usecase.ArchiveProject {
	return usecase.NewArchiveProject(c.Projects, c.Clock, c.Logger)
}

// RestoreProjectUseCase returns a new RestoreProject use case.
func (c *Container) RestoreProjectUseCase() *usecase.RestoreProject {
	return usecase.NewRestoreProject(c.Projects, c.Logger)
}
