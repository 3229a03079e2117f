// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/mikevive/farhost/internal/domain"
)

// StoppedStatusLine is shown when no timer is running.
const StoppedStatusLine = "Timer Stopped"

// TimerStatusOutput describes the running timer, if any.
type TimerStatusOutput struct {
	Line           string // "{project} > {task} > {category} | HH:MM:SS" or StoppedStatusLine
	ProjectName    string
	TaskName       string
	CategoryName   string
	ElapsedSeconds int64
	Running        bool
}

// TimerStatus is the use case for rendering the current timer state.
type TimerStatus struct {
	sessions   domain.SessionRepository
	tasks      domain.TaskRepository
	projects   domain.ProjectRepository
	categories domain.CategoryRepository
	clock      domain.Clock
}

// NewTimerStatus creates a new TimerStatus use case.
func NewTimerStatus(
	sessions domain.SessionRepository,
	tasks domain.TaskRepository,
	projects domain.ProjectRepository,
	categories domain.CategoryRepository,
	clock domain.Clock,
) *TimerStatus {
	return &TimerStatus{
		sessions:   sessions,
		tasks:      tasks,
		projects:   projects,
		categories: categories,
		clock:      clock,
	}
}

// Execute resolves the active session into a display line. A session
// whose task, project, or category can no longer be found is reported
// as stopped rather than failing.
func (uc *TimerStatus) Execute() (*TimerStatusOutput, error) {
	stopped := &TimerStatusOutput{Line: StoppedStatusLine}

	session, err := uc.sessions.Get()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return stopped, nil
	}

	task, err := uc.tasks.Get(session.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return stopped, nil
	}

	project, err := uc.projects.Get(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return stopped, nil
	}

	category, err := uc.categories.Get(session.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return stopped, nil
	}

	elapsed := int64(uc.clock.Now().Sub(session.Start).Seconds())
	return &TimerStatusOutput{
		Line: fmt.Sprintf("%s > %s > %s | %s",
			project.Name, task.Name, category.Name, domain.FormatClock(elapsed)),
		ProjectName:    project.Name,
		TaskName:       task.Name,
		CategoryName:   category.Name,
		ElapsedSeconds: elapsed,
		Running:        true,
	}, nil
}
