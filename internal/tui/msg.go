package tui

import (
	"github.com/mikevive/farhost/internal/domain"
	"github.com/mikevive/farhost/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgStatusLoaded is sent when the timer status is resolved.
type MsgStatusLoaded struct {
	Status *usecase.TimerStatusOutput
}

func (MsgStatusLoaded) sealed() {}

// MsgPickersLoaded is sent when the timer screen pickers are loaded.
type MsgPickersLoaded struct {
	Projects   []domain.Project
	Tasks      []domain.Task
	Categories []domain.Category
}

func (MsgPickersLoaded) sealed() {}

// MsgProjectTasksLoaded is sent when the task picker is reloaded for a
// newly selected project.
type MsgProjectTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgProjectTasksLoaded) sealed() {}

// MsgTimerStarted is sent when a session starts.
type MsgTimerStarted struct {
	Session *domain.ActiveSession
}

func (MsgTimerStarted) sealed() {}

// MsgTimerStopped is sent when a session stops. Entries holds the
// flushed time entries, split at midnights.
type MsgTimerStopped struct {
	Entries []domain.TimeEntry
}

func (MsgTimerStopped) sealed() {}

// MsgMidnightChecked is sent after the periodic midnight check ran.
type MsgMidnightChecked struct {
	Entries []domain.TimeEntry
}

func (MsgMidnightChecked) sealed() {}

// MsgDailyLoaded is sent when a daily report is loaded.
type MsgDailyLoaded struct {
	Report *usecase.DailyReportOutput
}

func (MsgDailyLoaded) sealed() {}

// MsgWeeklyLoaded is sent when a weekly report is loaded.
type MsgWeeklyLoaded struct {
	Report *usecase.WeeklyReportOutput
}

func (MsgWeeklyLoaded) sealed() {}

// MsgProjectsLoaded is sent when the project list is loaded.
type MsgProjectsLoaded struct {
	Projects []domain.Project
}

func (MsgProjectsLoaded) sealed() {}

// MsgTasksLoaded is sent when the task list of a project is loaded.
type MsgTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgCategoriesLoaded is sent when the category list is loaded.
type MsgCategoriesLoaded struct {
	Categories []domain.Category
}

func (MsgCategoriesLoaded) sealed() {}

// MsgMutationDone is sent after a create, rename, archive, restore, or
// delete completed. The current screen reloads its data.
type MsgMutationDone struct{}

func (MsgMutationDone) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgTick is sent every second to refresh the elapsed readout.
type MsgTick struct{}

func (MsgTick) sealed() {}

// MsgMidnightTick is sent every minute to run the midnight check.
type MsgMidnightTick struct{}

func (MsgMidnightTick) sealed() {}
