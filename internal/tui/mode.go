// Package tui provides the terminal user interface for devflow.
package tui

// Screen represents the visible view.
type Screen int

const (
	ScreenTimer      Screen = iota // Timer with project/task/category pickers
	ScreenDaily                    // One day's entries
	ScreenWeekly                   // One week's totals
	ScreenProjects                 // Project management
	ScreenTasks                    // Tasks of the selected project
	ScreenCategories               // Category management
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenTimer:
		return "Timer"
	case ScreenDaily:
		return "Daily"
	case ScreenWeekly:
		return "Weekly"
	case ScreenProjects:
		return "Projects"
	case ScreenTasks:
		return "Tasks"
	case ScreenCategories:
		return "Categories"
	default:
		return "unknown"
	}
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeCommand             // ":" command bar
	ModeInput               // Name input (add/rename)
	ModeConfirm             // Confirmation dialog
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	case ModeInput:
		return "input"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeCommand || m == ModeInput
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone            ConfirmAction = iota
	ConfirmDeleteEntry                   // Delete a time entry
	ConfirmArchiveProject                // Archive a project and its tasks
	ConfirmArchiveTask                   // Archive a task
	ConfirmArchiveCategory               // Archive a category
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDeleteEntry:
		return "delete entry"
	case ConfirmArchiveProject:
		return "archive project"
	case ConfirmArchiveTask:
		return "archive task"
	case ConfirmArchiveCategory:
		return "archive category"
	}
	return ""
}

// InputAction represents what a submitted name input applies to.
type InputAction int

const (
	InputNone InputAction = iota
	InputAddProject
	InputRenameProject
	InputAddTask
	InputRenameTask
	InputAddCategory
	InputRenameCategory
)

// WeeklyView selects the weekly chart grouping.
type WeeklyView int

const (
	WeeklyByDay WeeklyView = iota
	WeeklyByProject
	WeeklyByCategory
)

// String returns the label shown in the weekly header.
func (v WeeklyView) String() string {
	switch v {
	case WeeklyByDay:
		return "by day"
	case WeeklyByProject:
		return "by project"
	case WeeklyByCategory:
		return "by category"
	default:
		return "unknown"
	}
}

// Next cycles to the following weekly view.
func (v WeeklyView) Next() WeeklyView {
	switch v {
	case WeeklyByDay:
		return WeeklyByProject
	case WeeklyByProject:
		return WeeklyByCategory
	default:
		return WeeklyByDay
	}
}
