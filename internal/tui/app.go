package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikevive/farhost/internal/app"
	"github.com/mikevive/farhost/internal/domain"
	"github.com/mikevive/farhost/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies
	container *app.Container
	err       error

	// Timer screen state
	status           *usecase.TimerStatusOutput
	pickerProjects   []domain.Project
	pickerTasks      []domain.Task
	pickerCategories []domain.Category

	// Report state
	daily  *usecase.DailyReportOutput
	weekly *usecase.WeeklyReportOutput
	day    time.Time
	week   time.Time

	// Entity screens
	projectRows     []domain.Project
	taskRows        []domain.Task
	categoryRows    []domain.Category
	selectedProject *domain.Project

	// Components
	keys          KeyMap
	styles        Styles
	entryTable    table.Model
	projectTable  table.Model
	taskTable     table.Model
	categoryTable table.Model
	commandInput  textinput.Model
	nameInput     textinput.Model

	// Numeric state
	screen         Screen
	mode           Mode
	confirmAction  ConfirmAction
	inputAction    InputAction
	weeklyView     WeeklyView
	renameID       int64
	confirmID      int64
	width          int
	height         int
	pickerFocus    int
	projectCursor  int
	taskCursor     int
	categoryCursor int
	showArchived   bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ci := textinput.New()
	ci.Prompt = ":"
	ci.CharLimit = 40

	ni := textinput.New()
	ni.Placeholder = "Name"
	ni.CharLimit = 100

	now := c.Clock.Now()
	return &Model{
		container:     c,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		entryTable:    newTable(entryColumns()),
		projectTable:  newTable(entityColumns("Project")),
		taskTable:     newTable(entityColumns("Task")),
		categoryTable: newTable(entityColumns("Category")),
		commandInput:  ci,
		nameInput:     ni,
		screen:        ScreenTimer,
		mode:          ModeNormal,
		day:           domain.DayStart(now),
		week:          domain.WeekStart(now),
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadStatus(),
		m.loadPickers(),
		tickCmd(),
		midnightTickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return MsgTick{}
	})
}

func midnightTickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg {
		return MsgMidnightTick{}
	})
}

func entryColumns() []table.Column {
	return []table.Column{
		{Title: "Start", Width: 8},
		{Title: "End", Width: 8},
		{Title: "Project", Width: 16},
		{Title: "Task", Width: 20},
		{Title: "Category", Width: 14},
		{Title: "Duration", Width: 9},
	}
}

func entityColumns(name string) []table.Column {
	return []table.Column{
		{Title: name, Width: 32},
		{Title: "Archived", Width: 19},
	}
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Colors.Muted).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(Colors.TextSelected).
		Bold(true)
	t.SetStyles(s)
	return t
}

// Commands

func (m *Model) loadStatus() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.TimerStatusUseCase().Execute()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatusLoaded{Status: out}
	}
}

// loadPickers loads the timer screen pickers. The task picker follows
// the project under the cursor, so this command captures the current
// project selection.
func (m *Model) loadPickers() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.container.Projects.ListActive()
		if err != nil {
			return MsgError{Err: err}
		}
		categories, err := m.container.Categories.ListActive()
		if err != nil {
			return MsgError{Err: err}
		}
		var tasks []domain.Task
		if len(projects) > 0 {
			idx := m.projectCursor
			if idx >= len(projects) {
				idx = 0
			}
			if tasks, err = m.container.Tasks.ListActive(projects[idx].ID); err != nil {
				return MsgError{Err: err}
			}
		}
		return MsgPickersLoaded{Projects: projects, Tasks: tasks, Categories: categories}
	}
}

func (m *Model) loadPickerTasks(projectID int64) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.container.Tasks.ListActive(projectID)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgProjectTasksLoaded{Tasks: tasks}
	}
}

func (m *Model) startTimer(taskID, categoryID int64) tea.Cmd {
	return func() tea.Msg {
		session, err := m.container.Timer.Start(taskID, categoryID)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTimerStarted{Session: session}
	}
}

func (m *Model) stopTimer() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.container.Timer.Stop()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTimerStopped{Entries: entries}
	}
}

func (m *Model) midnightCheck() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.container.Timer.CheckMidnightSplit()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMidnightChecked{Entries: entries}
	}
}

func (m *Model) loadDaily(day time.Time) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DailyReportUseCase().Execute(usecase.DailyReportInput{Day: day})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgDailyLoaded{Report: out}
	}
}

func (m *Model) loadWeekly(day time.Time) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.WeeklyReportUseCase().Execute(usecase.WeeklyReportInput{Day: day})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgWeeklyLoaded{Report: out}
	}
}

func (m *Model) loadProjects(archived bool) tea.Cmd {
	return func() tea.Msg {
		var (
			projects []domain.Project
			err      error
		)
		if archived {
			projects, err = m.container.Projects.ListArchived()
		} else {
			projects, err = m.container.Projects.ListActive()
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgProjectsLoaded{Projects: projects}
	}
}

func (m *Model) loadTasks(projectID int64, archived bool) tea.Cmd {
	return func() tea.Msg {
		var (
			tasks []domain.Task
			err   error
		)
		if archived {
			tasks, err = m.container.Tasks.ListArchived(projectID)
		} else {
			tasks, err = m.container.Tasks.ListActive(projectID)
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: tasks}
	}
}

func (m *Model) loadCategories(archived bool) tea.Cmd {
	return func() tea.Msg {
		var (
			categories []domain.Category
			err        error
		)
		if archived {
			categories, err = m.container.Categories.ListArchived()
		} else {
			categories, err = m.container.Categories.ListActive()
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCategoriesLoaded{Categories: categories}
	}
}

func (m *Model) deleteEntry(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.container.DeleteEntryUseCase().Execute(usecase.DeleteEntryInput{EntryID: id}); err != nil {
			return MsgError{Err: err}
		}
		return MsgMutationDone{}
	}
}

func (m *Model) mutate(fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return MsgError{Err: err}
		}
		return MsgMutationDone{}
	}
}
