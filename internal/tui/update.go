package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikevive/farhost/internal/domain"
	"github.com/mikevive/farhost/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgStatusLoaded:
		m.status = msg.Status
		return m, nil

	case MsgPickersLoaded:
		m.pickerProjects = msg.Projects
		m.pickerTasks = msg.Tasks
		m.pickerCategories = msg.Categories
		m.projectCursor = clamp(m.projectCursor, len(m.pickerProjects))
		m.taskCursor = clamp(m.taskCursor, len(m.pickerTasks))
		m.categoryCursor = clamp(m.categoryCursor, len(m.pickerCategories))
		return m, nil

	case MsgProjectTasksLoaded:
		m.pickerTasks = msg.Tasks
		m.taskCursor = 0
		return m, nil

	case MsgTimerStarted, MsgTimerStopped:
		m.err = nil
		return m, m.loadStatus()

	case MsgMidnightChecked:
		if len(msg.Entries) == 0 {
			return m, nil
		}
		// A split happened; stale screens reload lazily on navigation.
		return m, m.loadStatus()

	case MsgDailyLoaded:
		m.daily = msg.Report
		m.entryTable.SetRows(entryRows(msg.Report))
		m.entryTable.SetCursor(clamp(m.entryTable.Cursor(), len(msg.Report.Rows)))
		return m, nil

	case MsgWeeklyLoaded:
		m.weekly = msg.Report
		return m, nil

	case MsgProjectsLoaded:
		m.projectRows = msg.Projects
		m.projectTable.SetRows(projectRows(msg.Projects))
		m.projectTable.SetCursor(clamp(m.projectTable.Cursor(), len(msg.Projects)))
		return m, nil

	case MsgTasksLoaded:
		m.taskRows = msg.Tasks
		m.taskTable.SetRows(taskRows(msg.Tasks))
		m.taskTable.SetCursor(clamp(m.taskTable.Cursor(), len(msg.Tasks)))
		return m, nil

	case MsgCategoriesLoaded:
		m.categoryRows = msg.Categories
		m.categoryTable.SetRows(categoryRows(msg.Categories))
		m.categoryTable.SetCursor(clamp(m.categoryTable.Cursor(), len(msg.Categories)))
		return m, nil

	case MsgMutationDone:
		m.err = nil
		return m, m.reloadScreen()

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgTick:
		cmds := []tea.Cmd{tickCmd()}
		if m.status != nil && m.status.Running || m.screen == ScreenTimer {
			cmds = append(cmds, m.loadStatus())
		}
		return m, tea.Batch(cmds...)

	case MsgMidnightTick:
		return m, tea.Batch(midnightTickCmd(), m.midnightCheck())
	}

	return m, nil
}

// reloadScreen returns the load command for the current screen's data.
func (m *Model) reloadScreen() tea.Cmd {
	switch m.screen {
	case ScreenTimer:
		return tea.Batch(m.loadStatus(), m.loadPickers())
	case ScreenDaily:
		return m.loadDaily(m.day)
	case ScreenWeekly:
		return m.loadWeekly(m.week)
	case ScreenProjects:
		return m.loadProjects(m.showArchived)
	case ScreenTasks:
		if m.selectedProject == nil {
			return nil
		}
		return m.loadTasks(m.selectedProject.ID, m.showArchived)
	case ScreenCategories:
		return m.loadCategories(m.showArchived)
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeCommand:
		return m.handleCommandKey(msg)
	case ModeInput:
		return m.handleInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeNormal:
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.commandInput.Reset()
		return m, nil
	case msg.Type == tea.KeyEnter:
		command := strings.TrimSpace(m.commandInput.Value())
		m.mode = ModeNormal
		m.commandInput.Reset()
		return m, m.executeCommand(command)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// executeCommand dispatches a command bar entry. Unknown commands are
// silently ignored.
func (m *Model) executeCommand(command string) tea.Cmd {
	switch command {
	case "t", "timer":
		return m.switchScreen(ScreenTimer)
	case "d", "daily":
		return m.switchScreen(ScreenDaily)
	case "w", "weekly":
		return m.switchScreen(ScreenWeekly)
	case "p", "projects":
		return m.switchScreen(ScreenProjects)
	case "c", "categories":
		return m.switchScreen(ScreenCategories)
	case "q", "quit":
		return tea.Quit
	}
	return nil
}

func (m *Model) switchScreen(s Screen) tea.Cmd {
	m.screen = s
	m.err = nil
	m.showArchived = false
	return m.reloadScreen()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.inputAction = InputNone
		m.nameInput.Reset()
		return m, nil
	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		action := m.inputAction
		m.mode = ModeNormal
		m.inputAction = InputNone
		m.nameInput.Reset()
		if name == "" {
			return m, nil
		}
		return m, m.submitName(action, name)
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) submitName(action InputAction, name string) tea.Cmd {
	switch action {
	case InputAddProject:
		return m.mutate(func() error {
			_, err := m.container.Projects.Create(name)
			return err
		})
	case InputRenameProject:
		id := m.renameID
		return m.mutate(func() error { return m.container.Projects.Rename(id, name) })
	case InputAddTask:
		if m.selectedProject == nil {
			return nil
		}
		projectID := m.selectedProject.ID
		return m.mutate(func() error {
			_, err := m.container.Tasks.Create(projectID, name)
			return err
		})
	case InputRenameTask:
		id := m.renameID
		return m.mutate(func() error { return m.container.Tasks.Rename(id, name) })
	case InputAddCategory:
		return m.mutate(func() error {
			_, err := m.container.Categories.Create(name)
			return err
		})
	case InputRenameCategory:
		id := m.renameID
		return m.mutate(func() error { return m.container.Categories.Rename(id, name) })
	case InputNone:
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		action, id := m.confirmAction, m.confirmID
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, m.runConfirmed(action, id)
	}
	// Anything else cancels.
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
	return m, nil
}

func (m *Model) runConfirmed(action ConfirmAction, id int64) tea.Cmd {
	switch action {
	case ConfirmDeleteEntry:
		return m.deleteEntry(id)
	case ConfirmArchiveProject:
		return m.mutate(func() error {
			return m.container.ArchiveProjectUseCase().Execute(usecase.ArchiveProjectInput{ProjectID: id})
		})
	case ConfirmArchiveTask:
		return m.mutate(func() error {
			return m.container.Tasks.Archive(id, domain.TruncateSecond(m.container.Clock.Now()))
		})
	case ConfirmArchiveCategory:
		return m.mutate(func() error {
			return m.container.Categories.Archive(id, domain.TruncateSecond(m.container.Clock.Now()))
		})
	case ConfirmNone:
	}
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Command):
		m.mode = ModeCommand
		m.commandInput.Reset()
		m.commandInput.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenTimer:
		return m.handleTimerKey(msg)
	case ScreenDaily:
		return m.handleDailyKey(msg)
	case ScreenWeekly:
		return m.handleWeeklyKey(msg)
	case ScreenProjects:
		return m.handleProjectsKey(msg)
	case ScreenTasks:
		return m.handleTasksKey(msg)
	case ScreenCategories:
		return m.handleCategoriesKey(msg)
	}
	return m, nil
}

func (m *Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.pickerFocus = (m.pickerFocus + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.movePicker(-1)

	case key.Matches(msg, m.keys.Down):
		return m.movePicker(1)

	case key.Matches(msg, m.keys.Start), key.Matches(msg, m.keys.Enter):
		if m.taskCursor >= len(m.pickerTasks) || m.categoryCursor >= len(m.pickerCategories) {
			return m, nil
		}
		task := m.pickerTasks[m.taskCursor]
		category := m.pickerCategories[m.categoryCursor]
		return m, m.startTimer(task.ID, category.ID)

	case key.Matches(msg, m.keys.Stop):
		return m, m.stopTimer()
	}
	return m, nil
}

func (m *Model) movePicker(delta int) (tea.Model, tea.Cmd) {
	switch m.pickerFocus {
	case 0:
		prev := m.projectCursor
		m.projectCursor = move(m.projectCursor, delta, len(m.pickerProjects))
		if m.projectCursor != prev {
			return m, m.loadPickerTasks(m.pickerProjects[m.projectCursor].ID)
		}
	case 1:
		m.taskCursor = move(m.taskCursor, delta, len(m.pickerTasks))
	case 2:
		m.categoryCursor = move(m.categoryCursor, delta, len(m.pickerCategories))
	}
	return m, nil
}

func (m *Model) handleDailyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.day = m.day.AddDate(0, 0, -1)
		return m, m.loadDaily(m.day)

	case key.Matches(msg, m.keys.Right):
		m.day = m.day.AddDate(0, 0, 1)
		return m, m.loadDaily(m.day)

	case key.Matches(msg, m.keys.Delete):
		if m.daily == nil || len(m.daily.Rows) == 0 {
			return m, nil
		}
		row := m.daily.Rows[m.entryTable.Cursor()]
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDeleteEntry
		m.confirmID = row.EntryID
		return m, nil
	}
	var cmd tea.Cmd
	m.entryTable, cmd = m.entryTable.Update(msg)
	return m, cmd
}

func (m *Model) handleWeeklyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.week = m.week.AddDate(0, 0, -7)
		return m, m.loadWeekly(m.week)

	case key.Matches(msg, m.keys.Right):
		m.week = m.week.AddDate(0, 0, 7)
		return m, m.loadWeekly(m.week)

	case key.Matches(msg, m.keys.CycleView):
		m.weeklyView = m.weeklyView.Next()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.beginInput(InputAddProject, "")
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if p := m.selectedProjectRow(); p != nil {
			m.renameID = p.ID
			m.beginInput(InputRenameProject, p.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		if p := m.selectedProjectRow(); p != nil && !m.showArchived {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmArchiveProject
			m.confirmID = p.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		if p := m.selectedProjectRow(); p != nil && m.showArchived {
			id := p.ID
			return m, m.mutate(func() error {
				return m.container.RestoreProjectUseCase().Execute(usecase.RestoreProjectInput{ProjectID: id})
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleArchive):
		m.showArchived = !m.showArchived
		return m, m.loadProjects(m.showArchived)

	case key.Matches(msg, m.keys.Enter):
		if p := m.selectedProjectRow(); p != nil {
			selected := *p
			m.selectedProject = &selected
			m.screen = ScreenTasks
			m.showArchived = false
			return m, m.loadTasks(selected.ID, false)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.projectTable, cmd = m.projectTable.Update(msg)
	return m, cmd
}

func (m *Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = ScreenProjects
		m.showArchived = false
		return m, m.loadProjects(false)

	case key.Matches(msg, m.keys.Add):
		m.beginInput(InputAddTask, "")
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if t := m.selectedTaskRow(); t != nil {
			m.renameID = t.ID
			m.beginInput(InputRenameTask, t.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		if t := m.selectedTaskRow(); t != nil && !m.showArchived {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmArchiveTask
			m.confirmID = t.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		if t := m.selectedTaskRow(); t != nil && m.showArchived {
			id := t.ID
			return m, m.mutate(func() error { return m.container.Tasks.Restore(id) })
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleArchive):
		if m.selectedProject == nil {
			return m, nil
		}
		m.showArchived = !m.showArchived
		return m, m.loadTasks(m.selectedProject.ID, m.showArchived)
	}
	var cmd tea.Cmd
	m.taskTable, cmd = m.taskTable.Update(msg)
	return m, cmd
}

func (m *Model) handleCategoriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.beginInput(InputAddCategory, "")
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if c := m.selectedCategoryRow(); c != nil {
			m.renameID = c.ID
			m.beginInput(InputRenameCategory, c.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		if c := m.selectedCategoryRow(); c != nil && !m.showArchived {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmArchiveCategory
			m.confirmID = c.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		if c := m.selectedCategoryRow(); c != nil && m.showArchived {
			id := c.ID
			return m, m.mutate(func() error { return m.container.Categories.Restore(id) })
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleArchive):
		m.showArchived = !m.showArchived
		return m, m.loadCategories(m.showArchived)
	}
	var cmd tea.Cmd
	m.categoryTable, cmd = m.categoryTable.Update(msg)
	return m, cmd
}

func (m *Model) beginInput(action InputAction, initial string) {
	m.mode = ModeInput
	m.inputAction = action
	m.nameInput.SetValue(initial)
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
}

// Selected row accessors. Table cursor and row slices stay in sync
// because both are replaced together on load.

func (m *Model) selectedProjectRow() *domain.Project {
	if len(m.projectRows) == 0 {
		return nil
	}
	return &m.projectRows[clamp(m.projectTable.Cursor(), len(m.projectRows))]
}

func (m *Model) selectedTaskRow() *domain.Task {
	if len(m.taskRows) == 0 {
		return nil
	}
	return &m.taskRows[clamp(m.taskTable.Cursor(), len(m.taskRows))]
}

func (m *Model) selectedCategoryRow() *domain.Category {
	if len(m.categoryRows) == 0 {
		return nil
	}
	return &m.categoryRows[clamp(m.categoryTable.Cursor(), len(m.categoryRows))]
}

// Row builders

func entryRows(report *usecase.DailyReportOutput) []table.Row {
	rows := make([]table.Row, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, table.Row{
			r.Start.Format("15:04:05"),
			r.End.Format("15:04:05"),
			r.ProjectName,
			r.TaskName,
			r.CategoryName,
			domain.FormatClock(r.DurationSeconds),
		})
	}
	return rows
}

func projectRows(projects []domain.Project) []table.Row {
	rows := make([]table.Row, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, table.Row{p.Name, archivedCell(p.ArchivedAt)})
	}
	return rows
}

func taskRows(tasks []domain.Task) []table.Row {
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, table.Row{t.Name, archivedCell(t.ArchivedAt)})
	}
	return rows
}

func categoryRows(categories []domain.Category) []table.Row {
	rows := make([]table.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, table.Row{c.Name, archivedCell(c.ArchivedAt)})
	}
	return rows
}

func archivedCell(at *time.Time) string {
	if at == nil {
		return ""
	}
	return at.Format(domain.TimeLayout)
}

func clamp(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func move(cursor, delta, length int) int {
	return clamp(cursor+delta, length)
}
