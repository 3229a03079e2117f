package tui

import (
	"fmt"
	"strings"

	"github.com/mikevive/farhost/internal/domain"
)

const pickerHeight = 8

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	switch m.screen {
	case ScreenTimer:
		b.WriteString(m.viewTimer())
	case ScreenDaily:
		b.WriteString(m.viewDaily())
	case ScreenWeekly:
		b.WriteString(m.viewWeekly())
	case ScreenProjects:
		b.WriteString(m.viewProjects())
	case ScreenTasks:
		b.WriteString(m.viewTasks())
	case ScreenCategories:
		b.WriteString(m.viewCategories())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("devflow — " + m.screen.String())
	if m.status == nil {
		return title
	}
	line := m.status.Line
	if m.status.Running {
		return title + "\n" + m.styles.StatusRunning.Render(line)
	}
	return title + "\n" + m.styles.StatusStopped.Render(line)
}

func (m *Model) viewTimer() string {
	var b strings.Builder

	if m.status != nil && m.status.Running {
		b.WriteString(m.styles.Elapsed.Render(domain.FormatClock(m.status.ElapsedSeconds)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewPicker("Project", projectNames(m.pickerProjects), m.projectCursor, m.pickerFocus == 0))
	b.WriteString("\n")
	b.WriteString(m.viewPicker("Task", taskNames(m.pickerTasks), m.taskCursor, m.pickerFocus == 1))
	b.WriteString("\n")
	b.WriteString(m.viewPicker("Category", categoryNames(m.pickerCategories), m.categoryCursor, m.pickerFocus == 2))
	return b.String()
}

func (m *Model) viewPicker(title string, items []string, cursor int, focused bool) string {
	var b strings.Builder
	if focused {
		b.WriteString(m.styles.PickerTitleFocused.Render("▸ " + title))
	} else {
		b.WriteString(m.styles.PickerTitle.Render("  " + title))
	}
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(m.styles.ItemArchived.Render("    (none)"))
		b.WriteString("\n")
		return b.String()
	}

	// Window the list around the cursor.
	start := 0
	if cursor >= pickerHeight {
		start = cursor - pickerHeight + 1
	}
	end := start + pickerHeight
	if end > len(items) {
		end = len(items)
	}
	for i := start; i < end; i++ {
		if i == cursor {
			b.WriteString(m.styles.CursorSelected.Render("  > "))
			b.WriteString(m.styles.ItemSelected.Render(items[i]))
		} else {
			b.WriteString("    ")
			b.WriteString(m.styles.ItemNormal.Render(items[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewDaily() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render(m.day.Format("Monday, 2006-01-02")))
	b.WriteString("\n\n")
	b.WriteString(m.entryTable.View())
	b.WriteString("\n\n")

	if m.daily != nil {
		b.WriteString(m.styles.Total.Render("Total: " + domain.FormatClock(m.daily.TotalSeconds)))
		if len(m.daily.ProjectTotals) > 0 {
			b.WriteString("\n\n")
			b.WriteString(m.styles.PickerTitle.Render("By project"))
			b.WriteString("\n")
			b.WriteString(renderTotals(m.daily.ProjectTotals))
		}
		if len(m.daily.CategoryTotals) > 0 {
			b.WriteString("\n\n")
			b.WriteString(m.styles.PickerTitle.Render("By category"))
			b.WriteString("\n")
			b.WriteString(renderTotals(m.daily.CategoryTotals))
		}
	}
	return b.String()
}

func renderTotals(totals []domain.NameTotal) string {
	var b strings.Builder
	for i, t := range totals {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %-24s %s", t.Name, domain.FormatClock(t.TotalSeconds))
	}
	return b.String()
}

func (m *Model) viewWeekly() string {
	var b strings.Builder
	weekEnd := m.week.AddDate(0, 0, 6)
	b.WriteString(m.styles.HeaderText.Render(fmt.Sprintf("Week %s – %s (%s)",
		m.week.Format(domain.DayLayout), weekEnd.Format(domain.DayLayout), m.weeklyView)))
	b.WriteString("\n\n")

	if m.weekly == nil {
		return b.String()
	}

	barWidth := m.width / 3
	if barWidth < 10 {
		barWidth = 10
	}
	b.WriteString(m.styles.Bar.Render(RenderBarChart(m.weeklyRows(), barWidth)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Total.Render("Total: " + domain.FormatHours(m.weekly.TotalSeconds)))
	return b.String()
}

func (m *Model) weeklyRows() []BarRow {
	switch m.weeklyView {
	case WeeklyByProject:
		return nameRows(m.weekly.ProjectTotals)
	case WeeklyByCategory:
		return nameRows(m.weekly.CategoryTotals)
	case WeeklyByDay:
	}
	rows := make([]BarRow, 0, len(m.weekly.DayTotals))
	for _, d := range m.weekly.DayTotals {
		rows = append(rows, BarRow{Label: d.Day.Format("Mon"), Seconds: d.TotalSeconds})
	}
	return rows
}

func nameRows(totals []domain.NameTotal) []BarRow {
	rows := make([]BarRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, BarRow{Label: t.Name, Seconds: t.TotalSeconds})
	}
	return rows
}

func (m *Model) viewProjects() string {
	return m.viewEntityTable(m.projectTable.View())
}

func (m *Model) viewTasks() string {
	var b strings.Builder
	if m.selectedProject != nil {
		b.WriteString(m.styles.HeaderText.Render(m.selectedProject.Name))
		b.WriteString("\n\n")
	}
	b.WriteString(m.viewEntityTable(m.taskTable.View()))
	return b.String()
}

func (m *Model) viewCategories() string {
	return m.viewEntityTable(m.categoryTable.View())
}

func (m *Model) viewEntityTable(tableView string) string {
	var b strings.Builder
	if m.showArchived {
		b.WriteString(m.styles.ItemArchived.Render("showing archived"))
		b.WriteString("\n\n")
	}
	b.WriteString(tableView)
	return b.String()
}

func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeCommand:
		return m.styles.InputPrompt.Render(m.commandInput.View())
	case ModeInput:
		return m.styles.InputPrompt.Render("Name: ") + m.nameInput.View()
	case ModeConfirm:
		return m.styles.Dialog.Render(
			m.styles.DialogTitle.Render("Confirm "+m.confirmAction.String()) + "\n" +
				m.styles.DialogPrompt.Render("y to confirm, any other key to cancel"))
	case ModeNormal:
	}
	return m.styles.Footer.Render(m.footerHints())
}

func (m *Model) footerHints() string {
	common := ":cmd  q:quit"
	switch m.screen {
	case ScreenTimer:
		return "tab:picker  j/k:move  s:start  S:stop  " + common
	case ScreenDaily:
		return "h/l:day  j/k:move  x:delete  " + common
	case ScreenWeekly:
		return "h/l:week  v:view  " + common
	case ScreenProjects:
		return "a:add  e:rename  d:archive  u:restore  A:archived  enter:tasks  " + common
	case ScreenTasks:
		return "a:add  e:rename  d:archive  u:restore  A:archived  esc:back  " + common
	case ScreenCategories:
		return "a:add  e:rename  d:archive  u:restore  A:archived  " + common
	}
	return common
}

func projectNames(projects []domain.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

func taskNames(tasks []domain.Task) []string {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}

func categoryNames(categories []domain.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
