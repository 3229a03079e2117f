package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikevive/farhost/internal/app"
	"github.com/mikevive/farhost/internal/domain"
	"github.com/mikevive/farhost/internal/testutil"
	"github.com/mikevive/farhost/internal/usecase"
)

type tuiFixture struct {
	model      *Model
	container  *app.Container
	sessions   *testutil.MockSessionRepository
	entries    *testutil.MockEntryRepository
	projects   *testutil.MockProjectRepository
	tasks      *testutil.MockTaskRepository
	categories *testutil.MockCategoryRepository
	clock      *testutil.MockClock
}

func newTUIFixture(now time.Time) *tuiFixture {
	f := &tuiFixture{
		sessions:   &testutil.MockSessionRepository{},
		entries:    testutil.NewMockEntryRepository(),
		projects:   testutil.NewMockProjectRepository(),
		tasks:      testutil.NewMockTaskRepository(),
		categories: testutil.NewMockCategoryRepository(),
		clock:      &testutil.MockClock{NowTime: now},
	}
	f.container = app.NewWithDeps(
		f.projects, f.tasks, f.categories, f.entries, f.sessions,
		&testutil.MockReportReader{}, f.clock, testutil.NopLogger{},
	)
	f.model = New(f.container)
	f.model.width = 80
	f.model.height = 24
	return f
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func (f *tuiFixture) press(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	model, cmd := f.model.Update(msg)
	f.model = model.(*Model)
	return cmd
}

// dispatch runs a command and feeds its message back into the model,
// like the bubbletea runtime would.
func (f *tuiFixture) dispatch(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	f.press(t, cmd())
}

func TestCommandBar_SwitchesScreens(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	f.press(t, keyRune(':'))
	assert.Equal(t, ModeCommand, f.model.mode)

	f.press(t, keyRune('d'))
	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Equal(t, ScreenDaily, f.model.screen)
	assert.NotNil(t, cmd)
}

func TestCommandBar_UnknownCommandIgnored(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	f.press(t, keyRune(':'))
	f.press(t, keyRune('z'))
	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Equal(t, ScreenTimer, f.model.screen)
	assert.Nil(t, cmd)
}

func TestCommandBar_Quit(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	f.press(t, keyRune(':'))
	f.press(t, keyRune('q'))
	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTimerScreen_StartAndStop(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	f := newTUIFixture(now)

	project, _ := f.projects.Create("Client Work")
	task, _ := f.tasks.Create(project.ID, "API design")
	category, _ := f.categories.Create("Deep work")

	f.press(t, MsgPickersLoaded{
		Projects:   []domain.Project{*project},
		Tasks:      []domain.Task{*task},
		Categories: []domain.Category{*category},
	})

	cmd := f.press(t, keyRune('s'))
	f.dispatch(t, cmd)

	session, err := f.sessions.Get()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, task.ID, session.TaskID)
	assert.Equal(t, category.ID, session.CategoryID)

	f.clock.Advance(2 * time.Hour)
	cmd = f.press(t, keyRune('S'))
	f.dispatch(t, cmd)

	session, err = f.sessions.Get()
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Len(t, f.entries.Entries, 1)
}

func TestTimerScreen_StartWithoutTasksIsNoop(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	cmd := f.press(t, keyRune('s'))
	assert.Nil(t, cmd)
}

func TestTimerScreen_TabCyclesFocus(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	assert.Equal(t, 0, f.model.pickerFocus)
	f.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, f.model.pickerFocus)
	f.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, f.model.pickerFocus)
	f.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, f.model.pickerFocus)
}

func TestDailyScreen_NavigatesDays(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenDaily

	day := f.model.day
	cmd := f.press(t, keyRune('h'))
	assert.Equal(t, day.AddDate(0, 0, -1), f.model.day)
	assert.NotNil(t, cmd)

	f.press(t, keyRune('l'))
	assert.Equal(t, day, f.model.day)
}

func TestDailyScreen_DeleteEntryWithConfirm(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	f := newTUIFixture(now)
	f.model.screen = ScreenDaily

	entry, err := f.entries.Create(domain.TimeEntry{
		TaskID:     1,
		CategoryID: 1,
		Start:      time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local),
		End:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	f.press(t, MsgDailyLoaded{Report: &usecase.DailyReportOutput{
		Day: domain.DayStart(now),
		Rows: []usecase.DailyReportRow{{
			EntryID:         entry.ID,
			Start:           entry.Start,
			End:             entry.End,
			DurationSeconds: entry.DurationSeconds,
		}},
		TotalSeconds: entry.DurationSeconds,
	}})

	f.press(t, keyRune('x'))
	assert.Equal(t, ModeConfirm, f.model.mode)
	assert.Equal(t, ConfirmDeleteEntry, f.model.confirmAction)

	cmd := f.press(t, keyRune('y'))
	f.dispatch(t, cmd)
	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Empty(t, f.entries.Entries)
}

func TestConfirm_AnyOtherKeyCancels(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.mode = ModeConfirm
	f.model.confirmAction = ConfirmDeleteEntry

	cmd := f.press(t, keyRune('n'))
	assert.Nil(t, cmd)
	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Equal(t, ConfirmNone, f.model.confirmAction)
}

func TestWeeklyScreen_CyclesViewAndWeeks(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 17, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenWeekly

	assert.Equal(t, WeeklyByDay, f.model.weeklyView)
	f.press(t, keyRune('v'))
	assert.Equal(t, WeeklyByProject, f.model.weeklyView)

	week := f.model.week
	f.press(t, keyRune('h'))
	assert.Equal(t, week.AddDate(0, 0, -7), f.model.week)
}

func TestProjectsScreen_AddProject(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenProjects

	f.press(t, keyRune('a'))
	assert.Equal(t, ModeInput, f.model.mode)

	for _, r := range "Ops" {
		f.press(t, keyRune(r))
	}
	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.dispatch(t, cmd)

	projects, err := f.projects.ListActive()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Ops", projects[0].Name)
}

func TestProjectsScreen_EmptyNameIgnored(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenProjects

	f.press(t, keyRune('a'))
	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, ModeNormal, f.model.mode)

	projects, err := f.projects.ListActive()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectsScreen_ArchiveWithConfirm(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenProjects

	project, _ := f.projects.Create("Client Work")
	f.press(t, MsgProjectsLoaded{Projects: []domain.Project{*project}})

	f.press(t, keyRune('d'))
	assert.Equal(t, ModeConfirm, f.model.mode)
	assert.Equal(t, ConfirmArchiveProject, f.model.confirmAction)

	cmd := f.press(t, keyRune('y'))
	f.dispatch(t, cmd)

	got, err := f.projects.Get(project.ID)
	require.NoError(t, err)
	assert.True(t, got.IsArchived())
}

func TestProjectsScreen_EnterOpensTasks(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenProjects

	project, _ := f.projects.Create("Client Work")
	f.press(t, MsgProjectsLoaded{Projects: []domain.Project{*project}})

	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ScreenTasks, f.model.screen)
	require.NotNil(t, f.model.selectedProject)
	assert.Equal(t, project.ID, f.model.selectedProject.ID)
	assert.NotNil(t, cmd)
}

func TestTasksScreen_EscapeReturnsToProjects(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.model.screen = ScreenTasks

	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenProjects, f.model.screen)
	assert.NotNil(t, cmd)
}

func TestMidnightTick_SplitsStaleSession(t *testing.T) {
	now := time.Date(2024, 1, 16, 0, 5, 0, 0, time.Local)
	f := newTUIFixture(now)

	_, err := f.sessions.Set(1, 1, time.Date(2024, 1, 15, 22, 0, 0, 0, time.Local))
	require.NoError(t, err)

	cmd := f.press(t, MsgMidnightTick{})
	require.NotNil(t, cmd)
	// The batch re-arms the tick and runs the check; run the check
	// directly to observe the split.
	f.dispatch(t, f.model.midnightCheck())

	assert.Len(t, f.entries.Entries, 1)
	session, err := f.sessions.Get()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local), session.Start)
}

func TestErrorMessageShownAndClearedOnMutation(t *testing.T) {
	f := newTUIFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	f.press(t, MsgError{Err: assert.AnError})
	assert.Equal(t, assert.AnError, f.model.err)

	f.press(t, MsgMutationDone{})
	assert.Nil(t, f.model.err)
}
