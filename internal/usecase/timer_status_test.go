package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikevive/farhost/internal/testutil"
)

type statusFixture struct {
	uc         *TimerStatus
	sessions   *testutil.MockSessionRepository
	tasks      *testutil.MockTaskRepository
	projects   *testutil.MockProjectRepository
	categories *testutil.MockCategoryRepository
	clock      *testutil.MockClock
}

func newStatusFixture(now time.Time) *statusFixture {
	f := &statusFixture{
		sessions:   &testutil.MockSessionRepository{},
		tasks:      testutil.NewMockTaskRepository(),
		projects:   testutil.NewMockProjectRepository(),
		categories: testutil.NewMockCategoryRepository(),
		clock:      &testutil.MockClock{NowTime: now},
	}
	f.uc = NewTimerStatus(f.sessions, f.tasks, f.projects, f.categories, f.clock)
	return f
}

func TestTimerStatus_NoSession(t *testing.T) {
	f := newStatusFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	out, err := f.uc.Execute()
	require.NoError(t, err)
	assert.Equal(t, "Timer Stopped", out.Line)
	assert.False(t, out.Running)
}

func TestTimerStatus_Running(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 45, 0, time.Local)
	f := newStatusFixture(now)

	project, _ := f.projects.Create("Client Work")
	task, _ := f.tasks.Create(project.ID, "API design")
	category, _ := f.categories.Create("Deep work")
	_, err := f.sessions.Set(task.ID, category.ID, now.Add(-90*time.Minute))
	require.NoError(t, err)

	out, err := f.uc.Execute()
	require.NoError(t, err)
	assert.True(t, out.Running)
	assert.Equal(t, int64(5400), out.ElapsedSeconds)
	assert.Equal(t, "Client Work > API design > Deep work | 01:30:00", out.Line)
}

func TestTimerStatus_DanglingTask(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	f := newStatusFixture(now)

	// Session references a task that no longer exists.
	_, err := f.sessions.Set(42, 1, now.Add(-time.Hour))
	require.NoError(t, err)

	out, err := f.uc.Execute()
	require.NoError(t, err)
	assert.Equal(t, "Timer Stopped", out.Line)
	assert.False(t, out.Running)
}

func TestTimerStatus_DanglingCategory(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	f := newStatusFixture(now)

	project, _ := f.projects.Create("Client Work")
	task, _ := f.tasks.Create(project.ID, "API design")
	_, err := f.sessions.Set(task.ID, 99, now.Add(-time.Hour))
	require.NoError(t, err)

	out, err := f.uc.Execute()
	require.NoError(t, err)
	assert.Equal(t, "Timer Stopped", out.Line)
}

func TestTimerStatus_LongSessionUnboundedHours(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.Local)
	f := newStatusFixture(now)

	project, _ := f.projects.Create("Client Work")
	task, _ := f.tasks.Create(project.ID, "API design")
	category, _ := f.categories.Create("Deep work")
	_, err := f.sessions.Set(task.ID, category.ID, now.Add(-30*time.Hour))
	require.NoError(t, err)

	out, err := f.uc.Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(108000), out.ElapsedSeconds)
	assert.Contains(t, out.Line, "| 30:00:00")
}

func TestTimerStatus_SessionError(t *testing.T) {
	f := newStatusFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	f.sessions.Err = assert.AnError

	_, err := f.uc.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
