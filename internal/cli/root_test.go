package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikevive/farhost/internal/app"
	"github.com/mikevive/farhost/internal/testutil"
)

func newTestContainer(now time.Time) (*app.Container, *testutil.MockClock) {
	clock := &testutil.MockClock{NowTime: now}
	c := app.NewWithDeps(
		testutil.NewMockProjectRepository(),
		testutil.NewMockTaskRepository(),
		testutil.NewMockCategoryRepository(),
		testutil.NewMockEntryRepository(),
		&testutil.MockSessionRepository{},
		&testutil.MockReportReader{},
		clock,
		testutil.NopLogger{},
	)
	return c, clock
}

func TestRootCommand_LaunchesTUI(t *testing.T) {
	c, _ := newTestContainer(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	launched := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		launched = true
		return nil
	}
	defer func() { launchTUIFunc = orig }()

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{})
	require.NoError(t, root.Execute())
	assert.True(t, launched)
}

func TestStatusCommand_Stopped(t *testing.T) {
	c, _ := newTestContainer(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	root := NewRootCommand(c, "test")
	root.SetOut(&buf)
	root.SetArgs([]string{"status"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Timer Stopped\n", buf.String())
}

func TestStatusCommand_Running(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	c, _ := newTestContainer(now)

	project, err := c.Projects.Create("Client Work")
	require.NoError(t, err)
	task, err := c.Tasks.Create(project.ID, "API design")
	require.NoError(t, err)
	category, err := c.Categories.Create("Deep work")
	require.NoError(t, err)
	_, err = c.Sessions.Set(task.ID, category.ID, now.Add(-30*time.Minute))
	require.NoError(t, err)

	var buf bytes.Buffer
	root := NewRootCommand(c, "test")
	root.SetOut(&buf)
	root.SetArgs([]string{"status"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Client Work > API design > Deep work | 00:30:00\n", buf.String())
}

func TestStatusCommand_RecoversStaleSession(t *testing.T) {
	// A session from yesterday is split before the status is printed.
	now := time.Date(2024, 1, 16, 9, 0, 0, 0, time.Local)
	c, _ := newTestContainer(now)

	project, err := c.Projects.Create("Client Work")
	require.NoError(t, err)
	task, err := c.Tasks.Create(project.ID, "API design")
	require.NoError(t, err)
	category, err := c.Categories.Create("Deep work")
	require.NoError(t, err)
	_, err = c.Sessions.Set(task.ID, category.ID, time.Date(2024, 1, 15, 22, 0, 0, 0, time.Local))
	require.NoError(t, err)

	var buf bytes.Buffer
	root := NewRootCommand(c, "test")
	root.SetOut(&buf)
	root.SetArgs([]string{"status"})
	require.NoError(t, root.Execute())

	// Session restarted at today's midnight, so nine hours have elapsed.
	assert.Equal(t, "Client Work > API design > Deep work | 09:00:00\n", buf.String())

	entries, err := c.Entries.ListByDay(time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7199), entries[0].DurationSeconds)
}
