package sqlite

import (
	"testing"
	"time"

	"github.com/mikevive/farhost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func at(y int, mo time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, mo, d, h, mi, s, 0, time.Local)
}

// fixture creates a project with one task plus a category and returns
// their IDs.
func fixture(t *testing.T, store *Store) (projectID, taskID, categoryID int64) {
	t.Helper()
	project, err := store.Projects().Create("Client Work")
	require.NoError(t, err)
	task, err := store.Tasks().Create(project.ID, "API design")
	require.NoError(t, err)
	category, err := store.Categories().Create("Deep work")
	require.NoError(t, err)
	return project.ID, task.ID, category.ID
}

func TestStore_SeedsDefaults(t *testing.T) {
	store := newStore(t)

	projects, err := store.Projects().ListActive()
	require.NoError(t, err)
	assert.Len(t, projects, len(seedProjects))

	categories, err := store.Categories().ListActive()
	require.NoError(t, err)
	assert.Len(t, categories, len(seedCategories))

	// Names come back sorted.
	assert.Equal(t, "Architecture", projects[0].Name)
}

func TestProjectRepo_CRUD(t *testing.T) {
	store := newStore(t)
	repo := store.Projects()

	project, err := repo.Create("Side project")
	require.NoError(t, err)
	require.NotZero(t, project.ID)

	got, err := repo.Get(project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Side project", got.Name)
	assert.False(t, got.IsArchived())

	require.NoError(t, repo.Rename(project.ID, "Side hustle"))
	got, err = repo.Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Side hustle", got.Name)

	missing, err := repo.Get(99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectRepo_ArchiveCascadesWithSameTimestamp(t *testing.T) {
	store := newStore(t)
	projectID, taskID, _ := fixture(t, store)

	second, err := store.Tasks().Create(projectID, "Docs")
	require.NoError(t, err)

	// One task archived independently, earlier.
	earlier := at(2024, 1, 10, 12, 0, 0)
	require.NoError(t, store.Tasks().Archive(second.ID, earlier))

	when := at(2024, 1, 15, 9, 30, 0)
	require.NoError(t, store.Projects().Archive(projectID, when))

	project, err := store.Projects().Get(projectID)
	require.NoError(t, err)
	require.NotNil(t, project.ArchivedAt)
	assert.Equal(t, when, *project.ArchivedAt)

	task, err := store.Tasks().Get(taskID)
	require.NoError(t, err)
	require.NotNil(t, task.ArchivedAt)
	assert.Equal(t, when, *task.ArchivedAt)

	// Restore brings back only the cascade batch.
	require.NoError(t, store.Projects().Restore(projectID))

	project, err = store.Projects().Get(projectID)
	require.NoError(t, err)
	assert.Nil(t, project.ArchivedAt)

	task, err = store.Tasks().Get(taskID)
	require.NoError(t, err)
	assert.Nil(t, task.ArchivedAt)

	independent, err := store.Tasks().Get(second.ID)
	require.NoError(t, err)
	require.NotNil(t, independent.ArchivedAt)
	assert.Equal(t, earlier, *independent.ArchivedAt)
}

func TestProjectRepo_ArchiveClearsReferencingSession(t *testing.T) {
	store := newStore(t)
	projectID, taskID, categoryID := fixture(t, store)

	_, err := store.Sessions().Set(taskID, categoryID, at(2024, 1, 15, 9, 0, 0))
	require.NoError(t, err)

	require.NoError(t, store.Projects().Archive(projectID, at(2024, 1, 15, 10, 0, 0)))

	session, err := store.Sessions().Get()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestProjectRepo_RestoreNotArchived(t *testing.T) {
	store := newStore(t)
	projectID, _, _ := fixture(t, store)

	err := store.Projects().Restore(projectID)
	assert.ErrorIs(t, err, domain.ErrNotArchived)

	err = store.Projects().Restore(99999)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTaskRepo_ArchiveClearsSession(t *testing.T) {
	store := newStore(t)
	projectID, taskID, categoryID := fixture(t, store)

	_, err := store.Sessions().Set(taskID, categoryID, at(2024, 1, 15, 9, 0, 0))
	require.NoError(t, err)

	require.NoError(t, store.Tasks().Archive(taskID, at(2024, 1, 15, 10, 0, 0)))

	session, err := store.Sessions().Get()
	require.NoError(t, err)
	assert.Nil(t, session)

	tasks, err := store.Tasks().ListActive(projectID)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotEqual(t, taskID, task.ID)
	}
}

func TestCategoryRepo_ArchiveClearsSession(t *testing.T) {
	store := newStore(t)
	_, taskID, categoryID := fixture(t, store)

	_, err := store.Sessions().Set(taskID, categoryID, at(2024, 1, 15, 9, 0, 0))
	require.NoError(t, err)

	require.NoError(t, store.Categories().Archive(categoryID, at(2024, 1, 15, 10, 0, 0)))

	session, err := store.Sessions().Get()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepo_SetReplacesExisting(t *testing.T) {
	store := newStore(t)
	projectID, taskID, categoryID := fixture(t, store)

	other, err := store.Tasks().Create(projectID, "Review")
	require.NoError(t, err)

	_, err = store.Sessions().Set(taskID, categoryID, at(2024, 1, 15, 9, 0, 0))
	require.NoError(t, err)

	_, err = store.Sessions().Set(other.ID, categoryID, at(2024, 1, 15, 10, 0, 0))
	require.NoError(t, err)

	session, err := store.Sessions().Get()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, other.ID, session.TaskID)
	assert.Equal(t, at(2024, 1, 15, 10, 0, 0), session.Start)
}

func TestSessionRepo_ClearWithoutSession(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Sessions().Clear())

	session, err := store.Sessions().Get()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestEntryRepo_CreateRecomputesDuration(t *testing.T) {
	store := newStore(t)
	_, taskID, categoryID := fixture(t, store)

	entry, err := store.Entries().Create(domain.TimeEntry{
		TaskID:          taskID,
		CategoryID:      categoryID,
		Start:           at(2024, 1, 15, 9, 0, 0),
		End:             at(2024, 1, 15, 17, 0, 0),
		DurationSeconds: 12345, // ignored
	})
	require.NoError(t, err)
	assert.Equal(t, int64(28800), entry.DurationSeconds)

	got, err := store.Entries().Get(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Start, got.Start)
	assert.Equal(t, entry.End, got.End)
	assert.Equal(t, int64(28800), got.DurationSeconds)
}

func TestEntryRepo_CreateRejectsEmptyInterval(t *testing.T) {
	store := newStore(t)
	_, taskID, categoryID := fixture(t, store)

	_, err := store.Entries().Create(domain.TimeEntry{
		TaskID:     taskID,
		CategoryID: categoryID,
		Start:      at(2024, 1, 15, 9, 0, 0),
		End:        at(2024, 1, 15, 9, 0, 0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestEntryRepo_CreateRejectsDanglingTask(t *testing.T) {
	store := newStore(t)
	_, _, categoryID := fixture(t, store)

	_, err := store.Entries().Create(domain.TimeEntry{
		TaskID:     99999,
		CategoryID: categoryID,
		Start:      at(2024, 1, 15, 9, 0, 0),
		End:        at(2024, 1, 15, 10, 0, 0),
	})
	assert.Error(t, err)
}

func TestEntryRepo_UpdateRecomputesDuration(t *testing.T) {
	store := newStore(t)
	_, taskID, categoryID := fixture(t, store)

	entry, err := store.Entries().Create(domain.TimeEntry{
		TaskID:     taskID,
		CategoryID: categoryID,
		Start:      at(2024, 1, 15, 9, 0, 0),
		End:        at(2024, 1, 15, 10, 0, 0),
	})
	require.NoError(t, err)

	newEnd := at(2024, 1, 15, 12, 30, 0)
	require.NoError(t, store.Entries().Update(entry.ID, domain.EntryUpdate{End: &newEnd}))

	got, err := store.Entries().Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12600), got.DurationSeconds)

	badEnd := at(2024, 1, 15, 8, 0, 0)
	err = store.Entries().Update(entry.ID, domain.EntryUpdate{End: &badEnd})
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)

	err = store.Entries().Update(99999, domain.EntryUpdate{End: &newEnd})
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEntryRepo_DeleteAndList(t *testing.T) {
	store := newStore(t)
	_, taskID, categoryID := fixture(t, store)

	mk := func(start, end time.Time) *domain.TimeEntry {
		entry, err := store.Entries().Create(domain.TimeEntry{
			TaskID: taskID, CategoryID: categoryID, Start: start, End: end,
		})
		require.NoError(t, err)
		return entry
	}

	first := mk(at(2024, 1, 15, 9, 0, 0), at(2024, 1, 15, 10, 0, 0))
	mk(at(2024, 1, 15, 14, 0, 0), at(2024, 1, 15, 15, 0, 0))
	mk(at(2024, 1, 16, 9, 0, 0), at(2024, 1, 16, 10, 0, 0))

	day, err := store.Entries().ListByDay(at(2024, 1, 15, 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, day, 2)

	require.NoError(t, store.Entries().Delete(first.ID))

	day, err = store.Entries().ListByDay(at(2024, 1, 15, 0, 0, 0))
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, at(2024, 1, 15, 14, 0, 0), day[0].Start)

	all, err := store.Entries().ListByRange(at(2024, 1, 15, 0, 0, 0), at(2024, 1, 17, 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReportRepo_TotalsIncludeArchivedEntities(t *testing.T) {
	store := newStore(t)
	projectID, taskID, categoryID := fixture(t, store)

	_, err := store.Entries().Create(domain.TimeEntry{
		TaskID:     taskID,
		CategoryID: categoryID,
		Start:      at(2024, 1, 15, 9, 0, 0),
		End:        at(2024, 1, 15, 11, 0, 0),
	})
	require.NoError(t, err)

	// Archiving never hides history.
	require.NoError(t, store.Projects().Archive(projectID, at(2024, 1, 16, 0, 0, 0)))
	require.NoError(t, store.Categories().Archive(categoryID, at(2024, 1, 16, 0, 0, 0)))

	start := at(2024, 1, 15, 0, 0, 0)
	end := at(2024, 1, 16, 0, 0, 0)

	byProject, err := store.Reports().TotalsByProject(start, end)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, "Client Work", byProject[0].Name)
	assert.Equal(t, int64(7200), byProject[0].TotalSeconds)

	byCategory, err := store.Reports().TotalsByCategory(start, end)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Deep work", byCategory[0].Name)
	assert.Equal(t, int64(7200), byCategory[0].TotalSeconds)
}

func TestReportRepo_TotalsByDay(t *testing.T) {
	store := newStore(t)
	_, taskID, categoryID := fixture(t, store)

	mk := func(start, end time.Time) {
		_, err := store.Entries().Create(domain.TimeEntry{
			TaskID: taskID, CategoryID: categoryID, Start: start, End: end,
		})
		require.NoError(t, err)
	}

	mk(at(2024, 1, 15, 9, 0, 0), at(2024, 1, 15, 10, 0, 0))
	mk(at(2024, 1, 15, 13, 0, 0), at(2024, 1, 15, 13, 30, 0))
	mk(at(2024, 1, 17, 9, 0, 0), at(2024, 1, 17, 9, 45, 0))

	totals, err := store.Reports().TotalsByDay(at(2024, 1, 15, 0, 0, 0), at(2024, 1, 22, 0, 0, 0))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, at(2024, 1, 15, 0, 0, 0), totals[0].Day)
	assert.Equal(t, int64(5400), totals[0].TotalSeconds)
	assert.Equal(t, at(2024, 1, 17, 0, 0, 0), totals[1].Day)
	assert.Equal(t, int64(2700), totals[1].TotalSeconds)
}
