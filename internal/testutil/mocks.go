// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sort"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(_, _ string) {}

// Info discards the message.
func (NopLogger) Info(_, _ string) {}

// Warn discards the message.
func (NopLogger) Warn(_, _ string) {}

// Error discards the message.
func (NopLogger) Error(_, _ string) {}

// MockProjectRepository is a test double for domain.ProjectRepository.
type MockProjectRepository struct {
	Projects map[int64]*domain.Project
	Err      error
	NextID   int64
}

// NewMockProjectRepository creates a MockProjectRepository with
// initialized maps.
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[int64]*domain.Project),
		NextID:   1,
	}
}

// ListActive returns non-archived projects ordered by name.
func (m *MockProjectRepository) ListActive() ([]domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.list(false), nil
}

// ListArchived returns archived projects ordered by name.
func (m *MockProjectRepository) ListArchived() ([]domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.list(true), nil
}

func (m *MockProjectRepository) list(archived bool) []domain.Project {
	out := make([]domain.Project, 0, len(m.Projects))
	for _, p := range m.Projects {
		if p.IsArchived() == archived {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get retrieves a project by ID.
func (m *MockProjectRepository) Get(id int64) (*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects[id], nil
}

// Create inserts a new project.
func (m *MockProjectRepository) Create(name string) (*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p := &domain.Project{ID: m.NextID, Name: name}
	m.Projects[p.ID] = p
	m.NextID++
	return p, nil
}

// Rename updates a project's name.
func (m *MockProjectRepository) Rename(id int64, name string) error {
	if m.Err != nil {
		return m.Err
	}
	p, ok := m.Projects[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.Name = name
	return nil
}

// Archive archives the project at the given time.
func (m *MockProjectRepository) Archive(id int64, at time.Time) error {
	if m.Err != nil {
		return m.Err
	}
	p, ok := m.Projects[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.ArchivedAt = &at
	return nil
}

// Restore un-archives the project.
func (m *MockProjectRepository) Restore(id int64) error {
	if m.Err != nil {
		return m.Err
	}
	p, ok := m.Projects[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.ArchivedAt = nil
	return nil
}

// MockTaskRepository is a test double for domain.TaskRepository.
type MockTaskRepository struct {
	Tasks  map[int64]*domain.Task
	Err    error
	NextID int64
}

// NewMockTaskRepository creates a MockTaskRepository with initialized
// maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

// ListActive returns non-archived tasks of a project ordered by name.
func (m *MockTaskRepository) ListActive(projectID int64) ([]domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.list(projectID, false), nil
}

// ListArchived returns archived tasks of a project ordered by name.
func (m *MockTaskRepository) ListArchived(projectID int64) ([]domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.list(projectID, true), nil
}

func (m *MockTaskRepository) list(projectID int64, archived bool) []domain.Task {
	out := make([]domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if t.ProjectID == projectID && t.IsArchived() == archived {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int64) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tasks[id], nil
}

// Create inserts a new task under a project.
func (m *MockTaskRepository) Create(projectID int64, name string) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	t := &domain.Task{ID: m.NextID, ProjectID: projectID, Name: name}
	m.Tasks[t.ID] = t
	m.NextID++
	return t, nil
}

// Rename updates a task's name.
func (m *MockTaskRepository) Rename(id int64, name string) error {
	if m.Err != nil {
		return m.Err
	}
	t, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Name = name
	return nil
}

// Archive archives the task.
func (m *MockTaskRepository) Archive(id int64, at time.Time) error {
	if m.Err != nil {
		return m.Err
	}
	t, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.ArchivedAt = &at
	return nil
}

// Restore un-archives the task.
func (m *MockTaskRepository) Restore(id int64) error {
	if m.Err != nil {
		return m.Err
	}
	t, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.ArchivedAt = nil
	return nil
}

// MockCategoryRepository is a test double for domain.CategoryRepository.
type MockCategoryRepository struct {
	Categories map[int64]*domain.Category
	Err        error
	NextID     int64
}

// NewMockCategoryRepository creates a MockCategoryRepository with
// initialized maps.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int64]*domain.Category),
		NextID:     1,
	}
}

// ListActive returns non-archived categories ordered by name.
func (m *MockCategoryRepository) ListActive() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.list(false), nil
}

// ListArchived returns archived categories ordered by name.
func (m *MockCategoryRepository) ListArchived() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.list(true), nil
}

func (m *MockCategoryRepository) list(archived bool) []domain.Category {
	out := make([]domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		if c.IsArchived() == archived {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get retrieves a category by ID.
func (m *MockCategoryRepository) Get(id int64) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories[id], nil
}

// Create inserts a new category.
func (m *MockCategoryRepository) Create(name string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c := &domain.Category{ID: m.NextID, Name: name}
	m.Categories[c.ID] = c
	m.NextID++
	return c, nil
}

// Rename updates a category's name.
func (m *MockCategoryRepository) Rename(id int64, name string) error {
	if m.Err != nil {
		return m.Err
	}
	c, ok := m.Categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	c.Name = name
	return nil
}

// Archive archives the category.
func (m *MockCategoryRepository) Archive(id int64, at time.Time) error {
	if m.Err != nil {
		return m.Err
	}
	c, ok := m.Categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	c.ArchivedAt = &at
	return nil
}

// Restore un-archives the category.
func (m *MockCategoryRepository) Restore(id int64) error {
	if m.Err != nil {
		return m.Err
	}
	c, ok := m.Categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	c.ArchivedAt = nil
	return nil
}

// MockEntryRepository is a test double for domain.EntryRepository.
type MockEntryRepository struct {
	Entries map[int64]*domain.TimeEntry
	Err     error
	NextID  int64
}

// NewMockEntryRepository creates a MockEntryRepository with initialized
// maps.
func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		Entries: make(map[int64]*domain.TimeEntry),
		NextID:  1,
	}
}

// Create inserts a new entry with the duration recomputed.
func (m *MockEntryRepository) Create(entry domain.TimeEntry) (*domain.TimeEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if !entry.End.After(entry.Start) {
		return nil, domain.ErrInvalidInterval
	}
	entry.ID = m.NextID
	entry.DurationSeconds = int64(entry.End.Sub(entry.Start) / time.Second)
	m.Entries[entry.ID] = &entry
	m.NextID++
	return &entry, nil
}

// Get retrieves an entry by ID.
func (m *MockEntryRepository) Get(id int64) (*domain.TimeEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries[id], nil
}

// Update applies non-nil fields and recomputes the duration.
func (m *MockEntryRepository) Update(id int64, upd domain.EntryUpdate) error {
	if m.Err != nil {
		return m.Err
	}
	e, ok := m.Entries[id]
	if !ok {
		return domain.ErrEntryNotFound
	}
	next := *e
	if upd.TaskID != nil {
		next.TaskID = *upd.TaskID
	}
	if upd.CategoryID != nil {
		next.CategoryID = *upd.CategoryID
	}
	if upd.Start != nil {
		next.Start = *upd.Start
	}
	if upd.End != nil {
		next.End = *upd.End
	}
	if !next.End.After(next.Start) {
		return domain.ErrInvalidInterval
	}
	next.DurationSeconds = int64(next.End.Sub(next.Start) / time.Second)
	*e = next
	return nil
}

// Delete removes an entry.
func (m *MockEntryRepository) Delete(id int64) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.Entries, id)
	return nil
}

// ListByDay returns entries starting on the given calendar day.
func (m *MockEntryRepository) ListByDay(day time.Time) ([]domain.TimeEntry, error) {
	return m.ListByRange(domain.DayStart(day), domain.NextDay(day))
}

// ListByRange returns entries starting in [start, end), ordered
// chronologically.
func (m *MockEntryRepository) ListByRange(start, end time.Time) ([]domain.TimeEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.TimeEntry, 0, len(m.Entries))
	for _, e := range m.Entries {
		if !e.Start.Before(start) && e.Start.Before(end) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// MockSessionRepository is a test double for domain.SessionRepository.
type MockSessionRepository struct {
	Session *domain.ActiveSession
	Err     error
}

// Get retrieves the active session.
func (m *MockSessionRepository) Get() (*domain.ActiveSession, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

// Set replaces any existing session.
func (m *MockSessionRepository) Set(taskID, categoryID int64, start time.Time) (*domain.ActiveSession, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Session = &domain.ActiveSession{TaskID: taskID, CategoryID: categoryID, Start: start}
	return m.Session, nil
}

// Clear removes the active session.
func (m *MockSessionRepository) Clear() error {
	if m.Err != nil {
		return m.Err
	}
	m.Session = nil
	return nil
}

// MockReportReader is a test double for domain.ReportReader.
type MockReportReader struct {
	ProjectTotals  []domain.NameTotal
	CategoryTotals []domain.NameTotal
	DayTotals      []domain.DayTotal
	Err            error
}

// TotalsByProject returns the configured project totals.
func (m *MockReportReader) TotalsByProject(_, _ time.Time) ([]domain.NameTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ProjectTotals, nil
}

// TotalsByCategory returns the configured category totals.
func (m *MockReportReader) TotalsByCategory(_, _ time.Time) ([]domain.NameTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.CategoryTotals, nil
}

// TotalsByDay returns the configured day totals.
func (m *MockReportReader) TotalsByDay(_, _ time.Time) ([]domain.DayTotal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.DayTotals, nil
}
