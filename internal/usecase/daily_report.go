package usecase

import (
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// DailyReportInput contains the parameters for a daily report.
type DailyReportInput struct {
	Day time.Time
}

// DailyReportRow is one time entry with its references resolved to
// display names.
type DailyReportRow struct {
	Start           time.Time
	End             time.Time
	ProjectName     string
	TaskName        string
	CategoryName    string
	EntryID         int64
	TaskID          int64
	CategoryID      int64
	DurationSeconds int64
}

// DailyReportOutput contains the entries and totals for one day.
type DailyReportOutput struct {
	Day            time.Time
	Rows           []DailyReportRow
	ProjectTotals  []domain.NameTotal
	CategoryTotals []domain.NameTotal
	TotalSeconds   int64
}

// DailyReport is the use case for reporting one day's tracked time.
type DailyReport struct {
	entries    domain.EntryRepository
	tasks      domain.TaskRepository
	projects   domain.ProjectRepository
	categories domain.CategoryRepository
	reports    domain.ReportReader
}

// NewDailyReport creates a new DailyReport use case.
func NewDailyReport(
	entries domain.EntryRepository,
	tasks domain.TaskRepository,
	projects domain.ProjectRepository,
	categories domain.CategoryRepository,
	reports domain.ReportReader,
) *DailyReport {
	return &DailyReport{
		entries:    entries,
		tasks:      tasks,
		projects:   projects,
		categories: categories,
		reports:    reports,
	}
}

// Execute builds the report for the given day. Entries of archived
// tasks, projects, and categories are included like any other.
func (uc *DailyReport) Execute(in DailyReportInput) (*DailyReportOutput, error) {
	day := domain.DayStart(in.Day)
	next := domain.NextDay(day)

	entries, err := uc.entries.ListByDay(day)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	out := &DailyReportOutput{Day: day, Rows: make([]DailyReportRow, 0, len(entries))}
	names := newNameResolver(uc.tasks, uc.projects, uc.categories)
	for _, e := range entries {
		projectName, taskName, err := names.task(e.TaskID)
		if err != nil {
			return nil, err
		}
		categoryName, err := names.category(e.CategoryID)
		if err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, DailyReportRow{
			Start:           e.Start,
			End:             e.End,
			ProjectName:     projectName,
			TaskName:        taskName,
			CategoryName:    categoryName,
			EntryID:         e.ID,
			TaskID:          e.TaskID,
			CategoryID:      e.CategoryID,
			DurationSeconds: e.DurationSeconds,
		})
		out.TotalSeconds += e.DurationSeconds
	}

	if out.ProjectTotals, err = uc.reports.TotalsByProject(day, next); err != nil {
		return nil, fmt.Errorf("project totals: %w", err)
	}
	if out.CategoryTotals, err = uc.reports.TotalsByCategory(day, next); err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	return out, nil
}

// nameResolver caches entity name lookups across rows of one report.
type nameResolver struct {
	tasks      domain.TaskRepository
	projects   domain.ProjectRepository
	categories domain.CategoryRepository

	taskNames     map[int64][2]string // taskID -> {project, task}
	categoryNames map[int64]string
}

func newNameResolver(
	tasks domain.TaskRepository,
	projects domain.ProjectRepository,
	categories domain.CategoryRepository,
) *nameResolver {
	return &nameResolver{
		tasks:         tasks,
		projects:      projects,
		categories:    categories,
		taskNames:     make(map[int64][2]string),
		categoryNames: make(map[int64]string),
	}
}

func (r *nameResolver) task(taskID int64) (projectName, taskName string, err error) {
	if cached, ok := r.taskNames[taskID]; ok {
		return cached[0], cached[1], nil
	}
	task, err := r.tasks.Get(taskID)
	if err != nil {
		return "", "", fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return "", "", domain.ErrTaskNotFound
	}
	project, err := r.projects.Get(task.ProjectID)
	if err != nil {
		return "", "", fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return "", "", domain.ErrProjectNotFound
	}
	r.taskNames[taskID] = [2]string{project.Name, task.Name}
	return project.Name, task.Name, nil
}

func (r *nameResolver) category(categoryID int64) (string, error) {
	if cached, ok := r.categoryNames[categoryID]; ok {
		return cached, nil
	}
	category, err := r.categories.Get(categoryID)
	if err != nil {
		return "", fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return "", domain.ErrCategoryNotFound
	}
	r.categoryNames[categoryID] = category.Name
	return category.Name, nil
}
