package usecase

import (
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// WeeklyReportInput contains the parameters for a weekly report. Any
// time within the target week selects it.
type WeeklyReportInput struct {
	Day time.Time
}

// WeeklyReportOutput contains the totals for one Monday-based week.
// DayTotals always holds seven entries, zero-filled for untracked days.
type WeeklyReportOutput struct {
	WeekStart      time.Time
	DayTotals      []domain.DayTotal
	ProjectTotals  []domain.NameTotal
	CategoryTotals []domain.NameTotal
	TotalSeconds   int64
}

// WeeklyReport is the use case for reporting one week's tracked time.
type WeeklyReport struct {
	reports domain.ReportReader
}

// NewWeeklyReport creates a new WeeklyReport use case.
func NewWeeklyReport(reports domain.ReportReader) *WeeklyReport {
	return &WeeklyReport{reports: reports}
}

// Execute builds the report for the week containing in.Day.
func (uc *WeeklyReport) Execute(in WeeklyReportInput) (*WeeklyReportOutput, error) {
	start := domain.WeekStart(in.Day)
	end := start.AddDate(0, 0, 7)

	days, err := uc.reports.TotalsByDay(start, end)
	if err != nil {
		return nil, fmt.Errorf("day totals: %w", err)
	}

	out := &WeeklyReportOutput{
		WeekStart: start,
		DayTotals: make([]domain.DayTotal, 7),
	}
	for i := range out.DayTotals {
		out.DayTotals[i].Day = start.AddDate(0, 0, i)
	}
	for _, d := range days {
		idx := int(domain.DayStart(d.Day).Sub(start).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		out.DayTotals[idx].TotalSeconds = d.TotalSeconds
		out.TotalSeconds += d.TotalSeconds
	}

	if out.ProjectTotals, err = uc.reports.TotalsByProject(start, end); err != nil {
		return nil, fmt.Errorf("project totals: %w", err)
	}
	if out.CategoryTotals, err = uc.reports.TotalsByCategory(start, end); err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	return out, nil
}
