// Package timer contains the timer engine: the lifecycle of the single
// active session and the conversion of elapsed intervals into persisted
// time entries, including splitting at calendar-day boundaries.
package timer

import (
	"fmt"
	"time"

	"github.com/mikevive/farhost/internal/domain"
)

// Engine owns the single active session. All operations are synchronous
// and delegate persistence to the repositories; storage errors propagate
// unmodified.
type Engine struct {
	sessions domain.SessionRepository
	entries  domain.EntryRepository
	clock    domain.Clock
	logger   domain.Logger
}

// New creates a timer engine. logger may be nil.
func New(sessions domain.SessionRepository, entries domain.EntryRepository, clock domain.Clock, logger domain.Logger) *Engine {
	return &Engine{
		sessions: sessions,
		entries:  entries,
		clock:    clock,
		logger:   logger,
	}
}

// Start begins timing the given task and category. A running session is
// stopped and fully flushed to time entries first, so at most one
// session ever exists and two Starts in a row always hand off cleanly.
func (e *Engine) Start(taskID, categoryID int64) (*domain.ActiveSession, error) {
	existing, err := e.sessions.Get()
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	if existing != nil {
		if _, err := e.Stop(); err != nil {
			return nil, err
		}
	}

	now := domain.TruncateSecond(e.clock.Now())
	session, err := e.sessions.Set(taskID, categoryID, now)
	if err != nil {
		return nil, fmt.Errorf("set active session: %w", err)
	}
	if e.logger != nil {
		e.logger.Info("timer", fmt.Sprintf("started task=%d category=%d", taskID, categoryID))
	}
	return session, nil
}

// Stop ends the running session, persisting one time entry per calendar
// day covered by [start, now). Returns the created entries; returns an
// empty result if no timer is running.
func (e *Engine) Stop() ([]domain.TimeEntry, error) {
	session, err := e.sessions.Get()
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	now := domain.TruncateSecond(e.clock.Now())
	entries, err := e.saveSplit(session.TaskID, session.CategoryID, session.Start, now)
	if err != nil {
		return nil, err
	}
	if err := e.sessions.Clear(); err != nil {
		return nil, fmt.Errorf("clear active session: %w", err)
	}
	if e.logger != nil {
		e.logger.Info("timer", fmt.Sprintf("stopped task=%d entries=%d", session.TaskID, len(entries)))
	}
	return entries, nil
}

// CheckMidnightSplit reconciles a session that has run past midnight.
// Entries are persisted for every day up to today's midnight and the
// session restarts at 00:00:00 today with the same task and category, so
// the timer keeps running from the user's perspective. Returns an empty
// result when no timer runs or the session started today.
func (e *Engine) CheckMidnightSplit() ([]domain.TimeEntry, error) {
	session, err := e.sessions.Get()
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	now := e.clock.Now()
	if domain.SameDay(session.Start, now) {
		return nil, nil
	}

	midnight := domain.DayStart(now)
	entries, err := e.saveSplit(session.TaskID, session.CategoryID, session.Start, midnight)
	if err != nil {
		return nil, err
	}
	if _, err := e.sessions.Set(session.TaskID, session.CategoryID, midnight); err != nil {
		return nil, fmt.Errorf("reset active session: %w", err)
	}
	if e.logger != nil {
		e.logger.Info("timer", fmt.Sprintf("midnight split task=%d entries=%d", session.TaskID, len(entries)))
	}
	return entries, nil
}

// RecoverCrashedSession reconciles a session that survived an unclean
// shutdown. A crashed session is indistinguishable from one that simply
// ran across midnight, so this is the same operation as
// CheckMidnightSplit; the session, if any, stays active afterwards.
func (e *Engine) RecoverCrashedSession() ([]domain.TimeEntry, error) {
	return e.CheckMidnightSplit()
}

// saveSplit persists [start, end) as one entry per calendar day crossed.
// Day segments end at 23:59:59 and the next one begins at 00:00:00 of
// the following day. Empty segments are never emitted.
func (e *Engine) saveSplit(taskID, categoryID int64, start, end time.Time) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry

	cur := start
	for domain.DayStart(cur).Before(domain.DayStart(end)) {
		entry, err := e.saveEntry(taskID, categoryID, cur, domain.DayEnd(cur))
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
		cur = domain.NextDay(cur)
	}

	if cur.Before(end) {
		entry, err := e.saveEntry(taskID, categoryID, cur, end)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

func (e *Engine) saveEntry(taskID, categoryID int64, start, end time.Time) (*domain.TimeEntry, error) {
	entry, err := e.entries.Create(domain.TimeEntry{
		TaskID:          taskID,
		CategoryID:      categoryID,
		Start:           start,
		End:             end,
		DurationSeconds: int64(end.Sub(start) / time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}
	return entry, nil
}
