// Package gateway is the boundary between the journaling services and the
// store. Repository errors stop here: transient ones are retried, the rest
// are logged and reported as false or an empty result.
package gateway

import (
	"context"
	"database/sql/driver"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/classify"
	"github.com/templui/aura/internal/model"
	"github.com/templui/aura/internal/repository"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 50 * time.Millisecond
)

type Gateway struct {
	goals     repository.GoalRepository
	moods     repository.MoodRepository
	progress  repository.ProgressRepository
	reminders repository.ReminderRepository
	analytics repository.AnalyticsRepository

	now             func() time.Time
	maxRetries      uint64
	initialInterval time.Duration
}

type Option func(*Gateway)

// WithClock overrides the time source used for new records.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithRetries sets how many times a transient failure is retried.
func WithRetries(n int) Option {
	return func(g *Gateway) {
		if n < 0 {
			n = 0
		}
		g.maxRetries = uint64(n)
	}
}

func New(db *sqlx.DB, opts ...Option) *Gateway {
	return NewWithRepositories(
		repository.NewGoalRepository(db),
		repository.NewMoodRepository(db),
		repository.NewProgressRepository(db),
		repository.NewReminderRepository(db),
		repository.NewAnalyticsRepository(db),
		opts...,
	)
}

func NewWithRepositories(
	goals repository.GoalRepository,
	moods repository.MoodRepository,
	progress repository.ProgressRepository,
	reminders repository.ReminderRepository,
	analytics repository.AnalyticsRepository,
	opts ...Option,
) *Gateway {
	g := &Gateway{
		goals:           goals,
		moods:           moods,
		progress:        progress,
		reminders:       reminders,
		analytics:       analytics,
		now:             time.Now,
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now returns the gateway clock time.
func (g *Gateway) Now() time.Time {
	return g.now()
}

func (g *Gateway) timestamp() string {
	return model.Timestamp(g.now())
}

func (g *Gateway) backOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.initialInterval
	b.MaxElapsedTime = 5 * time.Second
	return backoff.WithContext(backoff.WithMaxRetries(b, g.maxRetries), ctx)
}

// do runs op, retrying transient store errors.
func (g *Gateway) do(ctx context.Context, op func() error) error {
	return backoff.Retry(func() error {
		err := op()
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, g.backOff(ctx))
}

// isTransient reports whether err is worth retrying: lock contention,
// serialization conflicts, or a dropped connection.
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		}
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "57P03":
			return true
		}
	}
	return false
}

// InsertGoal stores an active goal. It returns the new goal and false when
// the store rejected the write.
func (g *Gateway) InsertGoal(ctx context.Context, text string) (model.Goal, bool) {
	goal := model.Goal{Text: text, DateAdded: g.timestamp(), Status: model.GoalStatusActive}
	err := g.do(ctx, func() error { return g.goals.Create(ctx, &goal) })
	if err != nil {
		slog.Error("failed to save goal", "error", err)
		return model.Goal{}, false
	}
	return goal, true
}

// ListActiveGoals returns text and creation date of active goals, newest first.
func (g *Gateway) ListActiveGoals(ctx context.Context) []model.Goal {
	var goals []model.Goal
	err := g.do(ctx, func() (err error) {
		goals, err = g.goals.Active(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to retrieve goals", "error", err)
		return []model.Goal{}
	}
	return nonNil(goals)
}

func (g *Gateway) ListActiveGoalsWithIDs(ctx context.Context) []model.Goal {
	var goals []model.Goal
	err := g.do(ctx, func() (err error) {
		goals, err = g.goals.ActiveWithIDs(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to retrieve goals", "error", err)
		return []model.Goal{}
	}
	return nonNil(goals)
}

// GoalByID returns the goal with goalID. The bool is false when the goal
// does not exist or the store failed.
func (g *Gateway) GoalByID(ctx context.Context, goalID int64) (model.Goal, bool) {
	var goal *model.Goal
	err := g.do(ctx, func() (err error) {
		goal, err = g.goals.ByID(ctx, goalID)
		return err
	})
	if errors.Is(err, repository.ErrGoalNotFound) {
		return model.Goal{}, false
	}
	if err != nil {
		slog.Error("failed to retrieve goal", "error", err, "goal_id", goalID)
		return model.Goal{}, false
	}
	return *goal, true
}

func (g *Gateway) InsertMood(ctx context.Context, mood, description string) bool {
	if !classify.IsKnownMood(mood) {
		slog.Warn("rejected mood outside the taxonomy", "mood", mood)
		return false
	}
	entry := model.MoodEntry{Mood: mood, Description: description, DateLogged: g.timestamp()}
	err := g.do(ctx, func() error { return g.moods.Create(ctx, &entry) })
	if err != nil {
		slog.Error("failed to save mood", "error", err, "mood", mood)
		return false
	}
	return true
}

func (g *Gateway) RecentMoods(ctx context.Context, limit int) []model.MoodEntry {
	var entries []model.MoodEntry
	err := g.do(ctx, func() (err error) {
		entries, err = g.moods.Recent(ctx, limit)
		return err
	})
	if err != nil {
		slog.Error("failed to retrieve moods", "error", err)
		return []model.MoodEntry{}
	}
	return nonNil(entries)
}

func (g *Gateway) InsertProgressCheck(ctx context.Context, goalID int64, status model.ProgressStatus) bool {
	if !status.Valid() {
		slog.Warn("rejected progress check with invalid status", "goal_id", goalID, "status", status)
		return false
	}
	check := model.ProgressCheck{GoalID: goalID, Status: status, CreatedAt: g.timestamp()}
	err := g.do(ctx, func() error { return g.progress.Create(ctx, &check) })
	if err != nil {
		slog.Error("failed to save progress", "error", err, "goal_id", goalID)
		return false
	}
	return true
}

func (g *Gateway) ProgressHistory(ctx context.Context, goalID int64) []model.ProgressCheck {
	var checks []model.ProgressCheck
	err := g.do(ctx, func() (err error) {
		checks, err = g.progress.ByGoal(ctx, goalID)
		return err
	})
	if err != nil {
		slog.Error("failed to retrieve progress", "error", err, "goal_id", goalID)
		return []model.ProgressCheck{}
	}
	return nonNil(checks)
}

// InsertReminder stores an unread reminder for goalID.
func (g *Gateway) InsertReminder(ctx context.Context, goalID int64, message string) (model.Reminder, bool) {
	reminder := model.Reminder{GoalID: goalID, Message: message, CreatedAt: g.timestamp()}
	err := g.do(ctx, func() error { return g.reminders.Create(ctx, &reminder) })
	if err != nil {
		slog.Error("failed to save reminder", "error", err, "goal_id", goalID)
		return model.Reminder{}, false
	}
	return reminder, true
}

func (g *Gateway) ListUnreadReminders(ctx context.Context) []model.Reminder {
	var reminders []model.Reminder
	err := g.do(ctx, func() (err error) {
		reminders, err = g.reminders.Unread(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to retrieve reminders", "error", err)
		return []model.Reminder{}
	}
	return nonNil(reminders)
}

// MarkReminderRead is idempotent; it returns false only when the reminder
// does not exist or the store failed.
func (g *Gateway) MarkReminderRead(ctx context.Context, reminderID int64) bool {
	err := g.do(ctx, func() error { return g.reminders.MarkRead(ctx, reminderID) })
	if err != nil {
		slog.Error("failed to mark reminder read", "error", err, "reminder_id", reminderID)
		return false
	}
	return true
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
