package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/model"
)

// ReminderNotifier delivers a freshly created reminder outside the app.
type ReminderNotifier interface {
	NotifyReminder(ctx context.Context, reminder model.Reminder) error
}

type ReminderService struct {
	store    *gateway.Gateway
	choose   Chooser
	notifier ReminderNotifier
}

func NewReminderService(store *gateway.Gateway, choose Chooser, notifier ReminderNotifier) *ReminderService {
	if choose == nil {
		choose = RandomChooser
	}
	return &ReminderService{store: store, choose: choose, notifier: notifier}
}

// CreateDailyReminder stores one unread reminder about a chosen active goal.
// It returns false when there are no goals or the reminder was not saved.
func (s *ReminderService) CreateDailyReminder(ctx context.Context) bool {
	goals := s.store.ListActiveGoalsWithIDs(ctx)
	if len(goals) == 0 {
		return false
	}

	i := s.choose(len(goals))
	if i < 0 || i >= len(goals) {
		i = 0
	}
	focus := goals[i]

	reminder, ok := s.store.InsertReminder(ctx, focus.ID, reminderMessage(focus, len(goals)-1))
	if !ok {
		return false
	}
	reminder.GoalText = focus.Text

	if s.notifier != nil {
		err := s.notifier.NotifyReminder(ctx, reminder)
		if err != nil {
			slog.Warn("failed to deliver reminder", "error", err, "reminder_id", reminder.ID)
		}
	}

	return true
}

func reminderMessage(focus model.Goal, others int) string {
	switch others {
	case 0:
		return fmt.Sprintf("⏰ Daily reminder: have you worked on '%s' today? Every small step counts!", focus.Text)
	case 1:
		return fmt.Sprintf("⏰ Daily reminder: how's '%s' going? You have 1 other goal waiting too!", focus.Text)
	default:
		return fmt.Sprintf("⏰ Daily reminder: how's '%s' going? You have %d other goals waiting too!", focus.Text, others)
	}
}

// UnreadReminders returns unread reminders with their goal text, oldest first.
func (s *ReminderService) UnreadReminders(ctx context.Context) []model.Reminder {
	return s.store.ListUnreadReminders(ctx)
}

// MarkReminderRead is safe to call more than once.
func (s *ReminderService) MarkReminderRead(ctx context.Context, reminderID int64) bool {
	return s.store.MarkReminderRead(ctx, reminderID)
}

// TakeUnread returns the unread reminders and marks each one read.
func (s *ReminderService) TakeUnread(ctx context.Context) []model.Reminder {
	reminders := s.UnreadReminders(ctx)
	for _, reminder := range reminders {
		s.MarkReminderRead(ctx, reminder.ID)
	}
	return reminders
}
