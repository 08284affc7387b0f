package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDailyReminderWithoutGoals(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	assert.False(t, s.reminders.CreateDailyReminder(ctx))
	assert.Empty(t, s.reminders.UnreadReminders(ctx))
	assert.Empty(t, s.notifier.reminders)
}

func TestReminderLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	s.goals.AddGoal(ctx, "I want to read daily")
	require.True(t, s.reminders.CreateDailyReminder(ctx))

	unread := s.reminders.UnreadReminders(ctx)
	require.Len(t, unread, 1)
	assert.Equal(t, "Read daily", unread[0].GoalText)
	assert.Equal(t, "⏰ Daily reminder: have you worked on 'Read daily' today? Every small step counts!", unread[0].Message)
	assert.False(t, unread[0].Read)

	require.Len(t, s.notifier.reminders, 1)
	assert.Equal(t, unread[0].ID, s.notifier.reminders[0].ID)
	assert.Equal(t, "Read daily", s.notifier.reminders[0].GoalText)

	assert.True(t, s.reminders.MarkReminderRead(ctx, unread[0].ID))
	assert.Empty(t, s.reminders.UnreadReminders(ctx))
	assert.True(t, s.reminders.MarkReminderRead(ctx, unread[0].ID))
}

func TestReminderMentionsOtherGoals(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	s.goals.AddGoal(ctx, "I want to read")
	s.goals.AddGoal(ctx, "I want to run")
	require.True(t, s.reminders.CreateDailyReminder(ctx))

	s.goals.AddGoal(ctx, "I want to cook")
	require.True(t, s.reminders.CreateDailyReminder(ctx))

	unread := s.reminders.UnreadReminders(ctx)
	require.Len(t, unread, 2)
	assert.Equal(t, "⏰ Daily reminder: how's 'Run' going? You have 1 other goal waiting too!", unread[0].Message)
	assert.Equal(t, "⏰ Daily reminder: how's 'Cook' going? You have 2 other goals waiting too!", unread[1].Message)
}

func TestReminderNotifierFailureStillSaves(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	s.notifier.err = errors.New("smtp down")

	s.goals.AddGoal(ctx, "I want to read")
	assert.True(t, s.reminders.CreateDailyReminder(ctx))
	assert.Len(t, s.reminders.UnreadReminders(ctx), 1)
}

func TestTakeUnread(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	s.goals.AddGoal(ctx, "I want to read")
	s.reminders.CreateDailyReminder(ctx)
	s.reminders.CreateDailyReminder(ctx)

	assert.Len(t, s.reminders.TakeUnread(ctx), 2)
	assert.Empty(t, s.reminders.TakeUnread(ctx))
}
