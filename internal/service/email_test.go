package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/templui/aura/internal/model"
)

func TestEmailNotifyReminder(t *testing.T) {
	ctx := context.Background()
	reminder := model.Reminder{ID: 7, Message: "⏰ Daily reminder", GoalText: "Read"}

	noRecipient := NewEmailService("key", "aura@example.com", "", "AURA", false)
	assert.NoError(t, noRecipient.NotifyReminder(ctx, reminder))

	dev := NewEmailService("", "aura@example.com", "me@example.com", "AURA", true)
	assert.NoError(t, dev.NotifyReminder(ctx, reminder))

	unconfigured := NewEmailService("", "aura@example.com", "me@example.com", "AURA", false)
	assert.Error(t, unconfigured.NotifyReminder(ctx, reminder))
}

func TestReminderEmailTemplate(t *testing.T) {
	subject, body := reminderEmailTemplate("⏰ Daily reminder: read", "Read", "AURA")
	assert.Contains(t, subject, "Read")
	assert.Contains(t, body, "⏰ Daily reminder: read")
	assert.Contains(t, body, "Open AURA")
}
