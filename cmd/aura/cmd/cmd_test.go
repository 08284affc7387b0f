package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/aura/internal/db"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_CONNECTION", db.TestConnection(t.TempDir()))
	t.Setenv("REMINDER_ENABLED", "false")
	t.Setenv("REMINDER_EMAIL_TO", "")
	t.Setenv("S3_BUCKET", "")
}

func run(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer

	root := Root()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&errOut)

	require.NoError(t, root.ExecuteContext(context.Background()), errOut.String())
	return out.String()
}

func TestChatSession(t *testing.T) {
	setupEnv(t)

	out := run(t, "happy\nI want to learn Go\n\ngoals\nquit\n", "chat")
	assert.Contains(t, out, "Welcome to your daily check-in")
	assert.Contains(t, out, "You don't have any goals yet")
	assert.Contains(t, out, "Love to hear that!")
	assert.Contains(t, out, "I've added your goal: 'Learn go'")
	assert.Contains(t, out, "1. Learn go")
	assert.Contains(t, out, "Goodbye! Remember")
	assert.NotContains(t, out, "Let's check your progress")
}

func TestChatEndOfInput(t *testing.T) {
	setupEnv(t)

	out := run(t, "", "chat")
	assert.Contains(t, out, "No worries! We can check in anytime.")
	assert.Contains(t, out, "Goodbye! Take care")
}

func TestCheckInRecordsProgress(t *testing.T) {
	setupEnv(t)

	run(t, "I want to learn Go\nquit\n", "chat", "--skip-checkin")

	out := run(t, "tired\ny\n", "checkin")
	assert.Contains(t, out, "Welcome back! Here are your current goals:")
	assert.Contains(t, out, "🎯 Goal: Learn go")
	assert.Contains(t, out, "'Learn go'")
	assert.Contains(t, out, "Thanks for sharing your progress!")

	out = run(t, "", "analytics")
	assert.Contains(t, out, "Moods (1 entries)")
	assert.Contains(t, out, "tired")
	assert.Contains(t, out, "yes 1 · no 0 · maybe 0")
	assert.Contains(t, out, "Recent moods")

	out = run(t, "", "analytics", "--recent", "0")
	assert.NotContains(t, out, "Recent moods")
}

func TestCheckInInterrupted(t *testing.T) {
	setupEnv(t)

	run(t, "I want to read\nquit\n", "chat", "--skip-checkin")

	out := run(t, "fine\n", "checkin")
	assert.Contains(t, out, "We can track progress another time.")
	assert.NotContains(t, out, "Thanks for sharing your progress!")
}

func TestRemindAndReminders(t *testing.T) {
	setupEnv(t)

	out := run(t, "", "remind")
	assert.Contains(t, out, "No reminder created")

	run(t, "I want to stretch\nquit\n", "chat", "--skip-checkin")
	out = run(t, "", "remind")
	assert.Contains(t, out, "✓ Reminder created")

	out = run(t, "", "reminders", "--peek")
	assert.Contains(t, out, "'Stretch'")

	out = run(t, "", "reminders")
	assert.Contains(t, out, "'Stretch'")

	out = run(t, "", "reminders")
	assert.Contains(t, out, "No unread reminders.")
}

func TestMigrateStatus(t *testing.T) {
	setupEnv(t)

	out := run(t, "", "migrate", "up")
	assert.Contains(t, out, "schema version 2")

	out = run(t, "", "migrate", "down")
	assert.Contains(t, out, "schema version 1")
}

func TestExport(t *testing.T) {
	setupEnv(t)

	out := run(t, "", "export")
	assert.Contains(t, out, `"generated_at"`)
	assert.Contains(t, out, `"mood_data"`)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	out = run(t, "", "export", "--output", path)
	assert.Contains(t, out, "Exported to")
	assert.FileExists(t, path)
}

func TestExportUploadWithoutStorage(t *testing.T) {
	setupEnv(t)

	root := Root()
	root.SetArgs([]string{"export", "--upload"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.ExecuteContext(context.Background()))
}
