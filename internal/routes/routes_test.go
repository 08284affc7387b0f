package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/aura/internal/app"
	"github.com/templui/aura/internal/config"
	"github.com/templui/aura/internal/db"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{
		AppName:          "AURA",
		AppEnv:           "development",
		DBDriver:         "sqlite",
		DBConnection:     db.TestConnection(t.TempDir()),
		DBMaxRetries:     1,
		ReminderEnabled:  true,
		ReminderInterval: time.Hour,
		ChatRateLimit:    3,
		ChatRateWindow:   time.Minute,
	}

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestChatFlow(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(SetupRoutes(a))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := srv.Client()
	client.Jar = jar

	send := func(message string) (int, map[string]any) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/chat", strings.NewReader(`{"message": "`+message+`"}`))
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp.StatusCode, body
	}

	status, body := send("I want to learn Go")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["response"], "Welcome to AURA")
	assert.Contains(t, body["response"], "'Learn go'")

	_, body = send("goals")
	assert.Contains(t, body["response"], "1. Learn go")
	assert.NotContains(t, body["response"], "Welcome to AURA")

	_, _ = send("encourage")
	status, body = send("encourage")
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.NotEmpty(t, body["response"])
}

func TestReminderJobAndEndpoints(t *testing.T) {
	a := newTestApp(t)
	h := SetupRoutes(a)
	ctx := context.Background()

	require.NoError(t, a.Scheduler.Run(ctx, app.ReminderJob))
	status, err := a.Scheduler.Status(app.ReminderJob)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(status.Status))

	a.GoalService.AddGoal(ctx, "I want to stretch")
	require.NoError(t, a.Scheduler.Run(ctx, app.ReminderJob))
	status, err = a.Scheduler.Status(app.ReminderJob)
	require.NoError(t, err)
	assert.Equal(t, "success", string(status.Status))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check-reminders", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["has_reminders"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AURA", body["app"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
