package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/templui/aura/internal/db"
	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/model"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type services struct {
	store     *gateway.Gateway
	goals     *GoalService
	moods     *MoodService
	reminders *ReminderService
	analytics *AnalyticsService
	responder *Responder
	notifier  *recordingNotifier
}

func newServices(t *testing.T) *services {
	t.Helper()
	store := gateway.New(db.NewTestDB(t), gateway.WithClock(func() time.Time { return testNow }))
	notifier := &recordingNotifier{}

	s := &services{
		store:     store,
		goals:     NewGoalService(store, FirstChooser),
		moods:     NewMoodService(store),
		reminders: NewReminderService(store, FirstChooser, notifier),
		analytics: NewAnalyticsService(store),
		notifier:  notifier,
	}
	s.responder = NewResponder(s.goals, s.moods, s.reminders, FirstChooser)
	return s
}

type recordingNotifier struct {
	mu        sync.Mutex
	reminders []model.Reminder
	err       error
}

func (n *recordingNotifier) NotifyReminder(ctx context.Context, reminder model.Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reminders = append(n.reminders, reminder)
	return n.err
}

type memoryStorage struct {
	objects map[string][]byte
	err     error
}

func (m *memoryStorage) Save(ctx context.Context, key string, r io.Reader) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = data
	return nil
}

func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) URL(ctx context.Context, key string) (string, error) {
	return "memory://" + key, nil
}
