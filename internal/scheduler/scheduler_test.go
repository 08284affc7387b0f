package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsJobsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	s := New()
	s.Register(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())

	status, err := s.Status("tick")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status.Status)
	assert.NotNil(t, status.LastRunAt)
}

func TestSchedulerRecordsFailures(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "broken",
		Interval: time.Hour,
		Fn:       func(ctx context.Context) error { return errors.New("store offline") },
	})

	require.NoError(t, s.Run(context.Background(), "broken"))

	status, err := s.Status("broken")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, status.Status)
	assert.Equal(t, "store offline", status.Message)
}

func TestSchedulerUnknownJob(t *testing.T) {
	s := New()
	assert.Error(t, s.Run(context.Background(), "missing"))
	_, err := s.Status("missing")
	assert.Error(t, err)
}

func TestStopWithoutStart(t *testing.T) {
	s := New()
	s.Stop()
}
