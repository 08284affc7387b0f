// Package scheduler runs named background jobs on fixed intervals.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type JobStatus string

const (
	StatusIdle    JobStatus = "idle"
	StatusRunning JobStatus = "running"
	StatusSuccess JobStatus = "success"
	StatusFailed  JobStatus = "failed"
)

// Job is a task run every Interval after the scheduler starts.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

type jobState struct {
	Job
	mu        sync.Mutex
	status    JobStatus
	message   string
	lastRunAt *time.Time
}

// Snapshot is the observable state of a job.
type Snapshot struct {
	Name      string     `json:"name"`
	Status    JobStatus  `json:"status"`
	Message   string     `json:"message,omitempty"`
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
}

type Scheduler struct {
	mu      sync.RWMutex
	jobs    map[string]*jobState
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*jobState)}
}

// Register adds a job. Jobs registered after Start are not scheduled.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name] = &jobState{Job: job, status: StatusIdle}
}

// Start launches every registered job in its own goroutine. Calling Start
// twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	for _, js := range s.jobs {
		if js.Interval <= 0 {
			slog.Warn("skipping job with non-positive interval", "job", js.Name)
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, js)
	}
	slog.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all job loops and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.started = false
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, js *jobState) {
	defer s.wg.Done()

	ticker := time.NewTicker(js.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, js)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, js *jobState) {
	js.mu.Lock()
	if js.status == StatusRunning {
		js.mu.Unlock()
		return
	}
	js.status = StatusRunning
	js.mu.Unlock()

	now := time.Now()
	err := js.Fn(ctx)

	js.mu.Lock()
	defer js.mu.Unlock()
	js.lastRunAt = &now
	if err != nil {
		js.status = StatusFailed
		js.message = err.Error()
		slog.Warn("job failed", "job", js.Name, "error", err)
		return
	}
	js.status = StatusSuccess
	js.message = ""
}

// Run executes the named job now and waits for it.
func (s *Scheduler) Run(ctx context.Context, name string) error {
	s.mu.RLock()
	js, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("job %q not found", name)
	}
	s.execute(ctx, js)
	return nil
}

// Status returns the state of the named job.
func (s *Scheduler) Status(name string) (Snapshot, error) {
	s.mu.RLock()
	js, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return Snapshot{}, fmt.Errorf("job %q not found", name)
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return Snapshot{Name: js.Name, Status: js.status, Message: js.message, LastRunAt: js.lastRunAt}, nil
}
