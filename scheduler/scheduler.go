package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Task is one unit of background work. A returned error is logged and the
// next tick runs the task again.
type Task func(ctx context.Context) error

// Scheduler runs a named task at a fixed interval until stopped
type Scheduler struct {
	name     string
	interval time.Duration
	task     Task

	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc

	runs     atomic.Int64
	failures atomic.Int64
}

// New creates a scheduler. A non-positive interval makes Start a no-op.
func New(name string, interval time.Duration, task Task) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Start begins executing the task at the configured interval
func (s *Scheduler) Start(ctx context.Context, firstRunImmediately bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.interval <= 0 {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	zap.L().Debug("Scheduler started", zap.String("task", s.name), zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if firstRunImmediately {
			s.run(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.run(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *Scheduler) run(ctx context.Context) {
	s.runs.Add(1)
	if err := s.task(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.failures.Add(1)
		zap.L().Warn("Scheduled task failed", zap.String("task", s.name), zap.Error(err))
	}
}

// Stop cancels the task and waits for an in-flight run to return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.running = false
}

// IsRunning returns true if the task is currently scheduled
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Runs is the number of times the task has been invoked
func (s *Scheduler) Runs() int64 {
	return s.runs.Load()
}

// Failures is the number of runs that returned an error
func (s *Scheduler) Failures() int64 {
	return s.failures.Load()
}
