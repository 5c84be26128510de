// Package job runs periodic background work, currently the recurring
// refresh of all subscribed feeds.
package job

import (
	"context"
	"sync"
	"time"

	"skim/utils/logger"
)

// Job is one periodic background task.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on their intervals with context-aware
// shutdown.
type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a job to run once Start is called. Jobs with a
// non-positive interval are ignored.
func (s *Scheduler) Add(j Job) {
	if j.Interval <= 0 {
		logger.SafeInfo("background job disabled", "job", j.Name)
		return
	}
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job. Each job runs immediately, then
// repeats at its interval until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(ctx, j)
	}
}

// Shutdown blocks until all running jobs have returned.
func (s *Scheduler) Shutdown() {
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.execute(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.SafeInfo("job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx := ctx
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		logger.SafeError("job failed", "job", j.Name, "error", err)
		return
	}
	logger.SafeInfo("job completed", "job", j.Name, "duration_ms", time.Since(start).Milliseconds())
}
