// Package worker runs the periodic background jobs: the completion sweep,
// idempotency key purge and outbox dispatch.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Runner struct {
	jobs   []Job
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(logger *slog.Logger, jobs ...Job) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{jobs: jobs, logger: logger}
}

// Start launches one goroutine per job. Jobs with a non-positive interval are skipped.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	for _, job := range r.jobs {
		if job.Interval <= 0 {
			r.logger.Warn("worker job disabled", "job", job.Name)
			continue
		}
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.loop(ctx, job)
		}()
	}
}

// Stop cancels the jobs and waits for in-flight runs, or until ctx ends.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	r.logger.Info("worker job started", "job", job.Name, "interval", job.Interval.String())
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("worker job stopped", "job", job.Name)
			return
		case <-ticker.C:
			r.runOnce(ctx, job)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context, job Job) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("worker job panicked", "job", job.Name, "panic", rec)
		}
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		r.logger.Error("worker job failed", "job", job.Name, "error", err.Error())
		return
	}
	r.logger.Debug("worker job finished", "job", job.Name, "duration", time.Since(start).String())
}
