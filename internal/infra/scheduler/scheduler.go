package scheduler

import (
	"context"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled unit of work. Its context is cancelled when the
// scheduler stops.
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron specs. A run still in progress when the next
// tick arrives is skipped, not queued.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// New builds a scheduler whose job runs are bounded by timeout. Zero means
// unbounded.
func New(timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{}),
		cron.SkipIfStillRunning(cronLogger{}),
	))
	return &Scheduler{cron: c, timeout: timeout, ctx: ctx, cancel: cancel}
}

// Add registers job under spec. An empty spec disables the job.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		slog.Info("scheduled job disabled", "job", name)
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return errs.Wrapf(err, "schedule %s with %q", name, spec)
	}
	slog.Info("scheduled job registered", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	if err := job(ctx); err != nil {
		slog.Error("scheduled job failed", "job", name, "error", err, "elapsed", time.Since(started).String())
		return
	}
	slog.Debug("scheduled job finished", "job", name, "elapsed", time.Since(started).String())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes robfig/cron's own messages to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
