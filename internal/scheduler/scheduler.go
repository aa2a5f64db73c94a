// Package scheduler runs the daily billing jobs and the waitlist claim sweep
// on cron schedules in the club's time zone.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"clubhouse/internal/metrics"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const (
	JobCreditIssuance = "credit_issuance"
	JobFreezeSweep    = "freeze_completion"
	JobClaimSweep     = "waitlist_claim_sweep"
)

// jobTimeout bounds a single run so a stuck database call cannot pile up runs.
const jobTimeout = 10 * time.Minute

type jobFunc func(ctx context.Context) error

type Scheduler struct {
	cron    *cron.Cron
	entries map[string]cron.EntryID
	jobs    map[string]jobFunc
	logger  *slog.Logger
}

func New(
	cfg config.SchedulerConfig,
	loc *time.Location,
	credits commands.CreditCommands,
	freezes commands.FreezeCommands,
	waitlist commands.WaitlistCommands,
	logger *slog.Logger,
) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		entries: map[string]cron.EntryID{},
		jobs:    map[string]jobFunc{},
		logger:  logger,
	}

	jobs := []struct {
		name string
		spec string
		run  jobFunc
	}{
		{JobCreditIssuance, cfg.IssuanceSpec, func(ctx context.Context) error {
			// zero date: issue for the club-local today
			_, err := credits.RunDailyIssuance(ctx, time.Time{})
			return err
		}},
		{JobFreezeSweep, cfg.FreezeSweepSpec, func(ctx context.Context) error {
			_, err := freezes.CompleteDueFreezes(ctx, time.Time{})
			return err
		}},
		{JobClaimSweep, cfg.ClaimSweepSpec, func(ctx context.Context) error {
			_, err := waitlist.ExpireLapsedClaims(ctx)
			return err
		}},
	}
	for _, j := range jobs {
		if err := s.add(j.name, j.spec, j.run); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) add(name, spec string, run jobFunc) error {
	id, err := s.cron.AddFunc(spec, func() { s.runJob(name, run) })
	if err != nil {
		return errs.Wrapf(err, "invalid schedule %q for job %s", spec, name)
	}
	s.entries[name] = id
	s.jobs[name] = run
	return nil
}

// RunNow runs a registered job synchronously, outside its schedule.
func (s *Scheduler) RunNow(name string) error {
	run, ok := s.jobs[name]
	if !ok {
		return errs.Newf("unknown job %s", name)
	}
	s.runJob(name, run)
	return nil
}

func (s *Scheduler) runJob(name string, run jobFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	started := time.Now()
	if err := run(ctx); err != nil {
		metrics.RecordJobRun(name, "failed")
		s.logger.ErrorContext(ctx, "scheduled job failed",
			slog.String("job", name),
			slog.Duration("elapsed", time.Since(started)),
			slog.Any("error", err))
		return
	}
	metrics.RecordJobRun(name, "succeeded")
	s.logger.DebugContext(ctx, "scheduled job finished",
		slog.String("job", name),
		slog.Duration("elapsed", time.Since(started)))
}

// Next reports when the named job fires next; zero if it is unknown or the
// scheduler is not running.
func (s *Scheduler) Next(name string) time.Time {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", slog.Int("jobs", len(s.entries)))
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "scheduler did not stop in time")
	}
}

// cronLogger routes cron's internal messages into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
