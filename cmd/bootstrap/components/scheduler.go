package components

import (
	"context"
	"log/slog"
	"time"

	"clubhouse/internal/pkg/config"
	"clubhouse/internal/scheduler"
	"clubhouse/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(startScheduler),
)

func NewScheduler(
	cfg config.Config,
	loc *time.Location,
	credits commands.CreditCommands,
	freezes commands.FreezeCommands,
	waitlist commands.WaitlistCommands,
	logger *slog.Logger,
) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Scheduler, loc, credits, freezes, waitlist, logger)
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, s *scheduler.Scheduler, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
