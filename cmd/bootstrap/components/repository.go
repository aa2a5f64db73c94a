package components

import (
	"log/slog"

	"clubhouse/internal/infra/notify"
	"clubhouse/internal/infra/uow"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/usecase/shared"

	"go.uber.org/fx"
)

// RepositoryModule provides the transactional write side and outbound
// delivery. Repositories are built per transaction by the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		NewNotifier,
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) shared.Notifier {
	return notify.NewNotifier(cfg.SMTP, logger)
}
