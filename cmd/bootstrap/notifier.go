package bootstrap

import (
	"context"
	"log/slog"

	"hotel-availability/internal/infra/notifier"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/pkg/config"
	"hotel-availability/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			NewMailSender,
			fx.As(new(notifier.Sender)),
		),
		NewDispatcher,
	),
	fx.Invoke(StartDispatcher),
)

func NewMailSender(cfg config.Config) (*notifier.SMTPSender, error) {
	return notifier.NewSMTPSender(cfg.SMTP)
}

func NewDispatcher(uow shared.UnitOfWork, sender notifier.Sender, cfg config.Config, clk clock.Clock) *notifier.Dispatcher {
	return notifier.NewDispatcher(uow, sender, cfg.Notifier, clk)
}

func StartDispatcher(lc fx.Lifecycle, d *notifier.Dispatcher, cfg config.Config, logger *slog.Logger) {
	if !cfg.Notifier.Enabled {
		logger.Info("notification dispatcher disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting notification dispatcher", "interval", cfg.Notifier.Interval.String())
			return d.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			return d.Stop()
		},
	})
}
