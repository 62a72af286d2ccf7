package bootstrap

import (
	"log/slog"

	"relecloud-api/internal/infra/notifier"
	"relecloud-api/internal/pkg/config"
	"relecloud-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier selects SMTP delivery when a host is configured, otherwise the
// log-only notifier.
func NewNotifier(cfg config.Config) commands.Notifier {
	if cfg.SMTP.Host == "" {
		slog.Info("no SMTP host configured, using log notifier")
		return notifier.NewSlogNotifier()
	}
	return notifier.NewSMTPNotifier(cfg.SMTP)
}
