package notifier

import (
	"context"
	"log/slog"

	"relecloud-api/internal/usecase/commands"
)

// SlogNotifier logs instead of delivering. Used in development and tests
// where no SMTP host is configured.
type SlogNotifier struct{}

func NewSlogNotifier() commands.Notifier {
	return &SlogNotifier{}
}

func (n *SlogNotifier) Send(ctx context.Context, subject, body string, recipients []string) error {
	slog.InfoContext(ctx, "notification dispatched",
		"subject", subject,
		"recipients", recipients,
		"body", body)
	return nil
}
