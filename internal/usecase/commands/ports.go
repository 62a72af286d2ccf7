package commands

import "context"

// Notifier dispatches a single message per accepted info request. Failure is
// reported to the caller, never retried here.
type Notifier interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}
