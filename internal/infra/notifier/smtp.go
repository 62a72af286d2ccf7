package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"relecloud-api/internal/pkg/config"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"
)

var errSendFailed = errs.New("smtp send failed")

// SMTPNotifier delivers sales notifications over plain SMTP with optional
// AUTH PLAIN when credentials are configured.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg config.SMTPConfig) commands.Notifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(ctx context.Context, subject, body string, recipients []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := n.buildMessage(subject, body, recipients)
	addr := n.cfg.Host + ":" + n.cfg.Port

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, recipients, msg); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to deliver notification"), errSendFailed)
	}
	return nil
}

func (n *SMTPNotifier) buildMessage(subject, body string, recipients []string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
