package notification

import (
	"context"
	"log/slog"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// LogMailer writes emails to the log instead of an SMTP relay.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, email Email) error {
	m.logger.InfoContext(ctx, "email sent",
		"to", email.To,
		"subject", email.Subject,
		"body", email.Body)
	return nil
}
