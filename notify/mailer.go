// Package notify mails queued course notifications.
package notify

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"lms/config"
)

type Recipient struct {
	Name  string
	Email string
}

// Message is one rendered email.
type Message struct {
	To      []Recipient
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks SendGrid when an API key is configured and the log
// mailer otherwise.
func NewMailer(cfg *config.Config, log zerolog.Logger) Mailer {
	if cfg.SendgridAPIKey != "" {
		return NewSendgridMailer(cfg.SendgridAPIKey, cfg.AppName, cfg.MailFrom)
	}
	return &LogMailer{Log: log}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	Log zerolog.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	to := make([]string, 0, len(msg.To))
	for _, r := range msg.To {
		to = append(to, r.Email)
	}
	m.Log.Info().
		Str("to", strings.Join(to, ",")).
		Str("subject", msg.Subject).
		Msg(msg.Text)
	return nil
}
