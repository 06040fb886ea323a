// Package mail sends transactional email for the application. The only
// message today is the password-reset mail; delivery failures are logged
// and never surfaced to the HTTP caller, so the forgot-password response
// stays identical whether or not a mail went out.
package mail

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	gomail "github.com/wneessen/go-mail"
)

// Sender delivers one HTML message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// smtpSender delivers mail over SMTP using wneessen/go-mail.
type smtpSender struct {
	client *gomail.Client
	from   string
	logger *logger.Logger
}

// NewSMTPSender constructs a Sender from the mail configuration. Returns an
// error if the SMTP client cannot be configured; an unreachable server only
// fails later, at send time.
func NewSMTPSender(cfg config.Mail, logger *logger.Logger) (Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating SMTP client: %w", err)
	}

	return &smtpSender{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

// Send composes and delivers a single HTML message.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("error setting mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("error setting mail recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending mail: %w", err)
	}

	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}

// nopSender discards all mail, logging each message instead. Used when no
// SMTP host is configured (local development) and in tests.
type nopSender struct {
	logger *logger.Logger
}

// NewNopSender returns a Sender that logs instead of delivering.
func NewNopSender(logger *logger.Logger) Sender {
	return &nopSender{logger: logger}
}

func (s *nopSender) Send(_ context.Context, to, subject, _ string) error {
	s.logger.Info().Str("to", to).Str("subject", subject).Msg("mail delivery skipped: no SMTP host configured")
	return nil
}

// NewSender picks the SMTP sender when a host is configured and the no-op
// sender otherwise.
func NewSender(cfg config.Mail, logger *logger.Logger) (Sender, error) {
	if cfg.Host == "" {
		return NewNopSender(logger), nil
	}
	return NewSMTPSender(cfg, logger)
}
