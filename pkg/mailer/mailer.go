package mailer

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/campuskart/campuskart-backend/pkg/config"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

// Sender delivers a plain-text email. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends mail through the configured SMTP relay.
type SMTPSender struct {
	cfg  config.SMTPConfig
	logg *logger.Logger
}

// New builds a sender from SMTP configuration. When no host is configured the
// sender degrades to a logged no-op so local environments work without a relay.
func New(cfg config.SMTPConfig, logg *logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logg: logg}
}

// Send delivers one message. The context bounds the SMTP dial and exchange.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if !s.cfg.Enabled() {
		if s.logg != nil {
			ctx = s.logg.WithFields(ctx, map[string]any{"to": to, "subject": subject})
			s.logg.Info(ctx, "mailer disabled, skipping send")
		}
		return nil
	}

	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("recipient is required")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.FromAddress); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("build smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
