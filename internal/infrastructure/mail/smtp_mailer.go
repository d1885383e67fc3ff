package mail

import (
	"context"
	"errors"
	"fmt"

	"creovibe/internal/domain/repositories"
	"creovibe/internal/pkg/config"
	"creovibe/pkg/logger"

	gomail "github.com/wneessen/go-mail"
)

var ErrNotConfigured = errors.New("mail relay is not configured")

type SMTPMailer struct {
	cfg  config.MailConfig
	logg *logger.Logger
}

func NewSMTPMailer(cfg config.MailConfig, logg *logger.Logger) *SMTPMailer {
	if logg == nil {
		logg = logger.Nop()
	}
	return &SMTPMailer{cfg: cfg, logg: logg}
}

// Message builds the envelope without dialing, so it can be checked in isolation.
func (m *SMTPMailer) Message(ctx context.Context, out repositories.OutgoingMail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if out.ReplyTo != "" {
		// a bad visitor address should not block the relay
		if err := msg.ReplyTo(out.ReplyTo); err != nil {
			m.logg.Debug(m.logg.WithFields(ctx, map[string]any{
				"reply_to": out.ReplyTo,
				"error":    err.Error(),
			}), "invalid reply-to dropped")
		}
	}
	msg.Subject(out.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, out.Body)
	return msg, nil
}

func (m *SMTPMailer) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.TLSMode == config.MailTLSStartTLS {
		return append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	return append(opts, gomail.WithSSL())
}

func (m *SMTPMailer) Send(ctx context.Context, out repositories.OutgoingMail) error {
	if !m.cfg.Enabled() {
		return ErrNotConfigured
	}

	msg, err := m.Message(ctx, out)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
