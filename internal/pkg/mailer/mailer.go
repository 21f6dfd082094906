package mailer

import (
	"context"
	"fmt"

	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/wneessen/go-mail"
)

// Message is a single outbound plain-text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

type SMTPMailer struct {
	client *mail.Client
	from   string
}

func New(cfg config.SMTP) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create mail client error: %w", err)
	}

	return &SMTPMailer{
		client: client,
		from:   cfg.From,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()

	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("set from error: %w", err)
	}

	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("set to error: %w", err)
	}

	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send mail error: %w", err)
	}

	return nil
}
