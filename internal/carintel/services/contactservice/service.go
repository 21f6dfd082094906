package contactservice

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/internal/pkg/mailer"
	"github.com/Vlok123/carintel/pkg/logger"
)

var (
	ErrMissingFields = errors.New("name, email, subject and message are required")
	ErrInvalidEmail  = errors.New("invalid email address")
)

type Mailer interface {
	Send(context.Context, mailer.Message) error
}

type Repository interface {
	CreateMessage(context.Context, models.ContactMessage) error
}

type ContactService struct {
	mailer      Mailer
	contactRepo Repository
	operator    string
	lg          logger.Logger
}

func New(m Mailer, contactRepo Repository, cfg config.SMTP, lg logger.Logger) *ContactService {
	return &ContactService{
		mailer:      m,
		contactRepo: contactRepo,
		operator:    cfg.Operator,
		lg:          lg,
	}
}

// Submit validates the form, stores the message, and sends two mails:
// the submission to the operator and a confirmation to the submitter.
// A transport failure on either fails the whole submission.
func (cs *ContactService) Submit(ctx context.Context, m models.ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Subject) == "" || strings.TrimSpace(m.Message) == "" {
		return ErrMissingFields
	}

	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}

	if err := cs.contactRepo.CreateMessage(ctx, m); err != nil {
		return fmt.Errorf("store message error: %w", err)
	}

	operatorMail := mailer.Message{
		To:      cs.operator,
		Subject: "Contact form: " + m.Subject,
		Body: fmt.Sprintf("From: %s <%s>\n\n%s", m.Name, m.Email, m.Message),
	}

	if err := cs.mailer.Send(ctx, operatorMail); err != nil {
		return fmt.Errorf("send operator mail error: %w", err)
	}

	confirmation := mailer.Message{
		To:      m.Email,
		Subject: "We received your message",
		Body: fmt.Sprintf("Hi %s,\n\nThanks for contacting us. We received your message %q and will get back to you.\n", //nolint:lll
			m.Name, m.Subject),
	}

	if err := cs.mailer.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("send confirmation mail error: %w", err)
	}

	return nil
}
