package contactservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/services/contactservice"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/internal/pkg/mailer"
	"github.com/Vlok123/carintel/pkg/logger"

	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m mailer.Message) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, m)

	return nil
}

type fakeContactRepo struct {
	stored []models.ContactMessage
}

func (f *fakeContactRepo) CreateMessage(_ context.Context, m models.ContactMessage) error {
	f.stored = append(f.stored, m)

	return nil
}

func validMessage() models.ContactMessage {
	return models.ContactMessage{ //nolint:exhaustruct
		Name:    "Jan Jansen",
		Email:   "jan@example.nl",
		Subject: "Vraag over kenteken",
		Message: "Waarom staat mijn auto er niet in?",
	}
}

func newService(m *fakeMailer, r *fakeContactRepo) *contactservice.ContactService {
	cfg := config.SMTP{Operator: "info@carintel.nl"} //nolint:exhaustruct

	return contactservice.New(m, r, cfg, logger.NewNop())
}

func TestSubmitSendsBothMails(t *testing.T) {
	ctx := context.Background()
	m := &fakeMailer{}       //nolint:exhaustruct
	r := &fakeContactRepo{}  //nolint:exhaustruct
	cs := newService(m, r)

	require.NoError(t, cs.Submit(ctx, validMessage()))

	require.Len(t, r.stored, 1)
	require.Len(t, m.sent, 2)
	require.Equal(t, "info@carintel.nl", m.sent[0].To)
	require.Contains(t, m.sent[0].Subject, "Vraag over kenteken")
	require.Equal(t, "jan@example.nl", m.sent[1].To)
}

func TestSubmitMissingFields(t *testing.T) {
	ctx := context.Background()
	cs := newService(&fakeMailer{}, &fakeContactRepo{}) //nolint:exhaustruct

	for _, mutate := range []func(*models.ContactMessage){
		func(m *models.ContactMessage) { m.Name = "" },
		func(m *models.ContactMessage) { m.Email = "  " },
		func(m *models.ContactMessage) { m.Subject = "" },
		func(m *models.ContactMessage) { m.Message = "" },
	} {
		msg := validMessage()
		mutate(&msg)

		require.ErrorIs(t, cs.Submit(ctx, msg), contactservice.ErrMissingFields)
	}
}

func TestSubmitInvalidEmail(t *testing.T) {
	ctx := context.Background()
	cs := newService(&fakeMailer{}, &fakeContactRepo{}) //nolint:exhaustruct

	msg := validMessage()
	msg.Email = "not-an-address"

	require.ErrorIs(t, cs.Submit(ctx, msg), contactservice.ErrInvalidEmail)
}

func TestSubmitTransportFailure(t *testing.T) {
	ctx := context.Background()
	m := &fakeMailer{err: errors.New("smtp down")} //nolint:exhaustruct
	r := &fakeContactRepo{}                        //nolint:exhaustruct
	cs := newService(m, r)

	err := cs.Submit(ctx, validMessage())
	require.Error(t, err)
	require.NotErrorIs(t, err, contactservice.ErrMissingFields)

	// The message was stored before the transport failed.
	require.Len(t, r.stored, 1)
}
