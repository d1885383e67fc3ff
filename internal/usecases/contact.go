package usecases

import (
	"context"
	"fmt"
	"strings"

	"creovibe/internal/domain/dto"
	"creovibe/internal/domain/repositories"
	"creovibe/pkg/constants"
	appErrors "creovibe/pkg/errors"
	"creovibe/pkg/logger"
	"creovibe/pkg/metrics"
)

const defaultContactName = "Guest"

type ContactService interface {
	// Send returns the sender name used in the message, so the caller can
	// thank the visitor by name.
	Send(ctx context.Context, msg dto.ContactMessageDTO) (string, error)
}

type contactService struct {
	mailer  repositories.Mailer
	logg    *logger.Logger
	metrics *metrics.Site
}

func NewContactService(mailer repositories.Mailer, logg *logger.Logger, site *metrics.Site) ContactService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &contactService{mailer: mailer, logg: logg, metrics: site}
}

// ComposeContactMail renders the relay message for a contact form submission.
func ComposeContactMail(msg dto.ContactMessageDTO) repositories.OutgoingMail {
	return repositories.OutgoingMail{
		Subject: fmt.Sprintf("New message from %s", msg.Name),
		Body:    fmt.Sprintf("From: %s\nEmail: %s\n\nMessage:\n%s", msg.Name, msg.Email, msg.Message),
		ReplyTo: msg.Email,
	}
}

func (s *contactService) Send(ctx context.Context, msg dto.ContactMessageDTO) (string, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	if msg.Name == "" {
		msg.Name = defaultContactName
	}
	msg.Email = strings.TrimSpace(msg.Email)

	if err := s.mailer.Send(ctx, ComposeContactMail(msg)); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "sender", msg.Name), "contact relay failed", err)
		s.metrics.IncContact(constants.StatusFailed)
		return msg.Name, appErrors.ErrMailFailed(err)
	}

	s.metrics.IncContact(constants.StatusOK)
	return msg.Name, nil
}
