package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"regrelay/internal/domain"
)

type registrationService struct {
	events   domain.EventResolver
	contacts domain.ContactResolver
	gql      domain.Executor
	email    domain.EmailService
	logger   *slog.Logger
}

// NewRegistrationService creates the registration workflow service. The
// email service may be nil, in which case no confirmation is sent.
func NewRegistrationService(
	events domain.EventResolver,
	contacts domain.ContactResolver,
	gql domain.Executor,
	email domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		events:   events,
		contacts: contacts,
		gql:      gql,
		email:    email,
		logger:   logger,
	}
}

type registerContactsPayload struct {
	Event struct {
		RegisterContacts struct {
			Event *struct {
				ID string `json:"id"`
			} `json:"event"`
			Errors []domain.FieldError `json:"errors"`
		} `json:"registerContacts"`
	} `json:"event"`
}

func (s *registrationService) Register(ctx context.Context, ident domain.EventIdentifier, learner domain.Learner) (*domain.RegistrationResult, error) {
	// The only validation performed locally, before any network call.
	if err := validateRegistration(ident, learner); err != nil {
		return nil, err
	}

	ev, err := s.events.Resolve(ctx, ident)
	if err != nil {
		return nil, err
	}

	contactID, created, err := s.contacts.ResolveOrCreate(ctx, learner)
	if err != nil {
		// A failure from here on never rolls back a contact created above:
		// contact and registration are independent provider-side resources.
		return nil, err
	}

	data, err := s.gql.Execute(ctx, mutationRegisterContacts, map[string]any{
		"eventId":    ev.ID,
		"contactIds": []string{contactID},
	})
	if err != nil {
		return nil, err
	}
	var payload registerContactsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("decode registerContacts payload: %w", err)}
	}
	if errs := payload.Event.RegisterContacts.Errors; len(errs) > 0 {
		return nil, &domain.ValidationError{Message: "registration failed", Fields: errs}
	}

	result := &domain.RegistrationResult{
		EventID:        ev.ID,
		EventTitle:     ev.Title,
		ContactID:      contactID,
		ContactCreated: created,
	}
	s.sendConfirmation(ctx, ev, learner)
	return result, nil
}

// sendConfirmation is best-effort: a mail failure is logged and never fails
// the registration that already succeeded at the provider.
func (s *registrationService) sendConfirmation(ctx context.Context, ev *domain.Event, learner domain.Learner) {
	if s.email == nil {
		return
	}
	data := &domain.RegistrationConfirmationData{
		Email:      learner.Email,
		FirstName:  learner.FirstName,
		EventTitle: ev.Title,
		EventStart: ev.Start,
	}
	if err := s.email.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "email", learner.Email, "err", err)
	}
}

func validateRegistration(ident domain.EventIdentifier, learner domain.Learner) error {
	var missing []string
	if strings.TrimSpace(ident.Value) == "" {
		missing = append(missing, "identifierValue")
	}
	if strings.TrimSpace(learner.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(learner.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(learner.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Message: strings.Join(missing, ", ") + " required"}
	}
	return nil
}
