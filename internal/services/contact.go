package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"regrelay/internal/domain"
)

type contactResolver struct {
	gql              domain.Executor
	defaultAccountID string
}

// NewContactResolver creates a ContactResolver. When defaultAccountID is
// empty, contact auto-create is disabled and unknown emails fail.
func NewContactResolver(gql domain.Executor, defaultAccountID string) domain.ContactResolver {
	return &contactResolver{gql: gql, defaultAccountID: defaultAccountID}
}

type contactEdgesPayload struct {
	Contacts struct {
		Edges []struct {
			Node struct {
				ID           string `json:"id"`
				EmailAddress string `json:"emailAddress"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"contacts"`
}

type contactCreatePayload struct {
	Contact struct {
		Create struct {
			Contact *struct {
				ID string `json:"id"`
			} `json:"contact"`
			Errors []domain.FieldError `json:"errors"`
		} `json:"create"`
	} `json:"contact"`
}

func (s *contactResolver) ResolveOrCreate(ctx context.Context, learner domain.Learner) (string, bool, error) {
	data, err := s.gql.Execute(ctx, queryContactByEmail, map[string]any{"email": learner.Email})
	if err != nil {
		return "", false, err
	}
	var found contactEdgesPayload
	if err := json.Unmarshal(data, &found); err != nil {
		return "", false, &domain.TransportError{Err: fmt.Errorf("decode contacts payload: %w", err)}
	}
	if edges := found.Contacts.Edges; len(edges) > 0 {
		// First match wins; duplicate contacts at the provider are not
		// deduplicated here. The existing record is returned unchanged even
		// when the submitted name differs.
		return edges[0].Node.ID, false, nil
	}

	if s.defaultAccountID == "" {
		return "", false, &domain.ValidationError{
			Message: "contact not found and auto-create is disabled; set DEFAULT_ACCOUNT_ID to enable it",
		}
	}

	input := map[string]any{
		"accountId": s.defaultAccountID,
		"personalName": map[string]any{
			"firstName": learner.FirstName,
			"lastName":  learner.LastName,
		},
		"emailAddress": learner.Email,
	}
	data, err = s.gql.Execute(ctx, mutationCreateContact, map[string]any{"input": input})
	if err != nil {
		return "", false, err
	}
	var created contactCreatePayload
	if err := json.Unmarshal(data, &created); err != nil {
		return "", false, &domain.TransportError{Err: fmt.Errorf("decode contact create payload: %w", err)}
	}
	payload := created.Contact.Create
	if len(payload.Errors) > 0 {
		return "", false, &domain.ValidationError{Message: "contact create failed", Fields: payload.Errors}
	}
	if payload.Contact == nil || payload.Contact.ID == "" {
		return "", false, &domain.TransportError{Err: errors.New("contact create returned no id")}
	}
	return payload.Contact.ID, true, nil
}
