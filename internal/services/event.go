package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"regrelay/internal/domain"
)

type eventResolver struct {
	gql domain.Executor
}

// NewEventResolver creates an EventResolver backed by the provider executor.
// Every identifier kind, including the opaque global id, resolves through one
// filtered events query so the caller always gets the canonical record and
// confirmed existence.
func NewEventResolver(gql domain.Executor) domain.EventResolver {
	return &eventResolver{gql: gql}
}

type eventEdgesPayload struct {
	Events struct {
		Edges []struct {
			Node domain.Event `json:"node"`
		} `json:"edges"`
	} `json:"events"`
}

func (s *eventResolver) Resolve(ctx context.Context, ident domain.EventIdentifier) (*domain.Event, error) {
	value := strings.TrimSpace(ident.Value)
	if value == "" {
		return nil, &domain.ValidationError{Message: "event identifier value is required"}
	}

	var document, varName string
	switch ident.Kind {
	case domain.IdentifierID:
		document, varName = queryEventByID, "id"
	case domain.IdentifierLegacyID:
		document, varName = queryEventByLegacyID, "legacyId"
	case domain.IdentifierCode:
		document, varName = queryEventByCode, "code"
	default:
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown identifier kind %q", ident.Kind)}
	}

	data, err := s.gql.Execute(ctx, document, map[string]any{varName: value})
	if err != nil {
		return nil, err
	}

	var out eventEdgesPayload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("decode events payload: %w", err)}
	}
	edges := out.Events.Edges
	if len(edges) == 0 {
		return nil, domain.ErrNotFound
	}
	// First edge wins when a filter matches more than one record. Documented
	// tie-break: changing it would alter which record downstream systems see.
	ev := edges[0].Node
	return &ev, nil
}
