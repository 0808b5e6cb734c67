package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"regrelay/internal/domain"
)

type publisherService struct {
	events        domain.EventResolver
	gql           domain.Executor
	definitionKey string
}

// NewPublisherService creates the public-URL publisher. definitionKey is the
// provider custom-field definition key the URL is written to; publishing
// fails when it is not configured.
func NewPublisherService(events domain.EventResolver, gql domain.Executor, definitionKey string) domain.PublisherService {
	return &publisherService{events: events, gql: gql, definitionKey: definitionKey}
}

type eventUpdatePayload struct {
	Event struct {
		Update struct {
			Event *struct {
				ID string `json:"id"`
			} `json:"event"`
			Errors []domain.FieldError `json:"errors"`
		} `json:"update"`
	} `json:"event"`
}

func (s *publisherService) Publish(ctx context.Context, ident domain.EventIdentifier, siteBase string) (*domain.PublishResult, error) {
	if s.definitionKey == "" {
		return nil, &domain.ConfigError{Message: "missing PUBLIC_URL_CF_DEFINITION_KEY (custom field definition key)"}
	}

	ev, err := s.events.Resolve(ctx, ident)
	if err != nil {
		return nil, err
	}

	publicURL := PublicEventURL(ev, siteBase)

	data, err := s.gql.Execute(ctx, mutationSetEventPublicURL, map[string]any{
		"eventId":       ev.ID,
		"definitionKey": s.definitionKey,
		"value":         publicURL,
	})
	if err != nil {
		return nil, err
	}
	var payload eventUpdatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("decode event update payload: %w", err)}
	}
	if errs := payload.Event.Update.Errors; len(errs) > 0 {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("custom field update failed for %s", publicURL),
			Fields:  errs,
		}
	}

	return &domain.PublishResult{
		EventID:   ev.ID,
		LegacyID:  string(ev.LegacyID),
		Code:      ev.Code,
		PublicURL: publicURL,
	}, nil
}

// PublicEventURL computes an event's canonical public URL deterministically:
// legacy id as a query parameter, else code as a path segment, else the
// opaque id as a query parameter. Repeated publishes of the same event state
// therefore store the same value.
func PublicEventURL(ev *domain.Event, base string) string {
	base = strings.TrimSuffix(base, "/")
	switch {
	case ev.LegacyID != "":
		return base + "/?legacyId=" + url.QueryEscape(string(ev.LegacyID))
	case ev.Code != "":
		return base + "/e/" + url.PathEscape(ev.Code)
	default:
		return base + "/?id=" + url.QueryEscape(ev.ID)
	}
}

// webhookIDPaths is the ordered list of payload locations an event id may
// appear at. The provider's webhook payload shape has been observed to vary;
// the first non-empty value wins.
var webhookIDPaths = [][]string{
	{"event", "id"},
	{"payload", "event", "id"},
	{"entity", "id"},
	{"data", "event", "id"},
	{"id"},
}

// EventIDFromWebhook walks the known webhook payload shapes in order and
// returns the first non-empty event id found.
func EventIDFromWebhook(payload map[string]any) (string, bool) {
	for _, path := range webhookIDPaths {
		if v, ok := lookupPath(payload, path); ok {
			return v, true
		}
	}
	return "", false
}

func lookupPath(m map[string]any, path []string) (string, bool) {
	cur := any(m)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = obj[key]
		if !ok {
			return "", false
		}
	}
	switch v := cur.(type) {
	case string:
		if v != "" {
			return v, true
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}
