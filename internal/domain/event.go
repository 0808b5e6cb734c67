package domain

import (
	"context"
	"encoding/json"
)

// NumericString decodes JSON values that may arrive as either a number or a
// string. The provider returns legacy ids as numbers but its filters expect
// them as strings.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

// Event represents one schedulable training offering at the provider.
// All fields are provider-owned; the relay only reads them, except for the
// public-URL custom field written by the publisher.
// swagger:model Event
type Event struct {
	ID           string        `json:"id"`
	Code         string        `json:"code"`
	LegacyID     NumericString `json:"legacyId"`
	Title        string `json:"title"`
	Start        string `json:"start"`
	End          string `json:"end"`
	LearningMode string `json:"learningMode"`
	LocationText string `json:"locationText"`
}

// IdentifierKind names the kind of event identifier a caller supplied.
type IdentifierKind string

const (
	IdentifierID       IdentifierKind = "id"
	IdentifierCode     IdentifierKind = "code"
	IdentifierLegacyID IdentifierKind = "legacyId"
)

// EventIdentifier selects an event by exactly one of its identifiers.
type EventIdentifier struct {
	Kind  IdentifierKind
	Value string
}

// ByID selects an event by its opaque provider-assigned global id.
func ByID(id string) EventIdentifier {
	return EventIdentifier{Kind: IdentifierID, Value: id}
}

// ByCode selects an event by its human-readable code.
func ByCode(code string) EventIdentifier {
	return EventIdentifier{Kind: IdentifierCode, Value: code}
}

// ByLegacyID selects an event by its numeric legacy id. The value stays a
// string because the provider's filters expect String values.
func ByLegacyID(legacyID string) EventIdentifier {
	return EventIdentifier{Kind: IdentifierLegacyID, Value: legacyID}
}

// IdentifierFromParams picks the most specific identifier present:
// id wins over legacyId, which wins over code. The second return is false
// when none was supplied.
func IdentifierFromParams(id, legacyID, code string) (EventIdentifier, bool) {
	switch {
	case id != "":
		return ByID(id), true
	case legacyID != "":
		return ByLegacyID(legacyID), true
	case code != "":
		return ByCode(code), true
	}
	return EventIdentifier{}, false
}

// EventResolver resolves an identifier to the canonical event record.
// A query that matches nothing returns ErrNotFound.
type EventResolver interface {
	Resolve(ctx context.Context, ident EventIdentifier) (*Event, error)
}
