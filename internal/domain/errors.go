package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a provider query succeeds but matches no
// record. It is a normal outcome, distinct from a failure to ask the question.
var ErrNotFound = errors.New("not found")

// FieldError is a provider-reported field-level error on a mutation payload.
// swagger:model FieldError
type FieldError struct {
	Label   string `json:"label"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// ConfigError reports missing deployment configuration. It is never the
// caller's fault and always maps to a 500.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// ValidationError reports malformed caller input, or field-level validation
// errors the provider returned on a mutation payload.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Label != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", f.Label, f.Message))
		} else {
			parts = append(parts, f.Message)
		}
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

// TransportError reports a failure to reach the provider at all: network
// errors and non-JSON responses.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("provider transport: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError carries the provider's top-level GraphQL errors array
// verbatim. Callers never see a partial success with errors buried in data.
type ProviderError struct {
	Errors json.RawMessage
}

func (e *ProviderError) Error() string { return "provider returned errors: " + string(e.Errors) }
