package domain

import (
	"context"
	"encoding/json"
)

// Executor issues one authenticated GraphQL request against the provider and
// normalizes transport and GraphQL-level failures into typed errors.
type Executor interface {
	Execute(ctx context.Context, document string, variables map[string]any) (json.RawMessage, error)
}

// PingResult is the raw outcome of a diagnostic provider call.
// swagger:model PingResult
type PingResult struct {
	OK     bool            `json:"ok"`
	Status int             `json:"status"`
	JSON   json.RawMessage `json:"json"`
}

// Pinger performs read-only diagnostic calls, reporting the raw wire outcome
// instead of normalizing errors.
type Pinger interface {
	Ping(ctx context.Context, document string, variables map[string]any) PingResult
}
