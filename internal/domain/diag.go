package domain

import "context"

// DiagTestInputs echoes the identifiers a diagnostic run was asked to test.
type DiagTestInputs struct {
	TestID       string `json:"testId"`
	TestLegacyID string `json:"testLegacyId"`
}

// DiagReport is the diagnostic entry point's response body. The token itself
// is never included, only its presence and length.
// swagger:model DiagReport
type DiagReport struct {
	Endpoint     string         `json:"endpoint"`
	TokenPresent bool           `json:"tokenPresent"`
	TokenLength  int            `json:"tokenLength"`
	Tips         string         `json:"tips"`
	BasicPing    PingResult     `json:"basicPing"`
	TestInputs   DiagTestInputs `json:"testInputs"`
	ByID         *PingResult    `json:"byId"`
	ByLegacy     *PingResult    `json:"byLegacy"`
}

// DiagnosticsService performs read-only pings against the provider for
// operational debugging. It never mutates provider state.
type DiagnosticsService interface {
	Diagnose(ctx context.Context, testID, testLegacyID string) *DiagReport
}
