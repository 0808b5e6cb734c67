package services

import (
	"context"

	"regrelay/internal/domain"
)

const diagTips = "Pass ?testId=<GraphQL ID> (URL-encode =) and/or ?testLegacyId=123"

type diagnosticsService struct {
	pinger   domain.Pinger
	endpoint string
	token    string
}

// NewDiagnosticsService creates the read-only diagnostics service. It reports
// the token's presence and length, never the token itself.
func NewDiagnosticsService(pinger domain.Pinger, endpoint, token string) domain.DiagnosticsService {
	return &diagnosticsService{pinger: pinger, endpoint: endpoint, token: token}
}

func (s *diagnosticsService) Diagnose(ctx context.Context, testID, testLegacyID string) *domain.DiagReport {
	report := &domain.DiagReport{
		Endpoint:     s.endpoint,
		TokenPresent: s.token != "",
		TokenLength:  len(s.token),
		Tips:         diagTips,
		TestInputs:   domain.DiagTestInputs{TestID: testID, TestLegacyID: testLegacyID},
	}

	report.BasicPing = s.pinger.Ping(ctx, queryTypename, nil)

	if testID != "" {
		r := s.pinger.Ping(ctx, queryEventByID, map[string]any{"id": testID})
		report.ByID = &r
	}
	if testLegacyID != "" {
		r := s.pinger.Ping(ctx, queryEventByLegacyID, map[string]any{"legacyId": testLegacyID})
		report.ByLegacy = &r
	}
	return report
}
