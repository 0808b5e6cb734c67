package controllers

import (
	"log/slog"
	"net/http"

	"regrelay/internal/delivery/http/helpers"
	"regrelay/internal/domain"
)

type DiagController struct {
	Logger  *slog.Logger
	Service domain.DiagnosticsService
}

func NewDiagController(logger *slog.Logger, svc domain.DiagnosticsService) *DiagController {
	return &DiagController{
		Logger:  logger,
		Service: svc,
	}
}

// Diagnose godoc
// @Summary Provider connectivity diagnostics
// @Description Performs read-only pings against the provider and returns raw status/response for operational debugging. Never mutates provider state and never reveals the token.
// @Tags diagnostics
// @Produce json
// @Param testId query string false "Event id to test the id filter with (URL-encode =)"
// @Param testLegacyId query string false "Legacy id to test the legacyId filter with"
// @Success 200 {object} domain.DiagReport
// @Router /api/diag [get]
func (c *DiagController) Diagnose(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report := c.Service.Diagnose(r.Context(), q.Get("testId"), q.Get("testLegacyId"))
	helpers.WriteJSON(w, http.StatusOK, report)
}
