package controllers

import (
	"log/slog"
	"net/http"

	"regrelay/internal/delivery/http/helpers"
	"regrelay/internal/domain"
)

type EventController struct {
	Logger   *slog.Logger
	Resolver domain.EventResolver
}

func NewEventController(logger *slog.Logger, resolver domain.EventResolver) *EventController {
	return &EventController{
		Logger:   logger,
		Resolver: resolver,
	}
}

// Lookup godoc
// @Summary Look up an event
// @Description Resolves an event by exactly one of id, legacyId, or code. When several are supplied the most specific wins: id, then legacyId, then code.
// @Tags events
// @Produce json
// @Param id query string false "Opaque provider event id"
// @Param legacyId query string false "Numeric legacy id"
// @Param code query string false "Human-readable event code"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse "no identifier supplied"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/event [get]
func (c *EventController) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ident, ok := domain.IdentifierFromParams(q.Get("id"), q.Get("legacyId"), q.Get("code"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Provide ?code= or ?id= or ?legacyId=", nil)
		return
	}

	ev, err := c.Resolver.Resolve(r.Context(), ident)
	if err != nil {
		helpers.WriteDomainError(w, c.Logger, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusOK, ev)
}
