package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"regrelay/internal/delivery/http/helpers"
	"regrelay/internal/domain"
	"regrelay/internal/services"
)

type PublishController struct {
	Logger  *slog.Logger
	Service domain.PublisherService
	// SiteBase overrides the base of computed public URLs. Empty means the
	// requesting origin is used.
	SiteBase string
}

func NewPublishController(logger *slog.Logger, svc domain.PublisherService, siteBase string) *PublishController {
	return &PublishController{
		Logger:   logger,
		Service:  svc,
		SiteBase: siteBase,
	}
}

// PublishResponse is the success response body for /api/event-url.
// swagger:model PublishResponse
type PublishResponse struct {
	Status    string `json:"status"`
	EventID   string `json:"eventId"`
	LegacyID  string `json:"legacyId"`
	Code      string `json:"code"`
	PublicURL string `json:"publicUrl"`
}

// Publish godoc
// @Summary Publish an event's public URL
// @Description Resolves the event, computes its canonical public URL (legacy id preferred, then code, then opaque id), and writes the URL into the configured custom field. Accepts manual query parameters or a webhook JSON body.
// @Tags events
// @Accept json
// @Produce json
// @Param id query string false "Opaque provider event id"
// @Param eventId query string false "Alias for id"
// @Param legacyId query string false "Numeric legacy id"
// @Param code query string false "Human-readable event code"
// @Success 200 {object} controllers.PublishResponse
// @Failure 400 {object} helpers.ErrorResponse "no identifier, or provider field errors on the custom-field write"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/event-url [post]
func (c *PublishController) Publish(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := q.Get("id")
	if id == "" {
		id = q.Get("eventId")
	}
	ident, ok := domain.IdentifierFromParams(id, q.Get("legacyId"), q.Get("code"))
	if !ok && r.Body != nil {
		// Webhook bodies vary in shape; a parse failure just means no
		// identifier was supplied this way.
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			if eventID, found := services.EventIDFromWebhook(payload); found {
				ident, ok = domain.ByID(eventID), true
			}
		}
	}
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest,
			"No event id. Use ?id=, ?eventId=, ?legacyId=, ?code=, or a webhook payload.", nil)
		return
	}

	base := c.SiteBase
	if base == "" {
		base = requestOrigin(r)
	}

	result, err := c.Service.Publish(r.Context(), ident, base)
	if err != nil {
		helpers.WriteDomainError(w, c.Logger, r, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, PublishResponse{
		Status:    "success",
		EventID:   result.EventID,
		LegacyID:  result.LegacyID,
		Code:      result.Code,
		PublicURL: result.PublicURL,
	})
}

// requestOrigin reconstructs the requesting origin for deployments behind a
// proxy (X-Forwarded-Proto) or terminating TLS locally.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
