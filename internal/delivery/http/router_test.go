package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regrelay/internal/adapters/administrate"
	"regrelay/internal/delivery/http/controllers"
	"regrelay/internal/delivery/http/middleware"
	"regrelay/internal/services"
)

// stubProvider answers GraphQL requests by matching operation names in the
// incoming document. It stands in for the real provider end to end.
type stubProvider struct {
	contactEdges string
	eventEdges   string
	registerBody string
	requests     []string
}

func (p *stubProvider) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		p.requests = append(p.requests, body.Query)

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(body.Query, "EventBy"):
			_, _ = io.WriteString(w, `{"data":{"events":{"edges":[`+p.eventEdges+`]}}}`)
		case strings.Contains(body.Query, "ContactByEmail"):
			_, _ = io.WriteString(w, `{"data":{"contacts":{"edges":[`+p.contactEdges+`]}}}`)
		case strings.Contains(body.Query, "RegisterContacts"):
			_, _ = io.WriteString(w, `{"data":`+p.registerBody+`}`)
		case strings.Contains(body.Query, "SetEventPublicURL"):
			_, _ = io.WriteString(w, `{"data":{"event":{"update":{"event":{"id":"ev1"},"errors":[]}}}}`)
		default:
			_, _ = io.WriteString(w, `{"data":{"__typename":"Query"}}`)
		}
	})
}

func newRelay(t *testing.T, provider *stubProvider, defaultAccountID string) http.Handler {
	t.Helper()
	srv := httptest.NewServer(provider.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	client := administrate.NewClient(srv.Client(), srv.URL, "test-token")

	events := services.NewEventResolver(client)
	contacts := services.NewContactResolver(client, defaultAccountID)
	registration := services.NewRegistrationService(events, contacts, client, nil, logger)
	publisher := services.NewPublisherService(events, client, "cf-key-1")
	diagnostics := services.NewDiagnosticsService(client, srv.URL, "test-token")

	mux := NewRouter(
		controllers.NewRegistrationController(logger, registration),
		controllers.NewEventController(logger, events),
		controllers.NewPublishController(logger, publisher, "https://x.test"),
		controllers.NewDiagController(logger, diagnostics),
	)
	return middleware.CORS([]string{"*"}, middleware.LoggingMiddleware(logger, mux))
}

const workshopEdge = `{"node":{"id":"Q291cnNlOjE=","code":"WS-101","legacyId":383,"title":"Workshop"}}`

func TestRelay_RegisterSuccess(t *testing.T) {
	provider := &stubProvider{
		eventEdges:   workshopEdge,
		contactEdges: `{"node":{"id":"c1","emailAddress":"ada@example.test"}}`,
		registerBody: `{"event":{"registerContacts":{"event":{"id":"Q291cnNlOjE="},"errors":[]}}}`,
	}
	relay := newRelay(t, provider, "")

	body := `{"identifierType":"code","identifierValue":"WS-101","learner":{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.test"}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	relay.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Success   bool   `json:"success"`
		EventID   string `json:"eventId"`
		ContactID string `json:"contactId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Q291cnNlOjE=", resp.EventID)
	assert.Equal(t, "c1", resp.ContactID)

	require.Len(t, provider.requests, 3, "event lookup, contact lookup, registration")
	assert.Contains(t, provider.requests[0], "EventByCode")
	assert.Contains(t, provider.requests[1], "ContactByEmail")
	assert.Contains(t, provider.requests[2], "RegisterContacts")
}

func TestRelay_RegisterUnknownEvent404(t *testing.T) {
	provider := &stubProvider{eventEdges: ``}
	relay := newRelay(t, provider, "acc1")

	body := `{"identifierValue":"missing","learner":{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.test"}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	relay.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event not found")
	assert.Len(t, provider.requests, 1, "stops after the event lookup")
}

func TestRelay_RegisterAutoCreateDisabled400(t *testing.T) {
	provider := &stubProvider{eventEdges: workshopEdge, contactEdges: ``}
	relay := newRelay(t, provider, "")

	body := `{"identifierValue":"WS-101","learner":{"firstName":"Ada","lastName":"Lovelace","email":"new@example.test"}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	relay.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "auto-create is disabled")
}

func TestRelay_EventLookup(t *testing.T) {
	provider := &stubProvider{eventEdges: workshopEdge}
	relay := newRelay(t, provider, "")

	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/event?legacyId=383", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var ev struct {
		ID       string `json:"id"`
		LegacyID string `json:"legacyId"`
		Title    string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, "Q291cnNlOjE=", ev.ID)
	assert.Equal(t, "383", ev.LegacyID, "numeric legacy id serialized as a string")
	assert.Equal(t, "Workshop", ev.Title)
}

func TestRelay_PublishWebhook(t *testing.T) {
	provider := &stubProvider{eventEdges: workshopEdge}
	relay := newRelay(t, provider, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event-url", strings.NewReader(`{"payload":{"event":{"id":"Q291cnNlOjE="}}}`))
	relay.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Status    string `json:"status"`
		PublicURL string `json:"publicUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "https://x.test/?legacyId=383", resp.PublicURL)
}

func TestRelay_DiagNeverLeaksToken(t *testing.T) {
	provider := &stubProvider{}
	relay := newRelay(t, provider, "")

	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diag", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "test-token")
	assert.Contains(t, rec.Body.String(), `"tokenPresent":true`)
	assert.Contains(t, rec.Body.String(), `"tokenLength":10`)
}

func TestRelay_Preflight(t *testing.T) {
	relay := newRelay(t, &stubProvider{}, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/register", nil)
	req.Header.Set("Origin", "https://site.test")
	relay.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRelay_Healthz(t *testing.T) {
	relay := newRelay(t, &stubProvider{}, "")

	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
