package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regrelay/internal/domain"
)

type fakeResolver struct {
	event *domain.Event
	err   error
	ident domain.EventIdentifier
}

func (f *fakeResolver) Resolve(ctx context.Context, ident domain.EventIdentifier) (*domain.Event, error) {
	f.ident = ident
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestEventLookup_NoParams(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeResolver{})

	rec := httptest.NewRecorder()
	ctrl.Lookup(rec, httptest.NewRequest(http.MethodGet, "/api/event", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body["error"], "?code=")
}

func TestEventLookup_ByCode(t *testing.T) {
	resolver := &fakeResolver{event: &domain.Event{ID: "ev1", Code: "WS-101", LegacyID: "383", Title: "Workshop"}}
	ctrl := NewEventController(testLogger(), resolver)

	rec := httptest.NewRecorder()
	ctrl.Lookup(rec, httptest.NewRequest(http.MethodGet, "/api/event?code=WS-101", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, domain.ByCode("WS-101"), resolver.ident)

	var ev domain.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, "ev1", ev.ID)
	assert.Equal(t, domain.NumericString("383"), ev.LegacyID)
}

func TestEventLookup_PrecedenceIDOverLegacyOverCode(t *testing.T) {
	resolver := &fakeResolver{event: &domain.Event{ID: "ev1"}}
	ctrl := NewEventController(testLogger(), resolver)

	rec := httptest.NewRecorder()
	ctrl.Lookup(rec, httptest.NewRequest(http.MethodGet, "/api/event?code=abc&legacyId=383&id=ev1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ByID("ev1"), resolver.ident)
}

func TestEventLookup_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeResolver{err: domain.ErrNotFound})

	rec := httptest.NewRecorder()
	ctrl.Lookup(rec, httptest.NewRequest(http.MethodGet, "/api/event?code=missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Event not found", body["error"])
}

func TestEventLookup_ProviderError(t *testing.T) {
	pErr := &domain.ProviderError{Errors: json.RawMessage(`[{"message":"denied"}]`)}
	ctrl := NewEventController(testLogger(), &fakeResolver{err: pErr})

	rec := httptest.NewRecorder()
	ctrl.Lookup(rec, httptest.NewRequest(http.MethodGet, "/api/event?code=WS-101", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	require.Contains(t, body, "details")
	detail, err := json.Marshal(body["details"])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"message":"denied"}]`, string(detail))
}
