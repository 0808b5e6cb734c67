package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regrelay/internal/domain"
)

// fakeExecutor replays canned responses in order and records every call.
type fakeExecutor struct {
	responses []fakeResponse
	calls     []executorCall
}

type executorCall struct {
	document  string
	variables map[string]any
}

type fakeResponse struct {
	data json.RawMessage
	err  error
}

func (f *fakeExecutor) Execute(ctx context.Context, document string, variables map[string]any) (json.RawMessage, error) {
	f.calls = append(f.calls, executorCall{document: document, variables: variables})
	if len(f.responses) == 0 {
		return json.RawMessage(`{}`), nil
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r.data, r.err
}

func eventsPayload(nodes ...string) json.RawMessage {
	return json.RawMessage(`{"events":{"edges":[` + edgeList(nodes) + `]}}`)
}

func edgeList(nodes []string) string {
	edges := make([]string, len(nodes))
	for i, n := range nodes {
		edges[i] = `{"node":` + n + `}`
	}
	return strings.Join(edges, ",")
}

func TestEventResolver_ByCode_FirstEdgeMapped(t *testing.T) {
	gql := &fakeExecutor{responses: []fakeResponse{
		{data: eventsPayload(`{"id":"Q291cnNlOjE=","code":"WS-101","legacyId":383,"title":"Workshop"}`)},
	}}
	resolver := NewEventResolver(gql)

	ev, err := resolver.Resolve(context.Background(), domain.ByCode("WS-101"))
	require.NoError(t, err)
	assert.Equal(t, "Q291cnNlOjE=", ev.ID)
	assert.Equal(t, "WS-101", ev.Code)
	assert.Equal(t, domain.NumericString("383"), ev.LegacyID)
	assert.Equal(t, "Workshop", ev.Title)

	require.Len(t, gql.calls, 1, "exactly one provider query")
	assert.Contains(t, gql.calls[0].document, "EventByCode")
	assert.Equal(t, map[string]any{"code": "WS-101"}, gql.calls[0].variables)
}

func TestEventResolver_ByLegacyID_ValuePassedAsString(t *testing.T) {
	gql := &fakeExecutor{responses: []fakeResponse{
		{data: eventsPayload(`{"id":"ev1","legacyId":"383"}`)},
	}}
	resolver := NewEventResolver(gql)

	ev, err := resolver.Resolve(context.Background(), domain.ByLegacyID("383"))
	require.NoError(t, err)
	assert.Equal(t, "ev1", ev.ID)

	require.Len(t, gql.calls, 1)
	assert.Contains(t, gql.calls[0].document, "EventByLegacyID")
	assert.Contains(t, gql.calls[0].document, "$legacyId: String!")
	assert.Equal(t, map[string]any{"legacyId": "383"}, gql.calls[0].variables)
}

func TestEventResolver_ByID_OneQuery(t *testing.T) {
	gql := &fakeExecutor{responses: []fakeResponse{
		{data: eventsPayload(`{"id":"Q291cnNlOjE="}`)},
	}}
	resolver := NewEventResolver(gql)

	ev, err := resolver.Resolve(context.Background(), domain.ByID("Q291cnNlOjE="))
	require.NoError(t, err)
	assert.Equal(t, "Q291cnNlOjE=", ev.ID)
	require.Len(t, gql.calls, 1)
	assert.Contains(t, gql.calls[0].document, "EventByID")
}

func TestEventResolver_ZeroEdges_NotFound(t *testing.T) {
	gql := &fakeExecutor{responses: []fakeResponse{{data: eventsPayload()}}}
	resolver := NewEventResolver(gql)

	_, err := resolver.Resolve(context.Background(), domain.ByCode("missing"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var pErr *domain.ProviderError
	assert.False(t, errors.As(err, &pErr), "zero edges is not a provider error")
}

func TestEventResolver_MultipleEdges_FirstWins(t *testing.T) {
	gql := &fakeExecutor{responses: []fakeResponse{
		{data: eventsPayload(`{"id":"first"}`, `{"id":"second"}`)},
	}}
	resolver := NewEventResolver(gql)

	ev, err := resolver.Resolve(context.Background(), domain.ByCode("dup"))
	require.NoError(t, err)
	assert.Equal(t, "first", ev.ID)
}

func TestEventResolver_ExecutorErrorPropagates(t *testing.T) {
	pErr := &domain.ProviderError{Errors: json.RawMessage(`[{"message":"denied"}]`)}
	gql := &fakeExecutor{responses: []fakeResponse{{err: pErr}}}
	resolver := NewEventResolver(gql)

	_, err := resolver.Resolve(context.Background(), domain.ByCode("WS-101"))
	var got *domain.ProviderError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, pErr.Errors, got.Errors)
}

func TestEventResolver_EmptyValue_ValidationError(t *testing.T) {
	gql := &fakeExecutor{}
	resolver := NewEventResolver(gql)

	_, err := resolver.Resolve(context.Background(), domain.ByCode("  "))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, gql.calls, "no network call on invalid input")
}
