package administrate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"regrelay/internal/domain"
)

// Client issues authenticated GraphQL requests against the Administrate API.
// It performs no retries and imposes no timeout beyond the injected client's.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient returns a Client for the given endpoint and bearer token.
func NewClient(httpClient *http.Client, endpoint, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, endpoint: endpoint, token: token}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// Execute sends one GraphQL request and returns the raw data value.
// Transport failures and non-JSON bodies surface as *domain.TransportError.
// A response carrying a top-level errors array surfaces as
// *domain.ProviderError before any field mapping is attempted; callers never
// see a partial success.
func (c *Client) Execute(ctx context.Context, document string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(gqlRequest{Query: document, Variables: variables})
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	var out gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)}
	}
	if len(out.Errors) > 0 && string(out.Errors) != "null" {
		return nil, &domain.ProviderError{Errors: out.Errors}
	}
	return out.Data, nil
}

// Ping sends one GraphQL request and reports the raw wire outcome. Failures
// are captured in the result instead of returned, so diagnostics can show
// exactly what the provider said.
func (c *Client) Ping(ctx context.Context, document string, variables map[string]any) domain.PingResult {
	body, err := json.Marshal(gqlRequest{Query: document, Variables: variables})
	if err != nil {
		return pingFailure(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return pingFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pingFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(raw) {
		raw = []byte("{}")
	}
	return domain.PingResult{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		JSON:   json.RawMessage(raw),
	}
}

func pingFailure(err error) domain.PingResult {
	msg, _ := json.Marshal(map[string]string{"error": err.Error()})
	return domain.PingResult{OK: false, Status: 0, JSON: msg}
}
