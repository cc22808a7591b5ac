// Package openf1 fetches historical Formula 1 data from the OpenF1
// REST API (https://openf1.org/). Every endpoint returns a JSON array
// of flat objects, filtered by URL query parameters.
package openf1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Record is one row returned by the API. Fields vary by endpoint and
// may be missing or null; callers must check presence.
type Record map[string]any

// Client issues read-only requests against one OpenF1 deployment.
// It holds only fixed configuration and is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New creates a Client for baseURL. timeout bounds each request;
// zero or negative selects the 30s default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
	}
}

// Fetch performs one GET to {base}/{endpoint} with params as the query
// string and decodes the JSON array body. Each call uses a fresh
// http.Client whose lifetime is the call itself; nothing is cached or
// retried. Failures come back as a *FetchError carrying the endpoint,
// the failure kind, and the underlying cause.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrTransport, Err: err}
	}
	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	httpClient := &http.Client{Timeout: c.timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrStatus, Status: resp.StatusCode}
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: ErrDecode, Err: err}
	}

	slog.Debug("openf1 fetch", "endpoint", endpoint, "params", len(params), "records", len(records))
	return records, nil
}
