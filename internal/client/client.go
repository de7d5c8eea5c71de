// Package client is the submit-side search client: it posts a built query to
// the search backend and enforces the one-outstanding-submission rule the
// host's submit control relies on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"flight-search/skyport/internal/models/dtos"
)

// ErrSearchInFlight is returned when a submission starts while another is
// still outstanding. The caller should keep its submit control disabled and
// not retry; the single outstanding response always applies.
var ErrSearchInFlight = errors.New("a search is already in flight")

// Client posts flight search queries to the backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu       sync.Mutex
	inFlight bool
}

// New creates a client for the given backend base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Search POSTs the query to {base}/search and decodes the result array. At
// most one search may be outstanding; concurrent calls get
// ErrSearchInFlight.
func (c *Client) Search(ctx context.Context, q dtos.FlightSearchQuery) ([]dtos.FlightSearchResult, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSearchInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(q); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/search", buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request: unexpected status %d", resp.StatusCode)
	}

	var results []dtos.FlightSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return results, nil
}
