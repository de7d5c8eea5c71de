package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"flight-search/skyport/internal/logging"
)

// Loader fetches the raw airport dataset once at startup. A failed load is
// not fatal: the caller keeps an empty index and matching degrades to "no
// suggestions".
type Loader struct {
	URL    string
	Client *http.Client
}

// NewLoader creates a loader for the given dataset URL.
func NewLoader(url string) *Loader {
	return &Loader{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load performs the single fetch-then-parse and builds the index.
func (l *Loader) Load(ctx context.Context) (*Index, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build airports request: %w", err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch airports: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch airports: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read airports payload: %w", err)
	}

	ix := BuildIndex(DecodePayload(body))
	logging.Info("Airport index built",
		"source", l.URL,
		"airports", ix.Len(),
	)
	return ix, nil
}

// DecodePayload extracts the raw record list from the dataset payload. The
// payload may be a bare array, or an object carrying the array under an
// "airports" or "data" key; any other shape yields no records.
func DecodePayload(data []byte) []map[string]any {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	switch payload := v.(type) {
	case []any:
		return toRecords(payload)
	case map[string]any:
		for _, key := range []string{"airports", "data"} {
			if arr, ok := payload[key].([]any); ok {
				return toRecords(arr)
			}
		}
	}
	return nil
}

func toRecords(arr []any) []map[string]any {
	records := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
