package api

import (
	"encoding/json"
	"net/http"
	"time"

	"flight-search/skyport/internal/airports"
)

// HealthCheckHandler handles GET /healthCheck
//
// Matching is reported degraded when the airport index failed to load; the
// service stays up either way.
func HealthCheckHandler(index *airports.Index, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matching := "ok"
		if index.Len() == 0 {
			matching = "degraded"
		}

		resp := map[string]any{
			"status": "ok",
			"uptime": time.Since(upSince).Round(time.Second).String(),
			"services": map[string]any{
				"airport_index": map[string]any{
					"status":   matching,
					"airports": index.Len(),
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
