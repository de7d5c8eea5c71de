package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"flight-search/skyport/internal/airports"
	"flight-search/skyport/internal/common"
	"flight-search/skyport/internal/logging"
	"flight-search/skyport/internal/models/dtos"
	"flight-search/skyport/internal/query"
	"flight-search/skyport/internal/selection"
	"flight-search/skyport/internal/services"
)

// SearchHandler handles POST /search
// Body is a FlightSearchQuery; the success response is the bare result array
// the widget consumes.
func SearchHandler(searchSvc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var q dtos.FlightSearchQuery
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		results, err := searchSvc.Search(r.Context(), q)
		if err != nil {
			if errors.Is(err, query.ErrSelectionIncomplete) || errors.Is(err, query.ErrDateRangeIncomplete) {
				common.RespondError(w, initTime, err, "", http.StatusBadRequest)
				return
			}
			logging.Error("Search failed", "error", err.Error())
			common.RespondError(w, initTime, nil, "Flight search failed", http.StatusBadGateway)
			return
		}

		if results == nil {
			results = []dtos.FlightSearchResult{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			logging.Error("JSON encode failed", "error", err.Error())
		}
	}
}

// SuggestHandler handles GET /api/v1/airports/suggest?q=...&exclude=JFK,BOS
// It returns the ranked suggestions for hosts that want server-side matching.
func SuggestHandler(index *airports.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query().Get("q")
		exclude := selection.New()
		for _, code := range strings.Split(r.URL.Query().Get("exclude"), ",") {
			exclude.Add(code)
		}

		items := index.Search(q, exclude)
		if items == nil {
			items = []airports.Airport{}
		}

		common.RespondSuccess(w, initTime, "", map[string]any{
			"query":    q,
			"airports": items,
		})
	}
}
