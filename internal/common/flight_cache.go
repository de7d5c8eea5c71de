package common

import (
	"encoding/json"
	"fmt"
	"time"

	"flight-search/skyport/internal/models/dtos"
)

// DefaultFlightTTL is how long a route/date's offers stay fresh.
const DefaultFlightTTL = 24 * time.Hour

// FlightCache caches provider results per (origin, destination, date) tuple
// on top of a CacheInterface backend.
type FlightCache struct {
	cache CacheInterface
	ttl   time.Duration
}

func NewFlightCache(backend CacheInterface, ttl time.Duration) *FlightCache {
	if ttl <= 0 {
		ttl = DefaultFlightTTL
	}
	return &FlightCache{cache: backend, ttl: ttl}
}

func flightKey(origin, dest, date string) string {
	return fmt.Sprintf("%s:%s:%s", origin, dest, date)
}

// Get returns the cached offers for a tuple, if fresh. Redis-backed caches
// hand values back as JSON bytes, so both representations are accepted.
func (fc *FlightCache) Get(origin, dest, date string) ([]dtos.FlightSearchResult, bool) {
	v, ok := fc.cache.Get(flightKey(origin, dest, date))
	if !ok {
		return nil, false
	}

	switch val := v.(type) {
	case []dtos.FlightSearchResult:
		return val, true
	case []byte:
		var out []dtos.FlightSearchResult
		if err := json.Unmarshal(val, &out); err != nil {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

// Set stores the offers for a tuple with the cache TTL.
func (fc *FlightCache) Set(origin, dest, date string, flights []dtos.FlightSearchResult) {
	fc.cache.Set(flightKey(origin, dest, date), flights, fc.ttl)
}
