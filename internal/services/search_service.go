package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"flight-search/skyport/internal/common"
	"flight-search/skyport/internal/logging"
	"flight-search/skyport/internal/metrics"
	"flight-search/skyport/internal/models/dtos"
	"flight-search/skyport/internal/query"
)

// DefaultMaxResults caps how many offers a search returns after the
// price sort.
const DefaultMaxResults = 6

const defaultConcurrency = 4

// SearchService expands a search query into (origin, destination, date)
// tuples, serves each from the flight cache when possible, and fans the
// misses out to the fare provider.
type SearchService struct {
	provider    common.FareProvider
	cache       *common.FlightCache
	limiter     *rate.Limiter
	metrics     *metrics.MetricsRegistry
	maxResults  int
	concurrency int
}

// NewSearchService wires a search service. limiter and reg may be nil.
func NewSearchService(provider common.FareProvider, cache *common.FlightCache, limiter *rate.Limiter, reg *metrics.MetricsRegistry, maxResults int) *SearchService {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &SearchService{
		provider:    provider,
		cache:       cache,
		limiter:     limiter,
		metrics:     reg,
		maxResults:  maxResults,
		concurrency: defaultConcurrency,
	}
}

type tuple struct {
	origin, dest, date string
}

// Search validates q, gathers offers for every origin×destination×date
// combination, and returns them sorted ascending by price, truncated to the
// configured maximum. A provider failure on any uncached tuple fails the
// whole search.
func (svc *SearchService) Search(ctx context.Context, q dtos.FlightSearchQuery) ([]dtos.FlightSearchResult, error) {
	if len(q.Origins) == 0 || len(q.Destinations) == 0 {
		return nil, query.ErrSelectionIncomplete
	}
	if len(q.DepartureDates) == 0 {
		return nil, query.ErrDateRangeIncomplete
	}

	if svc.metrics != nil {
		svc.metrics.SearchesTotal.Inc()
	}

	var (
		mu      sync.Mutex
		results []dtos.FlightSearchResult
		misses  []tuple
	)

	for _, t := range expandTuples(q) {
		if cached, ok := svc.cache.Get(t.origin, t.dest, t.date); ok {
			if svc.metrics != nil {
				svc.metrics.CacheHitsTotal.WithLabelValues("flights").Inc()
			}
			results = append(results, cached...)
			continue
		}
		if svc.metrics != nil {
			svc.metrics.CacheMissesTotal.WithLabelValues("flights").Inc()
		}
		misses = append(misses, t)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(svc.concurrency)

	for _, t := range misses {
		t := t
		g.Go(func() error {
			if svc.limiter != nil {
				if err := svc.limiter.Wait(gctx); err != nil {
					return err
				}
			}

			start := time.Now()
			offers, err := svc.provider.SearchOffers(gctx, t.origin, t.dest, t.date)
			if svc.metrics != nil {
				svc.metrics.ProviderCallDuration.WithLabelValues("flight_offers").
					Observe(time.Since(start).Seconds())
			}
			if err != nil {
				logging.Error("Provider search failed",
					"origin", t.origin,
					"dest", t.dest,
					"date", t.date,
					"error", err.Error(),
				)
				return err
			}

			svc.cache.Set(t.origin, t.dest, t.date, offers)

			mu.Lock()
			results = append(results, offers...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})
	if len(results) > svc.maxResults {
		results = results[:svc.maxResults]
	}

	if svc.metrics != nil {
		svc.metrics.OffersReturnedTotal.Add(float64(len(results)))
	}
	return results, nil
}

func expandTuples(q dtos.FlightSearchQuery) []tuple {
	var out []tuple
	for _, o := range q.Origins {
		for _, d := range q.Destinations {
			for _, dt := range q.DepartureDates {
				out = append(out, tuple{
					origin: strings.ToUpper(strings.TrimSpace(o)),
					dest:   strings.ToUpper(strings.TrimSpace(d)),
					date:   strings.TrimSpace(dt),
				})
			}
		}
	}
	return out
}
