package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"flight-search/skyport/internal/airports"
	"flight-search/skyport/internal/common"
	"flight-search/skyport/internal/config"
	"flight-search/skyport/internal/logging"
	"flight-search/skyport/internal/metrics"
	"flight-search/skyport/internal/routes"
	"flight-search/skyport/internal/services"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Skyport starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry()

	// Load the airport index once. A failed load is not fatal: the service
	// runs with an empty index and matching degrades to no suggestions.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	index, err := airports.NewLoader(cfg.AirportsURL).Load(ctx)
	cancel()
	if err != nil {
		logging.Error("Airport index load failed, matching disabled", "error", err.Error())
		index = airports.BuildIndex(nil)
	}
	metricsReg.AirportsIndexed.Set(float64(index.Len()))

	// Cache backend: in-memory by default, Redis when configured.
	var backend common.CacheInterface
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logging.Error("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			backend = common.NewCacheService(cfg.FlightCacheTTL, time.Hour)
		} else {
			backend = redisCache
		}
	default:
		backend = common.NewCacheService(cfg.FlightCacheTTL, time.Hour)
	}
	defer backend.Close()

	flightCache := common.NewFlightCache(backend, cfg.FlightCacheTTL)
	provider := common.NewAmadeusService(cfg.AmadeusBaseURL, cfg.AmadeusClientID, cfg.AmadeusClientSecret)
	limiter := rate.NewLimiter(rate.Limit(cfg.ProviderRPS), int(cfg.ProviderRPS)+1)
	searchSvc := services.NewSearchService(provider, flightCache, limiter, metricsReg, cfg.SearchMaxResults)

	upSince := time.Now()
	router := routes.RegisterRoutes(upSince, index, searchSvc, metricsReg)

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
