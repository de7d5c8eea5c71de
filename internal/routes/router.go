package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"flight-search/skyport/internal/airports"
	"flight-search/skyport/internal/api"
	"flight-search/skyport/internal/logging"
	"flight-search/skyport/internal/metrics"
	"flight-search/skyport/internal/middleware"
	"flight-search/skyport/internal/services"
)

// RegisterRoutes assembles the chi router with global middleware and all
// HTTP endpoints. The /metrics endpoint lives on the outer mux in main.
func RegisterRoutes(upSince time.Time, index *airports.Index, searchSvc *services.SearchService, metricsReg *metrics.MetricsRegistry) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(index, upSince))

	// search submission, consumed by the widget
	r.Post("/search", api.SearchHandler(searchSvc))

	// server-side suggestion matching
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/airports/suggest", api.SuggestHandler(index))
	})

	return r
}
