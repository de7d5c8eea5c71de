// Package config centralizes environment-driven configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults point at the public mwgg/Airports dataset and the Amadeus test
// environment.
const (
	DefaultAirportsURL    = "https://raw.githubusercontent.com/mwgg/Airports/refs/heads/master/airports.json"
	DefaultAmadeusBaseURL = "https://test.api.amadeus.com"
)

type Config struct {
	AppEnv string
	Port   string

	AirportsURL string

	AmadeusBaseURL      string
	AmadeusClientID     string
	AmadeusClientSecret string

	CacheBackend   string // "memory" or "redis"
	RedisAddr      string
	RedisPassword  string
	FlightCacheTTL time.Duration

	SearchMaxResults int
	ProviderRPS      float64
}

// Load reads configuration from the environment, with defaults suitable for
// local development.
func Load() Config {
	return Config{
		AppEnv:              getenv("APP_ENV", "development"),
		Port:                getenv("PORT", "8080"),
		AirportsURL:         getenv("AIRPORTS_URL", DefaultAirportsURL),
		AmadeusBaseURL:      getenv("AMADEUS_BASE_URL", DefaultAmadeusBaseURL),
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		CacheBackend:        getenv("CACHE_BACKEND", "memory"),
		RedisAddr:           getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		FlightCacheTTL:      time.Duration(getenvInt("FLIGHT_CACHE_TTL_SECONDS", 86400)) * time.Second,
		SearchMaxResults:    getenvInt("SEARCH_MAX_RESULTS", 6),
		ProviderRPS:         getenvFloat("PROVIDER_RPS", 5),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
