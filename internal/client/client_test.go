package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-search/skyport/internal/models/dtos"
)

func TestSearch_PostsQueryAndDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)

		var q dtos.FlightSearchQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, []string{"JFK"}, q.Origins)
		assert.Equal(t, []string{"LAX"}, q.Destinations)

		json.NewEncoder(w).Encode([]dtos.FlightSearchResult{{Airline: "AA", Price: 250}})
	}))
	defer server.Close()

	c := New(server.URL)
	results, err := c.Search(context.Background(), dtos.FlightSearchQuery{
		Origins:        []string{"JFK"},
		Destinations:   []string{"LAX"},
		DepartureDates: []string{"2024-01-01"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "AA", results[0].Airline)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Search(context.Background(), dtos.FlightSearchQuery{})
	assert.Error(t, err)
}

func TestSearch_SecondConcurrentSubmissionRefused(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			close(entered)
			<-release
		})
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(server.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Search(context.Background(), dtos.FlightSearchQuery{})
		assert.NoError(t, err)
	}()

	// Once the first request has reached the server, the in-flight slot is
	// guaranteed to be claimed.
	<-entered
	_, second := c.Search(context.Background(), dtos.FlightSearchQuery{})
	assert.ErrorIs(t, second, ErrSearchInFlight)

	close(release)
	wg.Wait()

	// After completion a new submission is allowed again.
	_, err := c.Search(context.Background(), dtos.FlightSearchQuery{})
	assert.NoError(t, err)
}
