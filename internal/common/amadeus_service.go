package common

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"flight-search/skyport/internal/models/dtos"
)

// FareProvider is the upstream source of priced itineraries for one
// (origin, destination, date) tuple.
type FareProvider interface {
	SearchOffers(ctx context.Context, origin, dest, date string) ([]dtos.FlightSearchResult, error)
}

// AmadeusService calls the Amadeus flight-offers API. The OAuth token is
// fetched lazily with client credentials and shared across calls; the mutex
// keeps concurrent searches from each requesting their own token.
type AmadeusService struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Client       *http.Client

	tokenMu sync.Mutex
	token   string
}

var _ FareProvider = (*AmadeusService)(nil)

// NewAmadeusService creates a provider client for the given API base URL.
func NewAmadeusService(baseURL, clientID, clientSecret string) *AmadeusService {
	return &AmadeusService{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (svc *AmadeusService) ensureToken(ctx context.Context) (string, error) {
	svc.tokenMu.Lock()
	defer svc.tokenMu.Unlock()

	if svc.token != "" {
		return svc.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {svc.ClientID},
		"client_secret": {svc.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		svc.BaseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := svc.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch provider token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch provider token: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode provider token: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("provider token response had no access_token")
	}

	svc.token = body.AccessToken
	return svc.token, nil
}

// SearchOffers fetches flight offers for one tuple and flattens each offer's
// first itinerary into a FlightSearchResult.
func (svc *AmadeusService) SearchOffers(ctx context.Context, origin, dest, date string) ([]dtos.FlightSearchResult, error) {
	token, err := svc.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"originLocationCode":      {origin},
		"destinationLocationCode": {dest},
		"departureDate":           {date},
		"adults":                  {"1"},
		"currencyCode":            {"USD"},
		"max":                     {"50"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		svc.BaseURL+"/v2/shopping/flight-offers?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := svc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch flight offers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch flight offers: unexpected status %d", resp.StatusCode)
	}

	var payload amadeusOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode flight offers: %w", err)
	}

	return flattenOffers(payload.Data), nil
}

type amadeusOffersResponse struct {
	Data []amadeusOffer `json:"data"`
}

type amadeusOffer struct {
	Itineraries []struct {
		Segments []amadeusSegment `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

type amadeusSegment struct {
	Departure   amadeusPoint `json:"departure"`
	Arrival     amadeusPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
}

type amadeusPoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

func flattenOffers(offers []amadeusOffer) []dtos.FlightSearchResult {
	out := make([]dtos.FlightSearchResult, 0, len(offers))

	for _, offer := range offers {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		segs := offer.Itineraries[0].Segments

		segments := make([]dtos.FlightSegment, 0, len(segs))
		for _, s := range segs {
			segments = append(segments, dtos.FlightSegment{
				Origin:      s.Departure.IATACode,
				Destination: s.Arrival.IATACode,
				StartTime:   parseProviderTime(s.Departure.At),
				EndTime:     parseProviderTime(s.Arrival.At),
			})
		}

		airline := segs[0].CarrierCode
		if len(offer.ValidatingAirlineCodes) > 0 {
			airline = offer.ValidatingAirlineCodes[0]
		}

		price, _ := strconv.ParseFloat(offer.Price.Total, 64)

		out = append(out, dtos.FlightSearchResult{
			Airline:  airline,
			Date:     segments[0].StartTime.Format("2006-01-02"),
			Price:    price,
			Segments: segments,
		})
	}

	return out
}

// parseProviderTime accepts both zoned timestamps and the naive local
// datetimes Amadeus returns for segment times.
func parseProviderTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t
}
