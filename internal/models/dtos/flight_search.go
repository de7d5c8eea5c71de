package dtos

import "time"

// FlightSearchQuery is the outbound search request body for POST /search.
// Departure dates are ISO calendar dates (YYYY-MM-DD), contiguous and
// ascending.
type FlightSearchQuery struct {
	Origins        []string `json:"origins"`
	Destinations   []string `json:"destinations"`
	DepartureDates []string `json:"departure_dates"`
}

// FlightSegment is one hop of an itinerary.
type FlightSegment struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// FlightSearchResult is one priced itinerary. Segments are ordered: the first
// segment's origin and the last segment's destination are the overall
// endpoints, and every destination except the last is an intermediate stop.
type FlightSearchResult struct {
	Airline  string          `json:"airline"`
	Date     string          `json:"date"`
	Price    float64         `json:"price"`
	Segments []FlightSegment `json:"segments"`
}
