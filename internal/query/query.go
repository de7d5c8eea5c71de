// Package query expands date ranges and assembles the outbound flight search
// request from the current selections.
package query

import (
	"errors"
	"time"

	"flight-search/skyport/internal/models/dtos"
	"flight-search/skyport/internal/selection"
)

const dateLayout = "2006-01-02"

// Validation failures surfaced inline in the status area. Submission is
// blocked while either holds; no request is sent.
var (
	ErrSelectionIncomplete = errors.New("Please add at least one departure and arrival airport.")
	ErrDateRangeIncomplete = errors.New("Please select both a start and end date.")
)

// ExpandDateRange returns every calendar date from start to end inclusive,
// ascending, as YYYY-MM-DD strings. It fails closed: an unparsable endpoint
// or start > end yields nil. Stepping is per calendar day, not per 24 hours,
// so the expansion stays correct across clock changes.
func ExpandDateRange(start, end string) []string {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil
	}
	if from.After(to) {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// Build assembles the outbound query from the two selection sets and the
// date inputs. Validation order: both selections non-empty, then a
// non-empty expanded date range.
func Build(origins, destinations *selection.Set, start, end string) (dtos.FlightSearchQuery, error) {
	if origins.Len() == 0 || destinations.Len() == 0 {
		return dtos.FlightSearchQuery{}, ErrSelectionIncomplete
	}

	dates := ExpandDateRange(start, end)
	if len(dates) == 0 {
		return dtos.FlightSearchQuery{}, ErrDateRangeIncomplete
	}

	return dtos.FlightSearchQuery{
		Origins:        origins.Codes(),
		Destinations:   destinations.Codes(),
		DepartureDates: dates,
	}, nil
}
