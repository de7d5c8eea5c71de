// Package results turns flight search results into display rows.
package results

import (
	"fmt"
	"math"
	"strings"
	"time"

	"flight-search/skyport/internal/models/dtos"
)

// NoFlightsMessage is the distinct empty state rendered instead of an empty
// list when a search returns nothing.
const NoFlightsMessage = "No flights found."

// Row is one itinerary ready for display. Clock times are in the viewer's
// time zone; the duration is whole hours and minutes; the price is a rounded
// integer amount.
type Row struct {
	Airline    string `json:"airline"`
	Date       string `json:"date"`
	Origin     string `json:"origin"`
	DepartTime string `json:"depart_time"`
	Dest       string `json:"dest"`
	ArriveTime string `json:"arrive_time"`
	Duration   string `json:"duration"`
	StopsLabel string `json:"stops_label"`
	Price      string `json:"price"`
}

// Format renders each result as a Row, using loc for clock times. A nil loc
// falls back to the local time zone.
func Format(flights []dtos.FlightSearchResult, loc *time.Location) []Row {
	if loc == nil {
		loc = time.Local
	}

	rows := make([]Row, 0, len(flights))
	for _, f := range flights {
		if len(f.Segments) == 0 {
			continue
		}
		first := f.Segments[0]
		last := f.Segments[len(f.Segments)-1]

		rows = append(rows, Row{
			Airline:    f.Airline,
			Date:       formatDate(f.Date),
			Origin:     first.Origin,
			DepartTime: first.StartTime.In(loc).Format("15:04"),
			Dest:       last.Destination,
			ArriveTime: last.EndTime.In(loc).Format("15:04"),
			Duration:   Duration(first.StartTime, last.EndTime),
			StopsLabel: StopsLabel(f.Segments),
			Price:      fmt.Sprintf("$%.0f", math.Round(f.Price)),
		})
	}
	return rows
}

// Duration renders the floor of end-start as "{h}h {m}m".
func Duration(start, end time.Time) string {
	total := int(end.Sub(start).Minutes())
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// StopsLabel is "Direct" for a single segment, otherwise "{n} stop{s}"
// followed by the intermediate airports in parentheses. The stops are every
// segment's destination except the last.
func StopsLabel(segments []dtos.FlightSegment) string {
	stops := len(segments) - 1
	if stops <= 0 {
		return "Direct"
	}

	codes := make([]string, 0, stops)
	for _, s := range segments[:len(segments)-1] {
		codes = append(codes, s.Destination)
	}

	label := fmt.Sprintf("%d stop", stops)
	if stops > 1 {
		label += "s"
	}
	return fmt.Sprintf("%s (%s)", label, strings.Join(codes, ", "))
}

func formatDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("Jan 2")
}
