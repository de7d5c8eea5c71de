package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-search/skyport/internal/selection"
)

func TestExpandDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"single day", "2024-01-01", "2024-01-01", []string{"2024-01-01"}},
		{"three days", "2024-01-01", "2024-01-03", []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{"reversed range", "2024-01-03", "2024-01-01", nil},
		{"unparsable start", "tomorrow", "2024-01-01", nil},
		{"unparsable end", "2024-01-01", "", nil},
		{"month boundary", "2024-02-28", "2024-03-01", []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandDateRange(tt.start, tt.end))
		})
	}
}

func TestExpandDateRange_CrossesDSTChange(t *testing.T) {
	// One entry per calendar day even across the US spring-forward date.
	got := ExpandDateRange("2024-03-09", "2024-03-11")
	assert.Equal(t, []string{"2024-03-09", "2024-03-10", "2024-03-11"}, got)
}

func TestBuild_SelectionIncomplete(t *testing.T) {
	origins := selection.New()
	destinations := selection.New()
	destinations.Add("LAX")

	_, err := Build(origins, destinations, "2024-01-01", "2024-01-02")
	require.ErrorIs(t, err, ErrSelectionIncomplete)
	assert.Equal(t, "Please add at least one departure and arrival airport.", err.Error())

	origins.Add("JFK")
	empty := selection.New()
	_, err = Build(origins, empty, "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestBuild_DateRangeIncomplete(t *testing.T) {
	origins := selection.New()
	origins.Add("JFK")
	destinations := selection.New()
	destinations.Add("LAX")

	_, err := Build(origins, destinations, "", "")
	require.ErrorIs(t, err, ErrDateRangeIncomplete)
	assert.Equal(t, "Please select both a start and end date.", err.Error())

	_, err = Build(origins, destinations, "2024-01-05", "2024-01-01")
	assert.ErrorIs(t, err, ErrDateRangeIncomplete)
}

func TestBuild_ValidationOrder(t *testing.T) {
	// Selection completeness is checked before the date range.
	_, err := Build(selection.New(), selection.New(), "", "")
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestBuild_AssemblesQuery(t *testing.T) {
	origins := selection.New()
	origins.Add("JFK")
	origins.Add("BOS")
	destinations := selection.New()
	destinations.Add("LAX")

	q, err := Build(origins, destinations, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"JFK", "BOS"}, q.Origins)
	assert.Equal(t, []string{"LAX"}, q.Destinations)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, q.DepartureDates)
}
