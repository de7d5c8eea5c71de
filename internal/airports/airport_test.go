package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_SchemaTolerance(t *testing.T) {
	// The same logical airport under different source schemas must produce
	// an equivalent canonical record.
	variants := []map[string]any{
		{"iata": "MIA", "name": "Miami International", "city": "Miami", "state": "FL", "country": "United States"},
		{"IATA": "MIA", "airport": "Miami International", "municipality": "Miami", "region": "FL", "countryName": "United States"},
		{"iata_code": "MIA", "airport_name": "Miami International", "locality": "Miami", "iso_region": "FL", "iso_country": "United States"},
	}

	var first Airport
	for i, raw := range variants {
		ix := BuildIndex([]map[string]any{raw})
		require.Equal(t, 1, ix.Len(), "variant %d", i)

		a, ok := ix.Get("MIA")
		require.True(t, ok)
		if i == 0 {
			first = a
			continue
		}
		assert.Equal(t, first, a, "variant %d differs", i)
	}

	assert.Equal(t, "Miami International, FL (MIA)", first.DisplayLine1)
	assert.Equal(t, "United States", first.DisplayLine2)
}

func TestBuildIndex_ExcludesRecordsWithoutValidCode(t *testing.T) {
	ix := BuildIndex([]map[string]any{
		{"name": "No Code Field"},
		{"iata": "TOOLONG", "name": "Bad Code"},
		{"iata": "J1K", "name": "Digit In Code"},
		{"iata": "  jfk  ", "name": "John F. Kennedy International"},
	})

	assert.Equal(t, 1, ix.Len())
	_, ok := ix.Get("JFK")
	assert.True(t, ok)
}

func TestBuildIndex_DuplicateCodeFirstWins(t *testing.T) {
	ix := BuildIndex([]map[string]any{
		{"iata": "LAX", "name": "Los Angeles International"},
		{"iata": "LAX", "name": "Impostor Field"},
	})

	require.Equal(t, 1, ix.Len())
	a, _ := ix.Get("LAX")
	assert.Equal(t, "Los Angeles International", a.Name)
}

func TestDisplayLine1_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "name with region",
			raw:  map[string]any{"iata": "MIA", "name": "Miami International", "state": "FL"},
			want: "Miami International, FL (MIA)",
		},
		{
			name: "city only, region not appended without a name",
			raw:  map[string]any{"iata": "BOS", "city": "Boston", "state": "MA"},
			want: "Boston (BOS)",
		},
		{
			name: "bare code",
			raw:  map[string]any{"iata": "XYZ"},
			want: "(XYZ)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := BuildIndex([]map[string]any{tt.raw})
			require.Equal(t, 1, ix.Len())
			a, _ := ix.Get(ix.airports[0].IATA)
			assert.Equal(t, tt.want, a.DisplayLine1)
		})
	}
}

func TestNormalize_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "zurich", Normalize("Zürich"))
	assert.Equal(t, "sao paulo", Normalize("  São Paulo "))
	assert.Equal(t, "malaga", Normalize("Málaga"))
}

func TestSearchText_JoinsAllFields(t *testing.T) {
	ix := BuildIndex([]map[string]any{{
		"iata": "ZRH", "icao": "LSZH", "name": "Zürich Airport",
		"city": "Zürich", "country": "Switzerland", "type": "large_airport",
	}})

	a, ok := ix.Get("ZRH")
	require.True(t, ok)
	assert.Equal(t, "zrh lszh zurich airport zurich switzerland large_airport", a.SearchText)
}
