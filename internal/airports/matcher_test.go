package airports

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-search/skyport/internal/selection"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	return BuildIndex([]map[string]any{
		{"iata": "JFK", "name": "John F. Kennedy International", "city": "New York", "country": "United States"},
		{"iata": "LGA", "name": "LaGuardia", "city": "New York", "country": "United States"},
		{"iata": "JAX", "name": "Jacksonville International", "city": "Jacksonville", "country": "United States"},
		{"iata": "BOS", "name": "Logan International", "city": "Boston", "country": "United States"},
		{"iata": "LHR", "name": "Heathrow", "city": "London", "country": "United Kingdom"},
	})
}

func TestSearch_ExactCodeOutranksEverything(t *testing.T) {
	ix := testIndex(t)

	got := ix.Search("jfk", nil)
	require.NotEmpty(t, got)
	assert.Equal(t, "JFK", got[0].IATA)
}

func TestSearch_ScoringTiers(t *testing.T) {
	// Exact code > code prefix > city prefix > name prefix > substring,
	// regardless of insertion order.
	ix := BuildIndex([]map[string]any{
		{"iata": "ABC", "name": "Memorial Jax Field", "city": "Somewhere"},  // substring on "ja"
		{"iata": "XJA", "name": "Jardine Field", "city": "Elsewhere"},       // name prefix
		{"iata": "YYC", "name": "Intl", "city": "Jakarta"},                  // city prefix
		{"iata": "JAX", "name": "Jacksonville International", "city": "Jacksonville"}, // code prefix
		{"iata": "JA1"}, // never indexed: invalid code
	})

	got := ix.Search("ja", nil)
	require.Len(t, got, 4)
	assert.Equal(t, "JAX", got[0].IATA, "code prefix first")
	assert.Equal(t, "YYC", got[1].IATA, "city prefix second")
	assert.Equal(t, "XJA", got[2].IATA, "name prefix third")
	assert.Equal(t, "ABC", got[3].IATA, "substring last")
}

func TestSearch_SubstringEarlierRanksHigher(t *testing.T) {
	ix := BuildIndex([]map[string]any{
		{"iata": "AAA", "name": "Zzz Qux Airfield"},
		{"iata": "BBB", "name": "Qux Airfield"},
	})

	got := ix.Search("qux", nil)
	require.Len(t, got, 2)
	assert.Equal(t, "BBB", got[0].IATA)
	assert.Equal(t, "AAA", got[1].IATA)
}

func TestSearch_ExcludesOwnFieldSelections(t *testing.T) {
	ix := testIndex(t)

	origins := selection.New()
	origins.Add("JFK")

	got := ix.Search("new york", origins)
	for _, a := range got {
		assert.NotEqual(t, "JFK", a.IATA)
	}

	// The opposite field's set is independent: without the exclusion JFK is
	// still eligible.
	destinations := selection.New()
	got = ix.Search("new york", destinations)
	codes := make([]string, len(got))
	for i, a := range got {
		codes[i] = a.IATA
	}
	assert.Contains(t, codes, "JFK")
}

func TestSearch_EmptyQueryAndEmptyIndex(t *testing.T) {
	ix := testIndex(t)
	assert.Nil(t, ix.Search("", nil))
	assert.Nil(t, ix.Search("   ", nil))

	empty := BuildIndex(nil)
	assert.Nil(t, empty.Search("jfk", nil))
}

func TestSearch_TruncatesToMaxResults(t *testing.T) {
	raw := make([]map[string]any, 0, 20)
	for i := 0; i < 20; i++ {
		raw = append(raw, map[string]any{
			"iata": fmt.Sprintf("Q%c%c", 'A'+i%26, 'A'+(i/26)%26),
			"name": "Springfield Municipal",
			"city": "Springfield",
		})
	}
	ix := BuildIndex(raw)

	got := ix.Search("springfield", nil)
	assert.Len(t, got, MaxResults)
}

func TestSearch_StableTieBreakByIndexOrder(t *testing.T) {
	ix := BuildIndex([]map[string]any{
		{"iata": "AAB", "city": "Springfield"},
		{"iata": "AAC", "city": "Springfield"},
		{"iata": "AAD", "city": "Springfield"},
	})

	got := ix.Search("springfield", nil)
	require.Len(t, got, 3)
	assert.Equal(t, "AAB", got[0].IATA)
	assert.Equal(t, "AAC", got[1].IATA)
	assert.Equal(t, "AAD", got[2].IATA)
}

func TestLastFragment(t *testing.T) {
	assert.Equal(t, "bos", LastFragment("JFK, BOS"))
	assert.Equal(t, "bos", LastFragment(" bos "))
	assert.Equal(t, "", LastFragment("JFK,"))
	assert.Equal(t, "zurich", LastFragment("JFK, LAX, Zürich"))
}
