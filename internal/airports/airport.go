package airports

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Airport is one canonical record in the index. Built once, never mutated.
type Airport struct {
	IATA    string `json:"iata"`
	ICAO    string `json:"icao,omitempty"`
	Name    string `json:"name,omitempty"`
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
	Type    string `json:"type,omitempty"`

	// Precomputed display strings, e.g. "Miami International, FL (MIA)".
	DisplayLine1 string `json:"display_line1"`
	DisplayLine2 string `json:"display_line2,omitempty"`

	// SearchText is the lowercase, diacritic-stripped concatenation of all
	// textual fields, used for substring matching.
	SearchText string `json:"-"`

	normName string
	normCity string
}

// fieldSources maps each canonical field to the ordered list of source keys
// it may appear under in the wild. The first present, non-blank value wins.
var fieldSources = map[string][]string{
	"iata":    {"iata", "IATA", "iata_code", "iataCode", "code"},
	"icao":    {"icao", "ICAO", "icao_code", "icaoCode"},
	"name":    {"name", "airport", "airportName", "airport_name"},
	"city":    {"city", "municipality", "servedCity", "served_city", "locality"},
	"region":  {"state", "region", "province", "subdivision", "iso_region"},
	"country": {"country", "countryName", "iso_country", "nation"},
	"type":    {"type", "kind"},
}

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsCode reports whether s is exactly three ASCII letters after
// trimming and uppercasing.
func IsCode(s string) bool {
	return codePattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// Normalize lowercases, trims, and strips combining diacritical marks.
// The same normalization is applied to indexed text and query text.
func Normalize(s string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func pick(raw map[string]any, field string) string {
	for _, key := range fieldSources[field] {
		if val, ok := raw[key]; ok && val != nil {
			s := strings.TrimSpace(fmt.Sprint(val))
			if s != "" {
				return s
			}
		}
	}
	return ""
}

// fromRaw builds a canonical Airport from one schema-tolerant source record.
// Returns false when no candidate key yields a valid 3-letter code.
func fromRaw(raw map[string]any) (Airport, bool) {
	iata := strings.ToUpper(pick(raw, "iata"))
	if !codePattern.MatchString(iata) {
		return Airport{}, false
	}

	a := Airport{
		IATA:    iata,
		ICAO:    strings.ToUpper(pick(raw, "icao")),
		Name:    pick(raw, "name"),
		City:    pick(raw, "city"),
		Region:  pick(raw, "region"),
		Country: pick(raw, "country"),
		Type:    pick(raw, "type"),
	}

	a.DisplayLine1 = displayLine1(a)
	a.DisplayLine2 = a.Country
	a.SearchText = Normalize(joinNonBlank(" ",
		a.IATA, a.ICAO, a.Name, a.City, a.Region, a.Country, a.Type))
	a.normName = Normalize(a.Name)
	a.normCity = Normalize(a.City)

	return a, true
}

// displayLine1 favors the airport name, then the city, then the bare code.
// The region is appended only when a name is present, and the code always
// trails in parentheses.
func displayLine1(a Airport) string {
	left := a.Name
	if left == "" {
		left = a.City
	}
	if left == "" {
		return "(" + a.IATA + ")"
	}
	if a.Name != "" && a.Region != "" {
		left += ", " + a.Region
	}
	return left + " (" + a.IATA + ")"
}

func joinNonBlank(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
