package airports

import (
	"sort"
	"strings"
)

// MaxResults caps the number of suggestions returned by Search.
const MaxResults = 8

// Excluder reports membership of a 3-letter code. A field's own selection
// set implements it so already-chosen airports drop out of that field's
// suggestions without touching the opposite field.
type Excluder interface {
	Contains(code string) bool
}

// LastFragment derives the matcher query from a raw input value: the text
// after the final comma, trimmed and normalized. Typing "JFK, bos" searches
// for "bos".
func LastFragment(value string) string {
	parts := strings.Split(value, ",")
	return Normalize(parts[len(parts)-1])
}

// score ranks an airport against an already-normalized query. Higher wins;
// the first matching rule applies; non-matches score negative.
func score(q string, a Airport) int {
	code := strings.ToLower(a.IATA)
	if code == q {
		return 1000
	}
	if strings.HasPrefix(code, q) {
		return 900
	}
	if a.normCity != "" && strings.HasPrefix(a.normCity, q) {
		return 700
	}
	if a.normName != "" && strings.HasPrefix(a.normName, q) {
		return 650
	}
	if i := strings.Index(a.SearchText, q); i >= 0 {
		if i > 200 {
			i = 200
		}
		return 400 - i
	}
	return -1
}

// Search ranks indexed airports against query, skipping entries in exclude,
// and returns at most MaxResults in descending score order. Ties keep the
// original index order. The query is normalized exactly like indexed text;
// an empty query yields nothing.
func (ix *Index) Search(query string, exclude Excluder) []Airport {
	q := Normalize(query)
	if q == "" || ix.Len() == 0 {
		return nil
	}

	type scored struct {
		score int
		a     Airport
	}
	var matches []scored
	for _, a := range ix.airports {
		if exclude != nil && exclude.Contains(a.IATA) {
			continue
		}
		if s := score(q, a); s > 0 {
			matches = append(matches, scored{s, a})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}

	out := make([]Airport, len(matches))
	for i, m := range matches {
		out[i] = m.a
	}
	return out
}
