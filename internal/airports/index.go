package airports

// Index is the process-wide airport index, built once on a successful load
// and read-only afterwards. An empty index is valid and simply yields no
// suggestions.
type Index struct {
	airports []Airport
	byCode   map[string]int
}

// BuildIndex materializes canonical airports from heterogeneous raw records.
// Records without a valid 3-letter code are excluded, not errors. When two
// records carry the same code the first occurrence wins.
func BuildIndex(raw []map[string]any) *Index {
	ix := &Index{byCode: make(map[string]int, len(raw))}
	for _, rec := range raw {
		a, ok := fromRaw(rec)
		if !ok {
			continue
		}
		if _, dup := ix.byCode[a.IATA]; dup {
			continue
		}
		ix.byCode[a.IATA] = len(ix.airports)
		ix.airports = append(ix.airports, a)
	}
	return ix
}

// Len returns the number of indexed airports.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.airports)
}

// Get looks up an airport by its 3-letter code.
func (ix *Index) Get(code string) (Airport, bool) {
	if ix == nil {
		return Airport{}, false
	}
	i, ok := ix.byCode[code]
	if !ok {
		return Airport{}, false
	}
	return ix.airports[i], true
}
