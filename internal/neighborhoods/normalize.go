package neighborhoods

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxMatches caps autocomplete suggestions.
const maxMatches = 6

// Normalize produces the grouping key for a neighborhood name: trimmed and
// lower-cased, nothing else. No accent folding, no punctuation stripping —
// aggregation groups two submissions iff their normalized names are byte
// identical.
func Normalize(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// MatchSeeds returns up to 6 seeds whose name or any alternate name contains
// the query, case-insensitively, in seed-list order. Suggestion only — never
// a grouping input. An empty or whitespace-only query matches nothing.
func MatchSeeds(query string, seeds []NeighborhoodSeed) []NeighborhoodSeed {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	var matches []NeighborhoodSeed
	for _, seed := range seeds {
		if seedMatches(q, seed) {
			matches = append(matches, seed)
			if len(matches) == maxMatches {
				break
			}
		}
	}
	return matches
}

func seedMatches(q string, seed NeighborhoodSeed) bool {
	if strings.Contains(Normalize(seed.Name), q) {
		return true
	}
	for _, alt := range seed.AlternateNames {
		if strings.Contains(Normalize(alt), q) {
			return true
		}
	}
	return false
}
