package neighborhoods

import (
	"encoding/json"
	"net/http"
	"sort"
)

// SeedsHandler returns the full seed list ordered by name.
func SeedsHandler(seeds []NeighborhoodSeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sorted := make([]NeighborhoodSeed, len(seeds))
		copy(sorted, seeds)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sorted); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// MatchHandler serves autocomplete suggestions for the drawing form.
func MatchHandler(seeds []NeighborhoodSeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches := MatchSeeds(r.URL.Query().Get("q"), seeds)
		if matches == nil {
			matches = []NeighborhoodSeed{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(matches); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}
