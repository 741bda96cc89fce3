package submissions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/DCNeighborhoods/DCN-Backend/internal/middleware"
	"github.com/DCNeighborhoods/DCN-Backend/internal/neighborhoods"
	"github.com/patrickmn/go-cache"
)

// aggregateTTL bounds staleness of the cached results view.
const aggregateTTL = 30 * time.Second

// CreateSubmissionHandler ingests one drawn neighborhood.
func CreateSubmissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cand SubmissionCandidate
		if err := json.NewDecoder(r.Body).Decode(&cand); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		sub, err := svc.Submit(r.Context(), cand, middleware.ClientIP(r))
		if err != nil {
			var missing *MissingFieldError
			var invalid *InvalidGeometryError
			switch {
			case errors.As(err, &missing):
				http.Error(w, missing.Error(), http.StatusBadRequest)
			case errors.As(err, &invalid):
				http.Error(w, invalid.Error(), http.StatusBadRequest)
			default:
				// Storage failures stay opaque to the caller.
				log.Printf("submission insert failed: %v", err)
				http.Error(w, "Failed to save submission", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sub); err != nil {
			log.Printf("encode submission response: %v", err)
		}
	}
}

// ListSubmissionsHandler returns active submissions, newest first. The
// optional ?neighborhood= filter is normalized before matching.
func ListSubmissionsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := neighborhoods.Normalize(r.URL.Query().Get("neighborhood"))

		subs, err := store.ListActive(r.Context(), filter)
		if err != nil {
			log.Printf("list submissions failed: %v", err)
			http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(subs); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// AggregateHandler returns the ranked (name, count) view, cached briefly —
// every visitor loads the same results panel.
func AggregateHandler(store Store, results *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultAggregateLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		key := fmt.Sprintf("aggregate:%d", limit)
		if cached, ok := results.Get(key); ok {
			writeJSON(w, cached)
			return
		}

		subs, err := store.ListActive(r.Context(), "")
		if err != nil {
			log.Printf("aggregate read failed: %v", err)
			http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
			return
		}

		ranked := Aggregate(subs, limit)
		results.Set(key, ranked, aggregateTTL)
		writeJSON(w, ranked)
	}
}

// GroupsHandler returns full groups with member lists, uncapped.
func GroupsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := store.ListActive(r.Context(), "")
		if err != nil {
			log.Printf("groups read failed: %v", err)
			http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
			return
		}

		writeJSON(w, AggregateGroups(subs))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
