package submissions

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
)

// SetupRoutes wires the submission endpoints. writeLimiter throttles the
// ingestion path only; pass nil to disable (tests).
func SetupRoutes(svc *Service, store Store, writeLimiter func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	results := cache.New(aggregateTTL, time.Minute)

	r.Get("/", ListSubmissionsHandler(store))
	r.Get("/aggregate", AggregateHandler(store, results))
	r.Get("/groups", GroupsHandler(store))

	r.Group(func(r chi.Router) {
		if writeLimiter != nil {
			r.Use(writeLimiter)
		}
		r.Post("/", CreateSubmissionHandler(svc))
	})

	return r
}
