package neighborhoods

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(seeds []NeighborhoodSeed) http.Handler {
	r := chi.NewRouter()

	r.Get("/seeds", SeedsHandler(seeds))
	r.Get("/match", MatchHandler(seeds))

	return r
}
