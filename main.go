package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/DCNeighborhoods/DCN-Backend/internal/config"
	"github.com/DCNeighborhoods/DCN-Backend/internal/db"
	"github.com/DCNeighborhoods/DCN-Backend/internal/middleware"
	"github.com/DCNeighborhoods/DCN-Backend/internal/neighborhoods"
	"github.com/DCNeighborhoods/DCN-Backend/internal/submissions"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "DC Neighborhoods API")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"healthy"}`)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect()

	seeds := neighborhoods.Init(cfg.SeedFile)
	submissions.Init()

	store := submissions.NewGormStore(db.DB)
	svc := submissions.NewService(store)
	writeLimiter := middleware.RateLimitMiddleware(cfg.SubmitRatePerMinute, cfg.SubmitBurst)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)
	r.Get("/health", HealthHandler)

	r.Mount("/submissions", submissions.SetupRoutes(svc, store, writeLimiter))
	r.Mount("/neighborhoods", neighborhoods.SetupRoutes(seeds))

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
