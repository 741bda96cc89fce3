package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds service configuration. Values come from an optional YAML file
// with environment variables taking precedence.
type Config struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SeedFile       string   `yaml:"seed_file"`

	// Submissions per minute allowed from a single client before 429s.
	SubmitRatePerMinute int `yaml:"submit_rate_per_minute"`
	SubmitBurst         int `yaml:"submit_burst"`
}

// DefaultSeedFile is the bundled DC metro reference list.
const DefaultSeedFile = "data/neighborhood-seeds/dc-metro-neighborhoods.json"

func defaults() Config {
	return Config{
		Port: "5050",
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"http://localhost:3000",
		},
		SeedFile:            DefaultSeedFile,
		SubmitRatePerMinute: 10,
		SubmitBurst:         3,
	}
}

// Load reads the config file at path (skipped when path is empty or the file
// does not exist) and then applies environment overrides.
//
// Environment variables:
//   - PORT: HTTP listen port
//   - ALLOWED_ORIGINS: comma-separated CORS allow-list
//   - SEED_FILE: path to the neighborhood seed JSON
//   - SUBMIT_RATE_PER_MINUTE, SUBMIT_BURST: ingestion rate limit
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("SUBMIT_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SubmitRatePerMinute = n
		}
	}
	if v := os.Getenv("SUBMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SubmitBurst = n
		}
	}

	return cfg, nil
}
