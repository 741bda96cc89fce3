package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DCNeighborhoods/DCN-Backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5050" {
		t.Errorf("expected default port 5050, got %q", cfg.Port)
	}
	if cfg.SubmitRatePerMinute != 10 {
		t.Errorf("expected default rate 10, got %d", cfg.SubmitRatePerMinute)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default allowed origins")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"8080\"\nsubmit_rate_per_minute: 5\nallowed_origins:\n  - https://neighborhoods.example.org\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.SubmitRatePerMinute != 5 {
		t.Errorf("expected rate 5, got %d", cfg.SubmitRatePerMinute)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://neighborhoods.example.org" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	// Unset keys keep their defaults.
	if cfg.SeedFile != config.DefaultSeedFile {
		t.Errorf("expected default seed file, got %q", cfg.SeedFile)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"8080\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9999")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.org, https://b.example.org")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("expected env port 9999, got %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.org" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	if _, err := config.Load("does-not-exist.yaml"); err != nil {
		t.Errorf("missing config file should not error, got: %v", err)
	}
}
