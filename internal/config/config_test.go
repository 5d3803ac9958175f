package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Vars cleared via t.Setenv so the test restores any real values.
	for _, key := range []string{"PORT", "STORE_DRIVER", "DATABASE_URL", "DATA_DIR", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.StoreDriver != "postgres" {
		t.Errorf("expected default driver postgres, got %s", cfg.StoreDriver)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected default origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("CORS_ORIGINS", "https://bloom.example.com, https://staff.bloom.example.com")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.StoreDriver != "file" {
		t.Errorf("expected driver file, got %s", cfg.StoreDriver)
	}
	want := []string{"https://bloom.example.com", "https://staff.bloom.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.AllowedOrigins[i] != origin {
			t.Errorf("origin %d: expected %s, got %s", i, origin, cfg.AllowedOrigins[i])
		}
	}
}
