package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.StoreDriver != "mongo" {
		t.Errorf("expected default store driver mongo, got %q", cfg.StoreDriver)
	}
	if cfg.MongoDB != "ekart" {
		t.Errorf("expected default mongo database ekart, got %q", cfg.MongoDB)
	}
	if cfg.ListCacheTTL != 30*time.Second {
		t.Errorf("expected default list cache TTL 30s, got %v", cfg.ListCacheTTL)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.RedisAddr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ALLOWED_ORIGIN", "https://ekart-client.vercel.app")
	t.Setenv("LIST_CACHE_TTL_SECONDS", "90")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.StoreDriver != "memory" {
		t.Errorf("expected store driver memory, got %q", cfg.StoreDriver)
	}
	if cfg.AllowedOrigin != "https://ekart-client.vercel.app" {
		t.Errorf("unexpected allowed origin %q", cfg.AllowedOrigin)
	}
	if cfg.ListCacheTTL != 90*time.Second {
		t.Errorf("expected list cache TTL 90s, got %v", cfg.ListCacheTTL)
	}
}
