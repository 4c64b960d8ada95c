package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TOKEN_TTL", "TOKEN_COOKIE_NAME", "PROTECTED_API_ROUTES", "ADMIN_API_ROUTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("default port: got %q", cfg.Server.Port)
	}
	if cfg.Auth.CookieName != "token" {
		t.Fatalf("default cookie name: got %q", cfg.Auth.CookieName)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("default token ttl: got %v", cfg.Auth.TokenTTL)
	}
	if len(cfg.Routes.Protected) == 0 || len(cfg.Routes.Admin) == 0 {
		t.Fatalf("expected default route tables, got %+v", cfg.Routes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PROTECTED_API_ROUTES", "/api/v2/user, /api/v2/admin")
	t.Setenv("ADMIN_API_ROUTES", "/api/v2/admin")
	t.Setenv("TOKEN_TTL", "7h")
	t.Setenv("TOKEN_COOKIE_NAME", "session")

	cfg := Load()

	if got := cfg.Routes.Protected; len(got) != 2 || got[0] != "/api/v2/user" || got[1] != "/api/v2/admin" {
		t.Fatalf("protected routes: got %v", got)
	}
	if got := cfg.Routes.Admin; len(got) != 1 || got[0] != "/api/v2/admin" {
		t.Fatalf("admin routes: got %v", got)
	}
	if cfg.Auth.TokenTTL != 7*time.Hour {
		t.Fatalf("token ttl: got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieName != "session" {
		t.Fatalf("cookie name: got %q", cfg.Auth.CookieName)
	}
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	if cfg := Load(); cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("expected fallback ttl, got %v", cfg.Auth.TokenTTL)
	}
}
