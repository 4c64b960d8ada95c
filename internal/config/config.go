package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Routes RouteConfig
}

type ServerConfig struct {
	Port           string
	BaseURL        string
	AllowedOrigins []string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	CookieName string
}

// RouteConfig holds the path-prefix tables evaluated by the edge guard.
// Any request whose path starts with a Protected prefix requires a valid
// token; Admin prefixes additionally require the admin role.
type RouteConfig struct {
	Protected []string
	Admin     []string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			BaseURL:        getenv("BASE_URL", "http://localhost:8080"),
			AllowedOrigins: splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenTTL:   parseDuration(os.Getenv("TOKEN_TTL"), 7*24*time.Hour),
			CookieName: getenv("TOKEN_COOKIE_NAME", "token"),
		},
		Routes: RouteConfig{
			Protected: splitCSV(getenv("PROTECTED_API_ROUTES", "/api/user,/api/admin,/api/borrows")),
			Admin:     splitCSV(getenv("ADMIN_API_ROUTES", "/api/admin")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
