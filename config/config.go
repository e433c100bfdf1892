package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Environment       string
	LogLevel          string
	DatabaseURL       string // optional; records stay in memory without it
	RedisURL          string // optional; wizard sessions stay in memory without it
	JWTSecret         string
	SessionTTL        time.Duration
	DashboardTokenTTL time.Duration
	GeminiAPIKey      string
	GeminiModel       string
}

// Load reads .env (if present) and the environment. It always returns the
// config it could build so the caller can still set up logging on error.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		Port:              get("PORT", "8080"),
		Environment:       get("APP_ENV", "development"),
		LogLevel:          get("LOG_LEVEL", "info"),
		DatabaseURL:       get("DATABASE_URL", ""),
		RedisURL:          get("REDIS_URL", ""),
		JWTSecret:         get("JWT_SECRET", ""),
		SessionTTL:        duration("SESSION_TTL", 24*time.Hour),
		DashboardTokenTTL: duration("DASHBOARD_TOKEN_TTL", 30*24*time.Hour),
		GeminiAPIKey:      get("GEMINI_API_KEY", ""),
		GeminiModel:       get("GEMINI_MODEL", "gemini-2.5-flash"),
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("missing required env: JWT_SECRET")
	}
	return cfg, nil
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func duration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
