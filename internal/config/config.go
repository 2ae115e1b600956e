package config

import (
	"log/slog"
	"os"
	"time"
)

const devSecret = "dev-secret-change-in-production"

type Config struct {
	Port          string
	Env           string
	TokenSecret   string
	TokenExpiry   time.Duration
	AuthRateRPS   float64
	AuthRateBurst int
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENV", "development"),
		TokenSecret:   getEnv("TOKEN_SECRET", devSecret),
		TokenExpiry:   24 * time.Hour,
		AuthRateRPS:   5,
		AuthRateBurst: 10,
	}

	if d, err := time.ParseDuration(getEnv("TOKEN_EXPIRY", "")); err == nil {
		cfg.TokenExpiry = d
	}

	if cfg.Env == "production" && cfg.TokenSecret == devSecret {
		slog.Error("TOKEN_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// Development reports whether internal error detail may be exposed.
func (c Config) Development() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
