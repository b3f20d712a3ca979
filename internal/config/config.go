package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port     string
	GinMode  string
	DBDriver string
	DBDSN    string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

// Load reads configuration from the environment. Secrets and the store
// DSN have no defaults; a missing value is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	var err error
	if cfg.DBDSN, err = requireEnv("DB_DSN"); err != nil {
		return nil, err
	}
	if cfg.AccessTokenSecret, err = requireEnv("JWT_ACCESS_SECRET"); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenSecret, err = requireEnv("JWT_REFRESH_SECRET"); err != nil {
		return nil, err
	}

	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		if cfg.AccessTokenTTL, err = time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
	}
	if raw := os.Getenv("REFRESH_TOKEN_TTL"); raw != "" {
		if cfg.RefreshTokenTTL, err = time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
		}
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
