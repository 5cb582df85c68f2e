package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting the service reads from the
// environment. Load is the only place that touches os.Getenv so the rest
// of the code stays testable.
type Config struct {
	Port        string
	Environment string

	DatabaseURL string
	SeedPath    string

	MatrixBaseURL string
	MatrixAPIKey  string

	// leg cache backend: "redis", "sqlite" or "none"
	CacheBackend    string
	RedisAddr       string
	SqliteCachePath string
	CacheTTL        time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// No .env file is fine; plain environment variables still apply.
	}

	cfg := &Config{
		Port:            Get("PORT", "8080"),
		Environment:     Get("APP_ENV", "development"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SeedPath:        Get("SEED_PATH", "data/seeds/bootstrap.json"),
		MatrixBaseURL:   os.Getenv("MATRIX_BASE_URL"),
		MatrixAPIKey:    os.Getenv("MATRIX_API_KEY"),
		CacheBackend:    Get("LEG_CACHE_BACKEND", "none"),
		RedisAddr:       Get("REDIS_ADDR", "localhost:6379"),
		SqliteCachePath: Get("SQLITE_CACHE_PATH", "data/leg_cache.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}

	ttl, err := time.ParseDuration(Get("LEG_CACHE_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("config: parse LEG_CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	jwtTTL, err := time.ParseDuration(Get("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("config: parse JWT_TTL: %w", err)
	}
	cfg.JWTTTL = jwtTTL

	for _, o := range strings.Split(Get("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if strings.TrimSpace(cfg.MatrixBaseURL) == "" {
		return nil, errors.New("config: MATRIX_BASE_URL is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}

	switch cfg.CacheBackend {
	case "redis", "sqlite", "none":
	default:
		return nil, fmt.Errorf("config: unknown LEG_CACHE_BACKEND %q", cfg.CacheBackend)
	}

	return cfg, nil
}

// Get reads an environment variable with a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
