// Package config reads the configuration of the fi-rise backend from the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fi-rise/backend/internal/storage/database"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Port    int
	BaseURL *url.URL

	Storage    string
	SQLitePath string
	Postgres   database.PostgresConfig

	RedisURL string
	CacheTTL time.Duration

	// UserID is the effective user of all requests
	UserID uint

	Currency string
	Locale   string
	Seed     bool
}

// lookup returns the value of the environment variable or the fallback
// if it is unset or empty.
func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// Load reads the configuration. All invalid values are reported together.
func Load() (Config, error) {
	var errs []error

	c := Config{
		Storage:    lookup("STORAGE_BACKEND", BackendMemory),
		SQLitePath: lookup("SQLITE_PATH", "data/fi-rise.db"),
		Postgres: database.PostgresConfig{
			Host:     lookup("DB_HOST", "localhost"),
			User:     lookup("DB_USER", "postgres"),
			Password: lookup("DB_PASSWORD", ""),
			Name:     lookup("DB_NAME", "firise"),
			SSLMode:  lookup("DB_SSLMODE", "disable"),
		},
		RedisURL: lookup("REDIS_URL", ""),
		Currency: lookup("CURRENCY", "USD"),
		Locale:   lookup("LOCALE", "en-US"),
	}

	port, err := strconv.Atoi(lookup("PORT", "8080"))
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a port number, got %q", lookup("PORT", "")))
	}
	c.Port = port

	dbPort, err := strconv.Atoi(lookup("DB_PORT", "5432"))
	if err != nil || dbPort < 1 || dbPort > 65535 {
		errs = append(errs, fmt.Errorf("DB_PORT must be a port number, got %q", lookup("DB_PORT", "")))
	}
	c.Postgres.Port = dbPort

	baseURL, err := url.Parse(strings.TrimSuffix(lookup("API_URL", "http://localhost:8080"), "/"))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		errs = append(errs, fmt.Errorf("API_URL must be an absolute URL, got %q", lookup("API_URL", "")))
	}
	c.BaseURL = baseURL

	switch c.Storage {
	case BackendMemory, BackendSQLite, BackendPostgres:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be one of %s, %s, %s, got %q", BackendMemory, BackendSQLite, BackendPostgres, c.Storage))
	}

	ttl, err := time.ParseDuration(lookup("CACHE_TTL", "10m"))
	if err != nil || ttl <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be a positive duration, got %q", lookup("CACHE_TTL", "")))
	}
	c.CacheTTL = ttl

	userID, err := strconv.ParseUint(lookup("DEMO_USER_ID", "1"), 10, 0)
	if err != nil || userID == 0 {
		errs = append(errs, fmt.Errorf("DEMO_USER_ID must be a positive integer, got %q", lookup("DEMO_USER_ID", "")))
	}
	c.UserID = uint(userID)

	seed, err := strconv.ParseBool(lookup("SEED", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SEED must be a boolean, got %q", lookup("SEED", "")))
	}
	c.Seed = seed

	return c, errors.Join(errs...)
}
