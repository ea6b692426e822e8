package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Remote persistence service
	APIBaseURL     string
	RequestTimeout time.Duration

	// Expense list page size. The income list is deliberately unbounded,
	// matching the remote service's defaults.
	PageLimit int

	// Credential storage
	TokenPath string

	// Outgoing request rate limit in requests per second; 0 disables.
	RateLimit float64

	// Category catalog cache
	CatalogTTL time.Duration

	// Display-only currency symbol toggle
	Currency string

	LogLevel string
}

func Load() *Config {
	return &Config{
		APIBaseURL:     getEnv("GASTOS_API_URL", "http://localhost:3000/api"),
		RequestTimeout: getEnvDuration("GASTOS_TIMEOUT", 10*time.Second),
		PageLimit:      getEnvInt("GASTOS_PAGE_LIMIT", 100),
		TokenPath:      getEnv("GASTOS_TOKEN_PATH", defaultTokenPath()),
		RateLimit:      getEnvFloat("GASTOS_RATE_LIMIT", 0),
		CatalogTTL:     getEnvDuration("GASTOS_CATALOG_TTL", 5*time.Minute),
		Currency:       getEnv("GASTOS_CURRENCY", "USD"),
		LogLevel:       getEnv("GASTOS_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.APIBaseURL == "" {
		errors = append(errors, "API base URL cannot be empty")
	} else if parsed, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if c.RequestTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid request timeout %v: must be at least 1 second", c.RequestTimeout))
	} else if c.RequestTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid request timeout %v: must be at most 5 minutes", c.RequestTimeout))
	}

	if c.PageLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid page limit %d: must be at least 1", c.PageLimit))
	} else if c.PageLimit > 1000 {
		errors = append(errors, fmt.Sprintf("invalid page limit %d: must be at most 1000", c.PageLimit))
	}

	if c.TokenPath == "" {
		errors = append(errors, "token path cannot be empty")
	}

	if c.RateLimit < 0 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %v: must not be negative", c.RateLimit))
	}

	if c.CatalogTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid catalog TTL %v: must not be negative", c.CatalogTTL))
	}

	switch c.Currency {
	case "USD", "PHP":
	default:
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be one of [USD PHP]", c.Currency))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".gastos", "token")
	}
	return filepath.Join(dir, "gastos", "token")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
