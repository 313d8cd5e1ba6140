// Package config loads the FreshBooks MCP server configuration from the
// environment and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eshaffer321/freshbooks-go/internal/types"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAccessToken     = "FRESHBOOKS_ACCESS_TOKEN"
	EnvAccountID       = "FRESHBOOKS_ACCOUNT_ID"
	EnvBusinessID      = "FRESHBOOKS_BUSINESS_ID"
	EnvAPIURL          = "FRESHBOOKS_API_URL"
	EnvRequestInterval = "FRESHBOOKS_REQUEST_INTERVAL"
	EnvMaxRetries      = "FRESHBOOKS_MAX_RETRIES"
	EnvTimeout         = "FRESHBOOKS_TIMEOUT"
	EnvLogLevel        = "FRESHBOOKS_LOG_LEVEL"
	EnvHTTPAddr        = "FRESHBOOKS_MCP_HTTP_ADDR"
	EnvSentryDSN       = "SENTRY_DSN"
	EnvSentryEnv       = "SENTRY_ENVIRONMENT"
)

// Config is the runtime configuration shared by the binaries.
type Config struct {
	FreshBooks FreshBooksConfig
	Sentry     SentryConfig
	LogLevel   slog.Level
	HTTPAddr   string
}

// FreshBooksConfig holds the API credentials and client tuning.
type FreshBooksConfig struct {
	AccessToken     string
	AccountID       string
	BusinessID      string
	APIURL          string
	RequestInterval time.Duration
	MaxRetries      int
	Timeout         time.Duration
}

// SentryConfig enables error reporting when DSN is set.
type SentryConfig struct {
	DSN         string
	Environment string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded when present; an explicit
// path must exist.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	interval, err := parseDurationEnv(EnvRequestInterval, types.DefaultRequestInterval)
	if err != nil {
		return nil, err
	}

	timeout, err := parseDurationEnv(EnvTimeout, types.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	retries, err := parseIntEnv(EnvMaxRetries, 0)
	if err != nil {
		return nil, err
	}

	level, err := parseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return nil, err
	}

	accountID := strings.TrimSpace(os.Getenv(EnvAccountID))

	return &Config{
		FreshBooks: FreshBooksConfig{
			AccessToken:     strings.TrimSpace(os.Getenv(EnvAccessToken)),
			AccountID:       accountID,
			BusinessID:      getEnvOrDefault(EnvBusinessID, accountID),
			APIURL:          getEnvOrDefault(EnvAPIURL, types.DefaultBaseURL),
			RequestInterval: interval,
			MaxRetries:      retries,
			Timeout:         timeout,
		},
		Sentry: SentryConfig{
			DSN:         os.Getenv(EnvSentryDSN),
			Environment: getEnvOrDefault(EnvSentryEnv, "production"),
		},
		LogLevel: level,
		HTTPAddr: os.Getenv(EnvHTTPAddr),
	}, nil
}

// Validate reports every missing required variable at once.
func (c *Config) Validate() error {
	var missing []string
	if c.FreshBooks.AccessToken == "" {
		missing = append(missing, EnvAccessToken)
	}
	if c.FreshBooks.AccountID == "" {
		missing = append(missing, EnvAccountID)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s\nPlease check your .env file or environment variables", strings.Join(missing, ", "))
	}
	return nil
}

// RetryConfig returns nil when retries are disabled.
func (c *Config) RetryConfig() *types.RetryConfig {
	if c.FreshBooks.MaxRetries <= 0 {
		return nil
	}
	return &types.RetryConfig{
		MaxRetries: c.FreshBooks.MaxRetries,
		RetryWait:  time.Second,
		MaxWait:    30 * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}
	return parsed, nil
}

// parseDurationEnv accepts Go durations ("250ms") or a bare number of milliseconds.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid duration value for %s: %s", key, value)
	}
	return parsed, nil
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level for %s: %s", EnvLogLevel, value)
}
