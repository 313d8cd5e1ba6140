package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eshaffer321/freshbooks-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvAccessToken, EnvAccountID, EnvBusinessID, EnvAPIURL, EnvRequestInterval,
		EnvMaxRetries, EnvTimeout, EnvLogLevel, EnvHTTPAddr, EnvSentryDSN, EnvSentryEnv,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAccessToken, "tok")
	t.Setenv(EnvAccountID, "abc123")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err, "explicit path must exist")
	assert.Nil(t, cfg)

	empty := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	cfg, err = Load(empty)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "tok", cfg.FreshBooks.AccessToken)
	assert.Equal(t, "abc123", cfg.FreshBooks.AccountID)
	assert.Equal(t, "abc123", cfg.FreshBooks.BusinessID, "business id defaults to account id")
	assert.Equal(t, types.DefaultBaseURL, cfg.FreshBooks.APIURL)
	assert.Equal(t, types.DefaultRequestInterval, cfg.FreshBooks.RequestInterval)
	assert.Equal(t, types.DefaultTimeout, cfg.FreshBooks.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Nil(t, cfg.RetryConfig())
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even to ""
	for _, key := range []string{EnvAccessToken, EnvAccountID, EnvBusinessID, EnvRequestInterval, EnvMaxRetries, EnvLogLevel} {
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "FRESHBOOKS_ACCESS_TOKEN=file-token\n" +
		"FRESHBOOKS_ACCOUNT_ID=acct\n" +
		"FRESHBOOKS_BUSINESS_ID=42\n" +
		"FRESHBOOKS_REQUEST_INTERVAL=250\n" +
		"FRESHBOOKS_MAX_RETRIES=2\n" +
		"FRESHBOOKS_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{EnvAccessToken, EnvAccountID, EnvBusinessID, EnvRequestInterval, EnvMaxRetries, EnvLogLevel} {
			os.Unsetenv(key)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.FreshBooks.AccessToken)
	assert.Equal(t, "42", cfg.FreshBooks.BusinessID)
	assert.Equal(t, 250*time.Millisecond, cfg.FreshBooks.RequestInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)

	retry := cfg.RetryConfig()
	require.NotNil(t, retry)
	assert.Equal(t, 2, retry.MaxRetries)
}

func TestValidate_ReportsAllMissing(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAccessToken)
	assert.Contains(t, err.Error(), EnvAccountID)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad interval", EnvRequestInterval, "soon"},
		{"bad timeout", EnvTimeout, "-5s"},
		{"bad retries", EnvMaxRetries, "many"},
		{"bad log level", EnvLogLevel, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			empty := filepath.Join(t.TempDir(), ".env")
			require.NoError(t, os.WriteFile(empty, nil, 0o600))

			_, err := Load(empty)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestParseDurationEnv(t *testing.T) {
	t.Setenv("X_DURATION", "1.5s")
	d, err := parseDurationEnv("X_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	t.Setenv("X_DURATION", "")
	d, err = parseDurationEnv("X_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}
