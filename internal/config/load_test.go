package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies the defaults applied when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"SPARK_SERVER_PORT":      "",
		"SPARK_SERVER_LOG_LEVEL": "",
		"MISTRAL_API_KEY":        "",
		"GEMINI_API_KEY":         "",
		"SPARK_DATABASE_DRIVER":  "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should succeed without provider keys")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "mistral-large-latest", cfg.LLM.TextModel)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.LLM.ImageModel)
	assert.Equal(t, "https://api.mistral.ai/v1/", cfg.LLM.MistralBaseURL)
	assert.Equal(t, 0, cfg.LLM.RequestTimeoutSeconds)
	assert.Empty(t, cfg.LLM.MistralAPIKey)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
	assert.Empty(t, cfg.Database.Driver)
	assert.Equal(t, "es", cfg.Generation.DefaultLanguage)
	assert.Equal(t, 120, cfg.Posts.SessionTTLMinutes)
}

// TestLoadFromEnv verifies that prefixed and bare variables are both honored.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"SPARK_SERVER_PORT":               "9090",
		"SPARK_SERVER_LOG_LEVEL":          "debug",
		"MISTRAL_API_KEY":                 "mistral-test-key",
		"SPARK_LLM_GEMINI_API_KEY":        "gemini-test-key",
		"SPARK_LLM_TEXT_MODEL":            "mistral-small-latest",
		"SPARK_DATABASE_DRIVER":           "sqlite3",
		"DATABASE_URL":                    "file:spark.db",
		"SPARK_POSTS_SESSION_TTL_MINUTES": "15",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mistral-test-key", cfg.LLM.MistralAPIKey)
	assert.Equal(t, "gemini-test-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "mistral-small-latest", cfg.LLM.TextModel)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "file:spark.db", cfg.Database.URL)
	assert.Equal(t, 15, cfg.Posts.SessionTTLMinutes)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"SPARK_SERVER_PORT": "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"SPARK_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Unknown database driver",
			envVars: map[string]string{
				"SPARK_DATABASE_DRIVER": "mysql",
				"DATABASE_URL":          "mysql://localhost/db",
			},
		},
		{
			name: "Database driver without URL",
			envVars: map[string]string{
				"SPARK_DATABASE_DRIVER": "postgres",
				"DATABASE_URL":          "",
				"SPARK_DATABASE_URL":    "",
			},
		},
		{
			name: "Invalid default language",
			envVars: map[string]string{
				"SPARK_GENERATION_DEFAULT_LANGUAGE": "not a language",
			},
		},
		{
			name: "Negative request timeout",
			envVars: map[string]string{
				"SPARK_LLM_REQUEST_TIMEOUT_SECONDS": "-1",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
