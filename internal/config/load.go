package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces every configuration key in the environment,
// e.g. SPARK_SERVER_PORT for server.port.
const envPrefix = "SPARK"

// bareEnvAliases lets the well-known provider variables work without the prefix.
var bareEnvAliases = map[string]string{
	"llm.mistral_api_key": "MISTRAL_API_KEY",
	"llm.gemini_api_key":  "GEMINI_API_KEY",
	"database.url":        "DATABASE_URL",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, bare := range bareEnvAliases {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, bare); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.mistral_api_key", "")
	v.SetDefault("llm.mistral_base_url", "https://api.mistral.ai/v1/")
	v.SetDefault("llm.text_model", "mistral-large-latest")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.image_model", "gemini-2.0-flash-exp")
	v.SetDefault("llm.secondary_image_model", "imagen-3.0-generate-002")
	v.SetDefault("llm.request_timeout_seconds", 0)

	v.SetDefault("database.driver", "")
	v.SetDefault("database.url", "")

	v.SetDefault("posts.session_ttl_minutes", 120)
	v.SetDefault("posts.max_posts_per_board", 50)

	v.SetDefault("generation.default_language", "es")
}
