package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Posts      PostsConfig      `mapstructure:"posts" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains provider credentials and model selection.
//
// API keys are optional at startup. Each generation action checks the key it
// needs at call time and reports a configuration error when it is missing.
type LLMConfig struct {
	MistralAPIKey  string `mapstructure:"mistral_api_key"`
	MistralBaseURL string `mapstructure:"mistral_base_url" validate:"required,url"`
	TextModel      string `mapstructure:"text_model" validate:"required"`

	GeminiAPIKey        string `mapstructure:"gemini_api_key"`
	ImageModel          string `mapstructure:"image_model" validate:"required"`
	SecondaryImageModel string `mapstructure:"secondary_image_model" validate:"required"`

	// RequestTimeoutSeconds bounds each provider call. Zero waits indefinitely.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig selects the generation log backend.
// An empty driver keeps the log in memory.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"omitempty,oneof=postgres sqlite3"`
	URL    string `mapstructure:"url" validate:"required_if=Driver postgres,required_if=Driver sqlite3"`
}

// PostsConfig controls the per-session Post board.
type PostsConfig struct {
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" validate:"required,gt=0"`
	MaxPostsPerBoard  int `mapstructure:"max_posts_per_board" validate:"required,gt=0"`
}

// GenerationConfig holds defaults applied to incoming generation requests.
type GenerationConfig struct {
	DefaultLanguage string `mapstructure:"default_language" validate:"required,bcp47_language_tag"`
}
