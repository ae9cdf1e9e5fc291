package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port           string
	Debug          bool
	AllowedOrigins []string

	// Gemini: an API key selects the Gemini Developer API, otherwise
	// ProjectID/Location select Vertex AI.
	GeminiAPIKey string
	ProjectID    string
	Location     string
	GeminiModel  string

	// Timeouts and limits
	HTTPTimeoutSeconds int
	MaxUploadMB        int

	// LinkedIn session tokens
	JWTSecret      string
	JWTExpiryHours int

	// Cloud Storage archive for uploaded CVs (optional)
	CVBucketName string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Debug:          getEnvBool("DEBUG", false),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ProjectID:    getEnv("PROJECT_ID", ""),
		Location:     getEnv("LOCATION", "us-central1"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 10),

		JWTSecret:      getEnv("JWT_SECRET", "careerfuture-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),

		CVBucketName: getEnv("CV_BUCKET_NAME", ""),
	}
}

// Validate checks that the loaded values are usable.
// The generator is optional: with neither GEMINI_API_KEY nor PROJECT_ID
// the chat falls back to static text.
func (c *Config) Validate() error {
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "PORT must not be empty"}
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return &ConfigError{Field: "HTTP_TIMEOUT_SECONDS", Message: "HTTP_TIMEOUT_SECONDS must be positive"}
	}
	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}
	if c.JWTSecret == "" {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET must not be empty"}
	}
	if c.JWTExpiryHours <= 0 {
		return &ConfigError{Field: "JWT_EXPIRY_HOURS", Message: "JWT_EXPIRY_HOURS must be positive"}
	}
	if c.ProjectID != "" && c.Location == "" {
		return &ConfigError{Field: "LOCATION", Message: "LOCATION is required when PROJECT_ID is set"}
	}
	return nil
}

// GeneratorBackend reports which text generation backend the config selects:
// "gemini-api", "vertex-ai" or "" when none is configured.
func (c *Config) GeneratorBackend() string {
	switch {
	case c.GeminiAPIKey != "":
		return BackendGeminiAPI
	case c.ProjectID != "":
		return BackendVertexAI
	default:
		return ""
	}
}

// HTTPTimeout is the timeout applied to outbound HTTP calls.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

const (
	BackendGeminiAPI = "gemini-api"
	BackendVertexAI  = "vertex-ai"
)

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
