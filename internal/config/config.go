package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// CredentialEnvKey names the LLM credential in both the environment and the secret store
const CredentialEnvKey = "DEEPSEEK_API_KEY"

// Config holds application configuration
type Config struct {
	AppEnv     string
	ServerPort string
	Debug      bool

	// Text generation service
	LLMBaseURL        string
	LLMModel          string
	LLMTemperature    float64
	LLMMaxTokens      int
	LLMConnectTimeout time.Duration
	LLMReadTimeout    time.Duration
	LLMMaxAttempts    int
	LLMBackoff        time.Duration
	LLMAPIKey         string
	CredentialSource  string
	// CredentialError is set when the secrets file exists but cannot be read
	CredentialError error

	// Sessions
	SessionStore    string
	SessionDuration time.Duration
	SessionSecret   string

	// Optional SQL session store
	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	// Optional Redis session store
	RedisURL string

	// Requests per minute per client on generation endpoints
	RateLimitPerMinute int

	// Evaluation report email
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string
	SecretsPath  string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		ServerPort: getEnv("PORT", "8080"),
		Debug:      getEnvBool("DEBUG", false),

		LLMBaseURL:        getEnv("LLM_BASE_URL", "https://api.deepseek.com/v1"),
		LLMModel:          getEnv("LLM_MODEL", "deepseek-chat"),
		LLMTemperature:    getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:      getEnvInt("LLM_MAX_TOKENS", 1500),
		LLMConnectTimeout: getEnvDuration("LLM_CONNECT_TIMEOUT", 5*time.Second),
		LLMReadTimeout:    getEnvDuration("LLM_READ_TIMEOUT", 15*time.Second),
		LLMMaxAttempts:    getEnvInt("LLM_MAX_ATTEMPTS", 3),
		LLMBackoff:        getEnvDuration("LLM_BACKOFF", 1*time.Second),

		SessionStore:    strings.ToLower(getEnv("SESSION_STORE", "memory")),
		SessionDuration: getEnvDuration("SESSION_DURATION", 2*time.Hour),
		SessionSecret:   os.Getenv("SESSION_SECRET"),

		DatabaseType: getEnv("DB_TYPE", "sqlite"),
		DatabasePath: getEnv("DB_PATH", "./magicwriting.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 20),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: os.Getenv("SES_FROM_EMAIL"),
		SESFromName:  getEnv("SES_FROM_NAME", "Magic Writing"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
		SecretsPath:  getEnv("SECRETS_PATH", "./secrets.toml"),
	}

	cfg.LLMAPIKey, cfg.CredentialSource, cfg.CredentialError = resolveCredential(cfg.SecretsPath)
	return cfg
}

// LLMOnline reports whether a credential was found at start-up. Without one the
// process stays in offline mode for its whole lifetime.
func (c *Config) LLMOnline() bool {
	return c.LLMAPIKey != ""
}

// resolveCredential looks up the API key in the environment, then the secret store.
// A missing secrets file is not an error.
func resolveCredential(secretsPath string) (key, source string, err error) {
	if v := strings.TrimSpace(os.Getenv(CredentialEnvKey)); v != "" {
		return v, "env", nil
	}
	secrets, err := loadSecrets(secretsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", "", nil
	}
	if err != nil {
		return "", "", err
	}
	if v := strings.TrimSpace(secrets[CredentialEnvKey]); v != "" {
		return v, "secrets", nil
	}
	return "", "", nil
}

// loadSecrets reads top-level string keys from a TOML secrets file
func loadSecrets(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key))); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
