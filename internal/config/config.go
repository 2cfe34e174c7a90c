// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"oncocare/pkg/llm"
)

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// DevJWTSecret is used when JWT_SECRET is unset. Fine for the demo, never for
// a shared deployment.
const DevJWTSecret = "oncocare-dev-secret"

// Config holds all application configuration.
type Config struct {
	Port           string
	AllowedOrigins []string
	JWTSecret      string
	SessionTTL     time.Duration
	QuizStateTTL   time.Duration
	RateLimit      RateLimitConfig
	LLM            LLMConfig
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LLMConfig selects and tunes the language-model provider.
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	MaxAttempts int
	Backoff     time.Duration
	Timeout     time.Duration
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (*Config, error) {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq))

	cfg := &Config{
		Port:           getEnv("PORT", "3001"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		JWTSecret:      getEnv("JWT_SECRET", DevJWTSecret),
		SessionTTL:     getEnvDuration("SESSION_TTL", 60*time.Minute),
		QuizStateTTL:   getEnvDuration("QUIZ_STATE_TTL", 30*time.Minute),
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 2),
			Burst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
		LLM: LLMConfig{
			Provider:    provider,
			MaxAttempts: getEnvInt("LLM_MAX_ATTEMPTS", 3),
			Backoff:     getEnvDuration("LLM_RETRY_BACKOFF", 500*time.Millisecond),
			Timeout:     getEnvDuration("LLM_TIMEOUT", 30*time.Second),
		},
	}

	switch provider {
	case ProviderGroq:
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", llm.GroqBaseURL)
		cfg.LLM.Model = getEnv("LLM_MODEL", llm.DefaultGroqModel)
	case ProviderOpenAI:
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", "")
		cfg.LLM.Model = getEnv("LLM_MODEL", "gpt-4o-mini")
	case ProviderGemini:
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.LLM.Model = getEnv("LLM_MODEL", llm.DefaultGeminiModel)
	case ProviderAnthropic:
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.LLM.Model = getEnv("LLM_MODEL", llm.DefaultAnthropicModel)
	case ProviderOllama:
		cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", llm.DefaultOllamaURL)
		cfg.LLM.Model = getEnv("LLM_MODEL", llm.DefaultOllamaModel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	switch c.LLM.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderGemini, ProviderAnthropic, ProviderOllama:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q: use groq, openai, gemini, anthropic or ollama", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" && c.LLM.Provider != ProviderOllama {
		return fmt.Errorf("an API key is required for provider %s", c.LLM.Provider)
	}
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("LLM_MAX_ATTEMPTS must be >= 1")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.QuizStateTTL <= 0 || c.SessionTTL <= 0 {
		return fmt.Errorf("QUIZ_STATE_TTL and SESSION_TTL must be positive")
	}
	return nil
}

// lookupEnv treats a blank value the same as an unset one.
func lookupEnv(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

func getEnv(key, fallback string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := lookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := lookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
