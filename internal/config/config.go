// ABOUTME: Centralized configuration for the Memoria backend
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the memory backend
type Config struct {
	// Storage settings
	MemoryRoot string

	// OpenAI settings
	OpenAIKey  string
	BaseURL    string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Retrieval settings
	RetrieveDays int

	// HTTP settings
	Port string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		MemoryRoot:   getEnv("MEMORY_ROOT", "./memory"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		BaseURL:      getEnv("OPENAI_BASE_URL", os.Getenv("BASE_URL")),
		ChatModel:    getEnv("OPENAI_MODEL", getEnv("MODEL", "gpt-4o-mini")),
		Timeout:      getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:   getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:   getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		RetrieveDays: getEnvInt("MEMORY_RETRIEVE_DAYS", 14),
		Port:         getEnv("PORT", "8000"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MemoryRoot == "" {
		return fmt.Errorf("MEMORY_ROOT must not be empty")
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RetrieveDays <= 0 {
		return fmt.Errorf("MEMORY_RETRIEVE_DAYS must be positive, got %d", c.RetrieveDays)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
