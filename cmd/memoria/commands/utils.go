// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Builds the configured store, provider client, and service
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/harper/memoria/internal/config"
	"github.com/harper/memoria/internal/core"
	"github.com/harper/memoria/internal/llm"
	"github.com/harper/memoria/internal/memory"
)

// newLogger creates a logger honoring the global verbosity flags
func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	switch {
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	case verbose:
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newService loads configuration and wires the chat service. The provider
// client is optional; without credentials the service still serves all
// file-backed memory operations.
func newService() (*core.Service, *log.Logger, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger()

	store, err := memory.NewStore(cfg.MemoryRoot, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing store: %w", err)
	}

	var provider core.Provider
	client, err := llm.NewClient(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		BaseURL:    cfg.BaseURL,
		ChatModel:  cfg.ChatModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			return nil, nil, fmt.Errorf("initializing provider client: %w", err)
		}
		logger.Debug("no provider credentials; summarization and extraction disabled")
	} else {
		provider = client
	}

	return core.NewService(store, provider, logger, cfg.ChatModel, cfg.RetrieveDays), logger, nil
}
