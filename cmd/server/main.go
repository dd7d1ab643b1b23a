// ABOUTME: Main entry point for the Memoria HTTP backend
// ABOUTME: Initializes config, storage, the provider client, and the chi router
package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/harper/memoria/internal/config"
	"github.com/harper/memoria/internal/core"
	"github.com/harper/memoria/internal/llm"
	"github.com/harper/memoria/internal/memory"
	"github.com/harper/memoria/internal/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found (this is okay for production)", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// One-time storage initialization, before any other operation
	store, err := memory.NewStore(cfg.MemoryRoot, logger)
	if err != nil {
		logger.Fatal("failed to initialize memory store", "error", err)
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
			logger.Fatal("failed to initialize provider client", "error", err)
		}
		logger.Warn("OPENAI_API_KEY not set - chat replies degrade to a placeholder")
	} else {
		provider = client
	}

	service := core.NewService(store, provider, logger, cfg.ChatModel, cfg.RetrieveDays)
	router := server.New(service, logger).Router()

	// Start HTTP server in a goroutine so it doesn't block signal handling
	go func() {
		logger.Info("HTTP server starting", "address", "http://localhost:"+cfg.Port, "model", cfg.ChatModel)
		if err := http.ListenAndServe(":"+cfg.Port, router); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", "error", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan
	logger.Info("server shutting down")
}
