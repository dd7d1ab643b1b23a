// ABOUTME: OpenAI client for chat completion and streaming
// ABOUTME: Wraps the provider SDK with timeouts and retry with backoff
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/memoria/internal/util"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

// ErrNotConfigured indicates no API key or base URL was provided, so no
// provider client can be built. Callers degrade to placeholder replies.
var ErrNotConfigured = errors.New("llm: provider not configured")

// ClientConfig holds configuration for the provider client
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Client wraps the OpenAI API client with retry logic
type Client struct {
	client     *openai.Client
	chatModel  string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a provider client. A base URL without an API key is
// allowed so local OpenAI-compatible servers work; a placeholder key is
// sent since those servers ignore it. With neither key nor base URL the
// client cannot be configured and ErrNotConfigured is returned.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = "not-needed"
	}

	providerCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		providerCfg.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:     openai.NewClientWithConfig(providerCfg),
		chatModel:  chatModel,
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Model returns the configured chat model name
func (c *Client) Model() string {
	return c.chatModel
}

// Complete sends a prompt and returns the completion text with token usage
func (c *Client) Complete(ctx context.Context, prompt string) (string, map[string]int, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.Backoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		usage := map[string]int{
			"prompt_tokens":     resp.Usage.PromptTokens,
			"completion_tokens": resp.Usage.CompletionTokens,
			"total_tokens":      resp.Usage.TotalTokens,
		}
		return resp.Choices[0].Message.Content, usage, nil
	}

	return "", nil, fmt.Errorf("completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// Stream sends a prompt and delivers completion fragments to onDelta as
// they arrive. Returns once the provider terminates the stream. No retry:
// the caller decides whether to fall back to a non-streaming completion.
func (c *Client) Stream(ctx context.Context, prompt string, onDelta func(chunk string)) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream, err := c.client.CreateChatCompletionStream(callCtx, openai.ChatCompletionRequest{
		Model:  c.chatModel,
		Stream: true,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to open completion stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream receive failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if chunk := resp.Choices[0].Delta.Content; chunk != "" {
			onDelta(chunk)
		}
	}
}
