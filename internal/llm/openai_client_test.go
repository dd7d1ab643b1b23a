// ABOUTME: Tests for provider client construction rules
// ABOUTME: Verifies configuration fallbacks and the not-configured sentinel
package llm

import (
	"errors"
	"testing"
	"time"
)

func TestNewClient_NotConfigured(t *testing.T) {
	_, err := NewClient(&ClientConfig{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("NewClient() error = %v, want ErrNotConfigured", err)
	}
}

func TestNewClient_WithAPIKey(t *testing.T) {
	client, err := NewClient(&ClientConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.Model() != DefaultChatModel {
		t.Errorf("Model() = %q, want %q", client.Model(), DefaultChatModel)
	}
	if client.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.timeout)
	}
}

func TestNewClient_BaseURLWithoutKey(t *testing.T) {
	// Local OpenAI-compatible servers don't need a real key
	client, err := NewClient(&ClientConfig{
		BaseURL:   "http://localhost:11434/v1",
		ChatModel: "llama3",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.Model() != "llama3" {
		t.Errorf("Model() = %q, want llama3", client.Model())
	}
}
