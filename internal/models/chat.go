// ABOUTME: Request and response shapes for the chat API
// ABOUTME: Mirrors the JSON contract served by the HTTP layer
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse is the reply to a chat turn, including any best-effort
// memory side effects that ran after the model answered
type ChatResponse struct {
	TurnID        string         `json:"turnId"`
	Message       string         `json:"message"`
	Usage         map[string]int `json:"usage,omitempty"`
	MemoryActions map[string]any `json:"memoryActions,omitempty"`
}

// NewTurnID generates a unique, time-sortable identifier for a chat turn
func NewTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
