// ABOUTME: Summarizer compresses daily records at the 3d and 7d retention stages
// ABOUTME: Sends a fixed instruction plus the source text and relays the result verbatim
package core

import (
	"context"
	"fmt"

	"github.com/harper/memoria/internal/memory"
)

const (
	stage3dPrompt = "Summarize the following conversation log as Markdown bullet points, " +
		"five lines at most. Emphasize only proper nouns and likes/dislikes."
	stage7dPrompt = "Compress the following conversation log into an even shorter summary. " +
		"Limit it to proper nouns, habits, and likes/dislikes. Markdown bullet points, three lines at most."
)

// Completer is the slice of the provider client the core needs
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, map[string]int, error)
}

// Summarizer produces derived summaries for the retention scheduler
type Summarizer struct {
	client Completer
}

// NewSummarizer creates a Summarizer backed by the given provider client
func NewSummarizer(client Completer) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize compresses source text for the given retention stage
func (s *Summarizer) Summarize(ctx context.Context, stage memory.Stage, source string) (string, error) {
	var prompt string
	switch stage {
	case memory.Stage3d:
		prompt = stage3dPrompt
	case memory.Stage7d:
		prompt = stage7dPrompt
	default:
		return "", fmt.Errorf("unknown summary stage %q", stage)
	}

	summary, _, err := s.client.Complete(ctx, prompt+"\n\n"+source)
	if err != nil {
		return "", fmt.Errorf("failed to summarize at stage %s: %w", stage, err)
	}
	return summary, nil
}
