// ABOUTME: FactExtractor distills one chat exchange into a categorized fact candidate
// ABOUTME: Expects 'category: text' output; anything without a colon is dropped
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/memoria/internal/models"
)

const extractPrompt = "From the following chat excerpt, extract the important long-term " +
	"information about the user (personality, likes/dislikes, repeated mentions, strong " +
	"emotions) as a minimal one-line summary with a category (like/dislike/habit/other). " +
	"Reply with exactly one line in the form 'category: text'."

// FactExtractor turns chat exchanges into long-term fact candidates
type FactExtractor struct {
	client Completer
}

// NewFactExtractor creates a FactExtractor backed by the given provider client
func NewFactExtractor(client Completer) *FactExtractor {
	return &FactExtractor{client: client}
}

// Extract distills a user/assistant exchange into a fact candidate.
// ok is false when the model's output isn't a parseable 'category: text'
// line; such output is dropped, never retried.
func (e *FactExtractor) Extract(ctx context.Context, userText, assistantText string) (models.FactCandidate, bool, error) {
	exchange := fmt.Sprintf("user: %s\nassistant: %s", userText, assistantText)

	out, _, err := e.client.Complete(ctx, extractPrompt+"\n\n"+exchange)
	if err != nil {
		return models.FactCandidate{}, false, fmt.Errorf("failed to extract fact: %w", err)
	}

	candidate, ok := ParseFactLine(out)
	return candidate, ok, nil
}

// ParseFactLine splits model output on the first colon into a categorized
// fact candidate
func ParseFactLine(line string) (models.FactCandidate, bool) {
	category, text, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return models.FactCandidate{}, false
	}

	candidate := models.FactCandidate{
		Category: strings.TrimSpace(category),
		Text:     strings.TrimSpace(text),
	}
	if candidate.Text == "" {
		return models.FactCandidate{}, false
	}
	return candidate, true
}
