// ABOUTME: Service orchestrates a chat turn across memory, retrieval, and the provider
// ABOUTME: Memory side effects after the reply are best-effort and never fail the turn
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/memoria/internal/memory"
	"github.com/harper/memoria/internal/models"
)

// PlaceholderReply is returned when no provider is configured, so a chat
// turn still completes visibly instead of failing
const PlaceholderReply = "(model provider not configured: set OPENAI_API_KEY or OPENAI_BASE_URL)"

// Provider is the model-completion collaborator: one-shot completion and
// fragment streaming. *llm.Client implements it.
type Provider interface {
	Completer
	Stream(ctx context.Context, prompt string, onDelta func(chunk string)) error
}

// Service wires the memory store, retrieval, and the provider client into
// the operations the HTTP, CLI, and MCP surfaces expose
type Service struct {
	store        *memory.Store
	client       Provider // nil when the provider is not configured
	summarizer   memory.Summarizer
	extractor    *FactExtractor
	logger       *log.Logger
	model        string
	retrieveDays int
}

// NewService creates the chat service. client may be nil; chat then
// degrades to a placeholder reply and summarization/extraction are skipped.
func NewService(store *memory.Store, client Provider, logger *log.Logger, model string, retrieveDays int) *Service {
	s := &Service{
		store:        store,
		client:       client,
		logger:       logger,
		model:        model,
		retrieveDays: retrieveDays,
	}
	if client != nil {
		s.summarizer = NewSummarizer(client)
		s.extractor = NewFactExtractor(client)
	}
	return s
}

// Store exposes the underlying memory store to the transport layers
func (s *Service) Store() *memory.Store {
	return s.store
}

// ModelName returns the configured chat model, for health reporting
func (s *Service) ModelName() string {
	return s.model
}

// ChatTurn runs one non-streaming chat exchange: log the user turn,
// retrieve memories, complete, log the reply, then best-effort fact
// extraction and save
func (s *Service) ChatTurn(ctx context.Context, message string) (models.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return models.ChatResponse{}, fmt.Errorf("%w: empty message", memory.ErrInvalidInput)
	}

	if _, err := s.store.Append("user", message, time.Now()); err != nil {
		return models.ChatResponse{}, fmt.Errorf("failed to log user turn: %w", err)
	}

	prompt := s.buildPrompt(message)

	reply := PlaceholderReply
	var usage map[string]int
	if s.client != nil {
		text, u, err := s.client.Complete(ctx, prompt)
		if err != nil {
			return models.ChatResponse{}, fmt.Errorf("completion failed: %w", err)
		}
		reply, usage = text, u
	}

	if _, err := s.store.Append("assistant", reply, time.Now()); err != nil {
		s.logger.Warn("failed to log assistant turn", "error", err)
	}

	return models.ChatResponse{
		TurnID:        models.NewTurnID(),
		Message:       reply,
		Usage:         usage,
		MemoryActions: s.recordFact(ctx, message, reply),
	}, nil
}

// StreamChat runs one streaming chat exchange, delivering reply fragments
// to emit. A provider failure before any fragment arrived falls back to a
// single non-streaming completion; if that fails too the stream just ends.
func (s *Service) StreamChat(ctx context.Context, message string, emit func(chunk string)) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: empty message", memory.ErrInvalidInput)
	}

	if _, err := s.store.Append("user", message, time.Now()); err != nil {
		return fmt.Errorf("failed to log user turn: %w", err)
	}

	prompt := s.buildPrompt(message)

	var reply strings.Builder
	if s.client == nil {
		reply.WriteString(PlaceholderReply)
		emit(PlaceholderReply)
	} else {
		err := s.client.Stream(ctx, prompt, func(chunk string) {
			reply.WriteString(chunk)
			emit(chunk)
		})
		if err != nil && reply.Len() == 0 {
			s.logger.Warn("stream failed, falling back to single completion", "error", err)
			if text, _, cerr := s.client.Complete(ctx, prompt); cerr != nil {
				s.logger.Error("fallback completion failed", "error", cerr)
			} else if text != "" {
				reply.WriteString(text)
				emit(text)
			}
		} else if err != nil {
			s.logger.Warn("stream ended early", "error", err)
		}
	}

	if final := reply.String(); final != "" {
		if _, err := s.store.Append("assistant", final, time.Now()); err != nil {
			s.logger.Warn("failed to log assistant turn", "error", err)
		}
		s.recordFact(ctx, message, final)
	}
	return nil
}

// RunMaintenance executes one retention pass with the configured summarizer
func (s *Service) RunMaintenance(ctx context.Context) models.MaintenanceReport {
	return s.store.RunMaintenance(ctx, s.summarizer)
}

// buildPrompt merges the user message with retrieved memories
func (s *Service) buildPrompt(userText string) string {
	memories, err := s.store.Collect("", s.retrieveDays)
	if err != nil {
		s.logger.Warn("memory retrieval failed", "error", err)
		memories = ""
	}
	if memories == "" {
		memories = "(none)"
	}

	return "[User Message]\n" + strings.TrimSpace(userText) +
		"\n\n[Memories]\n" + memories +
		"\n\nInstructions: answer the user's message politely, briefly, and clearly."
}

// recordFact extracts and saves a long-term fact from the finished
// exchange. Every failure here is swallowed: the chat reply already
// succeeded and must not be aborted by memory bookkeeping.
func (s *Service) recordFact(ctx context.Context, userText, assistantText string) map[string]any {
	if s.extractor == nil {
		return nil
	}

	candidate, ok, err := s.extractor.Extract(ctx, userText, assistantText)
	if err != nil {
		s.logger.Warn("fact extraction failed", "error", err)
		return nil
	}
	if !ok {
		s.logger.Debug("fact extraction produced no parseable line")
		return nil
	}

	result, err := s.store.AppendFact(candidate.Text, candidate.Category)
	if err != nil {
		s.logger.Warn("fact save failed", "error", err)
		return nil
	}

	return map[string]any{
		"long_term": map[string]any{
			"extracted": candidate.Category + ": " + candidate.Text,
			"result":    result,
		},
	}
}
