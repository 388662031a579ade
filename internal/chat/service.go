// Package chat implements the completion gateway: it turns a single user
// message into a persona-conditioned completion request and extracts the
// reply text.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/ALPHA-CODE-HUB/voice-vot/internal/llm"
	"github.com/ALPHA-CODE-HUB/voice-vot/internal/persona"
)

// Sampling parameters sent on every completion request.
const (
	maxTokens   = 500
	temperature = 0.7

	// routeFallback lets OpenRouter substitute an alternate backing model
	// when the primary is unavailable.
	routeFallback = "fallback"
)

// Service is the completion gateway. It is stateless across calls: every
// request gets a fresh payload and no conversation history is retained
// server-side.
type Service struct {
	provider llm.Provider
	model    string
	prompt   string
}

// New creates a chat service backed by the given provider and model. The
// persona prompt is built once here and reused verbatim on every call.
func New(provider llm.Provider, model string) *Service {
	return &Service{
		provider: provider,
		model:    model,
		prompt:   persona.SystemPrompt(),
	}
}

// Respond sends the user message to the completion provider conditioned on
// the persona prompt and returns the reply text with surrounding whitespace
// trimmed. The message is sent verbatim; no truncation is performed.
func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is empty")
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: s.prompt},
			{Role: llm.RoleUser, Content: message},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Route:       routeFallback,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Content), nil
}
