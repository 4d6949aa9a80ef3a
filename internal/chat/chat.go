// Package chat implements the supportive counselor chat for Safenet.
// Unlike classification, chat has no rule-based fallback: when the model
// is unavailable the error surfaces to the caller.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/internal/config"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Request carries a user message with prior conversation history.
type Request struct {
	Message  string    `json:"message"`
	History  []Message `json:"history"`
	Language string    `json:"language"`
}

// Response is the counselor's reply.
type Response struct {
	Message   string    `json:"message"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// System defines the public contract for chat operations.
type System interface {
	Handler() *Handler
	Send(ctx context.Context, req Request) (*Response, error)
}

type service struct {
	agent  gaconfig.AgentConfig
	logger *slog.Logger
}

// New creates a chat service implementing the System interface.
func New(agent gaconfig.AgentConfig, logger *slog.Logger) System {
	return &service{
		agent:  agent,
		logger: logger.With("system", "chat"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Send(ctx context.Context, req Request) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if !config.AgentConfigured(&s.agent) {
		return nil, ErrNotConfigured
	}

	language := classify.NormalizeLanguage(req.Language)

	a, err := agent.New(&s.agent)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrUnavailable, err)
	}

	prompt := composePrompt(language, req.History, message)

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrUnavailable, err)
	}

	s.logger.Info("counselor reply produced", "language", language, "history_turns", len(req.History))

	return &Response{
		Message:   resp.Content(),
		Language:  language,
		Timestamp: time.Now(),
	}, nil
}

func composePrompt(language string, history []Message, message string) string {
	var sb strings.Builder
	sb.WriteString(counselorPrompt(language))

	if len(history) > 0 {
		sb.WriteString("\n\nConversation so far:")
		for _, m := range history {
			sb.WriteString("\n")
			sb.WriteString(roleLabel(m.Role))
			sb.WriteString(": ")
			sb.WriteString(m.Content)
		}
	}

	sb.WriteString("\n\nUser: ")
	sb.WriteString(message)
	sb.WriteString("\nCounselor:")

	return sb.String()
}

func roleLabel(role string) string {
	if role == "assistant" {
		return "Counselor"
	}
	return "User"
}
