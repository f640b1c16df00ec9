package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"chat-relay/internal/domain"
	"chat-relay/internal/llm"
)

var (
	ErrRelayNotConfigured = errors.New("relay service not configured")
	ErrRelayUpstream      = errors.New("relay upstream failure")
)

// RelayOptions son los parametros fijos de cada llamada al proveedor.
type RelayOptions struct {
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// RelayService reenvia una conversacion al proveedor LLM y devuelve una sola respuesta.
// No guarda estado entre llamadas.
type RelayService struct {
	client  llm.CompletionClient
	opts    RelayOptions
	counter llm.TokenCounter
	logger  *zap.Logger
}

func NewRelayService(client llm.CompletionClient, opts RelayOptions, counter llm.TokenCounter, logger *zap.Logger) *RelayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelayService{
		client:  client,
		opts:    opts,
		counter: counter,
		logger:  logger,
	}
}

// BuildRequest antepone el system prompt y copia solo role y content de cada mensaje.
func (s *RelayService) BuildRequest(messages []domain.Message) llm.CompletionRequest {
	out := make([]llm.ChatMessage, 0, len(messages)+1)
	out = append(out, llm.ChatMessage{Role: string(domain.RoleSystem), Content: s.opts.SystemPrompt})
	for _, m := range messages {
		out = append(out, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return llm.CompletionRequest{
		Model:       s.opts.Model,
		Messages:    out,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	}
}

// Relay hace una unica llamada al proveedor, sin reintentos.
func (s *RelayService) Relay(ctx context.Context, messages []domain.Message) (domain.Message, error) {
	if s == nil || s.client == nil {
		return domain.Message{}, ErrRelayNotConfigured
	}

	req := s.BuildRequest(messages)
	fields := []zap.Field{zap.Int("messages", len(messages))}
	if s.counter != nil {
		fields = append(fields, zap.Int("prompt_tokens_estimate", s.counter.Count(req.Messages)))
	}

	start := time.Now()
	completion, err := s.client.Complete(ctx, req)
	fields = append(fields, zap.Duration("upstream_latency", time.Since(start)))
	if err != nil {
		s.logger.Error("relay upstream call failed", append(fields, zap.Error(err))...)
		return domain.Message{}, fmt.Errorf("%w: %w", ErrRelayUpstream, err)
	}

	content := completion.FirstContent()
	s.logger.Info("relay completed", append(fields, zap.Int("content_length", len(content)))...)
	return domain.NewAssistantMessage(content), nil
}
