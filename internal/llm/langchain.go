package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// LangChainClient implementa CompletionClient sobre un modelo de langchaingo.
type LangChainClient struct {
	model   contentGenerator
	timeout time.Duration
}

// NewLangChainClient construye un cliente langchaingo contra un endpoint OpenAI-compatible.
func NewLangChainClient(baseURL, apiKey, model string, timeout time.Duration) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	m, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("init langchain openai: %w", err)
	}
	return &LangChainClient{model: m, timeout: timeout}, nil
}

func (c *LangChainClient) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	content := make([]llms.MessageContent, 0, len(req.Messages))
	for _, m := range req.Messages {
		content = append(content, llms.TextParts(toLangChainRole(m.Role), m.Content))
	}

	callOpts := []llms.CallOption{
		llms.WithTemperature(req.Temperature),
		llms.WithMaxTokens(req.MaxTokens),
	}
	if req.Model != "" {
		callOpts = append(callOpts, llms.WithModel(req.Model))
	}

	resp, err := c.model.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		return Completion{}, fmt.Errorf("generate content: %w", err)
	}

	out := Completion{}
	if resp == nil {
		return out, nil
	}
	for _, ch := range resp.Choices {
		if ch == nil {
			out.Choices = append(out.Choices, "")
			continue
		}
		out.Choices = append(out.Choices, ch.Content)
	}
	return out, nil
}

// Los roles desconocidos se pasan tal cual y el proveedor decide si los acepta.
func toLangChainRole(role string) schema.ChatMessageType {
	switch role {
	case "system":
		return schema.ChatMessageTypeSystem
	case "assistant":
		return schema.ChatMessageTypeAI
	case "user":
		return schema.ChatMessageTypeHuman
	default:
		return schema.ChatMessageType(role)
	}
}
