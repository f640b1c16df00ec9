package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chat-relay/internal/domain"
)

// HTTPRelay implementa Relayer contra el endpoint POST /relay del servidor.
type HTTPRelay struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRelay construye el cliente del relay. timeout <= 0 no fija limite.
func NewHTTPRelay(baseURL string, timeout time.Duration) *HTTPRelay {
	httpClient := &http.Client{}
	if timeout > 0 {
		httpClient.Timeout = timeout
	}
	return &HTTPRelay{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

type wireMessage struct {
	Role    domain.Role `json:"role"`
	Content string      `json:"content"`
}

type relayRequest struct {
	Messages []wireMessage `json:"messages"`
}

type relayResponse struct {
	Content string `json:"content"`
}

func (r *HTTPRelay) Relay(ctx context.Context, messages []domain.Message) (domain.Message, error) {
	body := relayRequest{Messages: make([]wireMessage, 0, len(messages))}
	for _, m := range messages {
		body.Messages = append(body.Messages, wireMessage{Role: m.Role, Content: m.Content})
	}

	var out relayResponse
	if err := r.postJSON(ctx, "/relay", body, &out); err != nil {
		return domain.Message{}, err
	}
	return domain.NewAssistantMessage(out.Content), nil
}

// Report envia una valoracion a POST /feedback.
func (r *HTTPRelay) Report(ctx context.Context, rating domain.Rating, content string) error {
	body := struct {
		Rating  domain.Rating `json:"rating"`
		Content string        `json:"content"`
	}{Rating: rating, Content: content}
	return r.postJSON(ctx, "/feedback", body, nil)
}

func (r *HTTPRelay) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
