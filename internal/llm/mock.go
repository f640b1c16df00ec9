package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response Completion
	Err      error

	mu      sync.Mutex
	calls   int
	lastReq CompletionRequest
}

// NewMockClient devuelve un mock que responde siempre con content.
func NewMockClient(content string) *MockClient {
	return &MockClient{Response: Completion{Choices: []string{content}}}
}

func (m *MockClient) Complete(_ context.Context, req CompletionRequest) (Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastReq = req
	return m.Response, m.Err
}

// LastRequest devuelve la ultima request recibida.
func (m *MockClient) LastRequest() CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}

func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
