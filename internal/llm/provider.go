package llm

import "context"

// CompletionClient define la interfaz para pedir completions a un LLM.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest agrupa los parametros de una llamada al proveedor.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// Completion contiene el texto de cada choice devuelta por el proveedor.
type Completion struct {
	Choices []string
}

// FirstContent devuelve el texto de la primera choice o "" si no hay ninguna.
func (c Completion) FirstContent() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0]
}
