package llm

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter estima cuantos tokens ocupa un prompt.
type TokenCounter interface {
	Count(messages []ChatMessage) int
}

type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter usa el encoding del modelo y cae a cl100k_base si el modelo no es conocido.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
		if err != nil {
			return nil, fmt.Errorf("load tiktoken encoding: %w", err)
		}
	}
	return &TiktokenCounter{enc: enc}, nil
}

func (c *TiktokenCounter) Count(messages []ChatMessage) int {
	if c == nil || c.enc == nil {
		return 0
	}
	total := 0
	for _, m := range messages {
		total += len(c.enc.Encode(m.Role, nil, nil))
		total += len(c.enc.Encode(m.Content, nil, nil))
	}
	return total
}
