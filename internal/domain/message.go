package domain

// Role identifica al autor de un mensaje.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem solo se usa en la request hacia el proveedor LLM.
	RoleSystem Role = "system"
)

// Rating es la valoracion que el usuario asigna a una respuesta del asistente.
type Rating string

const (
	RatingNone Rating = ""
	RatingUp   Rating = "up"
	RatingDown Rating = "down"
)

// Valid indica si el rating es up o down.
func (r Rating) Valid() bool {
	return r == RatingUp || r == RatingDown
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Rating  Rating `json:"rating,omitempty"`
}

// NewUserMessage crea un mensaje con rol user.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage crea un mensaje con rol assistant.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
