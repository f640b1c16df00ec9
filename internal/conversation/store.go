package conversation

import (
	"sync"

	"chat-relay/internal/domain"
)

// Store guarda la conversacion en memoria en orden cronologico.
// Solo el ultimo mensaje puede reemplazarse o valorarse.
type Store struct {
	mu       sync.Mutex
	messages []domain.Message
}

func NewStore() *Store {
	return &Store{}
}

// Append agrega el mensaje al final sin validar el orden de roles.
func (s *Store) Append(msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// ReplaceLast reemplaza el ultimo mensaje. Devuelve false si la conversacion esta vacia.
func (s *Store) ReplaceLast(msg domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return false
	}
	s.messages[len(s.messages)-1] = msg
	return true
}

// RateLast valora el ultimo mensaje si es del asistente y devuelve el mensaje valorado.
func (s *Store) RateLast(rating domain.Rating) (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return domain.Message{}, false
	}
	last := &s.messages[len(s.messages)-1]
	if last.Role != domain.RoleAssistant {
		return domain.Message{}, false
	}
	last.Rating = rating
	return *last, true
}

// Messages devuelve una copia de la conversacion.
func (s *Store) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Store) Last() (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return domain.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
