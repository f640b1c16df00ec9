package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"chat-relay/internal/domain"
)

var (
	ErrBusy                = errors.New("a response is already in progress")
	ErrEmptyInput          = errors.New("empty message")
	ErrNothingToRegenerate = errors.New("nothing to regenerate")
	ErrRelayNotConfigured  = errors.New("relay not configured")
)

// Relayer envia la conversacion al relay y devuelve la respuesta del asistente.
type Relayer interface {
	Relay(ctx context.Context, messages []domain.Message) (domain.Message, error)
}

// FeedbackReporter informa al servidor las valoraciones aplicadas.
type FeedbackReporter interface {
	Report(ctx context.Context, rating domain.Rating, content string) error
}

// Session aplica las acciones del usuario sobre la conversacion.
// Permite una sola llamada al relay a la vez; mientras esta ocupada, Send y
// Regenerate devuelven ErrBusy sin tocar la conversacion.
type Session struct {
	store    *Store
	relay    Relayer
	notifier Notifier
	feedback FeedbackReporter
	logger   *zap.Logger

	mu   sync.Mutex
	busy bool
}

// NewSession crea una sesion de chat. notifier, feedback y logger son opcionales.
// Sin relay, Send y Regenerate devuelven ErrRelayNotConfigured.
func NewSession(store *Store, relay Relayer, notifier Notifier, feedback FeedbackReporter, logger *zap.Logger) *Session {
	if store == nil {
		store = NewStore()
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:    store,
		relay:    relay,
		notifier: notifier,
		feedback: feedback,
		logger:   logger,
	}
}

func (s *Session) Store() *Store {
	return s.store
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Session) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Send agrega el mensaje del usuario y pide la respuesta con todo el historial.
// Si el relay falla el mensaje del usuario queda en la conversacion.
func (s *Session) Send(ctx context.Context, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, ErrEmptyInput
	}
	if s.relay == nil {
		return domain.Message{}, ErrRelayNotConfigured
	}
	if !s.acquire() {
		return domain.Message{}, ErrBusy
	}
	defer s.release()

	s.store.Append(domain.NewUserMessage(text))

	reply, err := s.relay.Relay(ctx, s.store.Messages())
	if err != nil {
		s.logger.Warn("send failed", zap.Error(err))
		s.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to get response from AI: " + err.Error(),
			Variant:     VariantDestructive,
		})
		return domain.Message{}, fmt.Errorf("send: %w", err)
	}

	reply = domain.NewAssistantMessage(reply.Content)
	s.store.Append(reply)
	return reply, nil
}

// Regenerate descarta el ultimo mensaje y pide una respuesta nueva para el contexto anterior.
// El reemplazo solo ocurre si el relay responde bien.
func (s *Session) Regenerate(ctx context.Context) (domain.Message, error) {
	if s.store.Len() == 0 {
		return domain.Message{}, ErrNothingToRegenerate
	}
	if s.relay == nil {
		return domain.Message{}, ErrRelayNotConfigured
	}
	if !s.acquire() {
		return domain.Message{}, ErrBusy
	}
	defer s.release()

	history := s.store.Messages()
	if len(history) == 0 {
		return domain.Message{}, ErrNothingToRegenerate
	}

	reply, err := s.relay.Relay(ctx, history[:len(history)-1])
	if err != nil {
		s.logger.Warn("regenerate failed", zap.Error(err))
		s.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to regenerate response. Please try again.",
			Variant:     VariantDestructive,
		})
		return domain.Message{}, fmt.Errorf("regenerate: %w", err)
	}

	reply = domain.NewAssistantMessage(reply.Content)
	s.store.ReplaceLast(reply)
	return reply, nil
}

// Rate valora la ultima respuesta. El aviso se muestra aunque la valoracion no aplique.
func (s *Session) Rate(ctx context.Context, rating domain.Rating) bool {
	if !rating.Valid() {
		return false
	}

	rated, applied := s.store.RateLast(rating)

	desc := "You liked the message."
	if rating == domain.RatingDown {
		desc = "You disliked the message."
	}
	s.notifier.Notify(Notification{
		Title:       "Rating Submitted",
		Description: desc,
		Variant:     VariantDefault,
	})

	if applied && s.feedback != nil {
		if err := s.feedback.Report(ctx, rating, rated.Content); err != nil {
			s.logger.Warn("feedback report failed", zap.Error(err))
		}
	}
	return applied
}
