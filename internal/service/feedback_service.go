package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"chat-relay/internal/domain"
	"chat-relay/internal/repository"
)

// FeedbackService registra las valoraciones que llegan desde el cliente de chat.
type FeedbackService struct {
	store repository.FeedbackRepository
}

// FeedbackExcerptLimit es la cantidad maxima de runas de la respuesta que se guardan con la valoracion.
const FeedbackExcerptLimit = 200

var (
	ErrFeedbackServiceNotConfigured = errors.New("feedback service not configured")
	ErrInvalidRating                = errors.New("invalid rating")
)

func NewFeedbackService(store repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{store: store}
}

func (s *FeedbackService) Record(ctx context.Context, rating domain.Rating, content string) (domain.Feedback, error) {
	if s == nil || s.store == nil {
		return domain.Feedback{}, ErrFeedbackServiceNotConfigured
	}

	rating = domain.Rating(strings.ToLower(strings.TrimSpace(string(rating))))
	if !rating.Valid() {
		return domain.Feedback{}, ErrInvalidRating
	}

	fb := domain.Feedback{
		ID:        uuid.NewString(),
		Rating:    rating,
		Content:   excerpt(strings.TrimSpace(content), FeedbackExcerptLimit),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, fb); err != nil {
		return domain.Feedback{}, err
	}
	return fb, nil
}

func (s *FeedbackService) Summary(ctx context.Context) (domain.FeedbackSummary, error) {
	if s == nil || s.store == nil {
		return domain.FeedbackSummary{}, ErrFeedbackServiceNotConfigured
	}
	return s.store.Summary(ctx)
}

func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
