package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"chat-relay/internal/domain"
	"chat-relay/internal/repository"
)

type mockFeedbackRepo struct {
	lastCreated domain.Feedback
	createErr   error
	summary     domain.FeedbackSummary
	summaryErr  error
}

func (m *mockFeedbackRepo) Create(_ context.Context, feedback domain.Feedback) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreated = feedback
	return nil
}

func (m *mockFeedbackRepo) Summary(_ context.Context) (domain.FeedbackSummary, error) {
	return m.summary, m.summaryErr
}

var _ repository.FeedbackRepository = (*mockFeedbackRepo)(nil)

func TestFeedbackServiceRecord_NormalizesAndDefaults(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := NewFeedbackService(repo)

	fb, err := svc.Record(context.Background(), " UP ", "  gracias  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fb.ID == "" || fb.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and created_at, got %+v", fb)
	}
	if repo.lastCreated.Rating != domain.RatingUp || repo.lastCreated.Content != "gracias" {
		t.Fatalf("expected normalized rating/content, got %+v", repo.lastCreated)
	}
}

func TestFeedbackServiceRecord_InvalidRating(t *testing.T) {
	svc := NewFeedbackService(&mockFeedbackRepo{})
	for _, r := range []domain.Rating{"", "meh", "sideways"} {
		if _, err := svc.Record(context.Background(), r, "x"); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %q: expected ErrInvalidRating, got %v", r, err)
		}
	}
}

func TestFeedbackServiceRecord_StoreError(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewFeedbackService(&mockFeedbackRepo{createErr: storeErr})
	if _, err := svc.Record(context.Background(), domain.RatingDown, "x"); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestFeedbackService_NotConfigured(t *testing.T) {
	var svc *FeedbackService
	if _, err := svc.Record(context.Background(), domain.RatingUp, "x"); !errors.Is(err, ErrFeedbackServiceNotConfigured) {
		t.Fatalf("expected ErrFeedbackServiceNotConfigured, got %v", err)
	}
	svc = NewFeedbackService(nil)
	if _, err := svc.Summary(context.Background()); !errors.Is(err, ErrFeedbackServiceNotConfigured) {
		t.Fatalf("expected ErrFeedbackServiceNotConfigured, got %v", err)
	}
}

func TestFeedbackServiceSummary_WithMemoryStore(t *testing.T) {
	svc := NewFeedbackService(NewMemoryFeedbackStore())
	ctx := context.Background()
	for _, r := range []domain.Rating{domain.RatingUp, domain.RatingUp, domain.RatingDown} {
		if _, err := svc.Record(ctx, r, "respuesta"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Up != 2 || summary.Down != 1 {
		t.Fatalf("expected 2 up / 1 down, got %+v", summary)
	}
}

func TestFeedbackServiceRecord_StoresExcerptOnly(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := NewFeedbackService(repo)

	long := strings.Repeat("ñ", FeedbackExcerptLimit+50)
	fb, err := svc.Record(context.Background(), domain.RatingUp, long)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n := utf8.RuneCountInString(repo.lastCreated.Content); n != FeedbackExcerptLimit {
		t.Fatalf("expected %d runes stored, got %d", FeedbackExcerptLimit, n)
	}
	if !utf8.ValidString(fb.Content) {
		t.Fatalf("expected valid utf-8 excerpt")
	}

	if _, err := svc.Record(context.Background(), domain.RatingUp, "corto"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastCreated.Content != "corto" {
		t.Fatalf("expected short content untouched, got %q", repo.lastCreated.Content)
	}
}
