package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"chat-relay/internal/domain"
	"chat-relay/internal/repository"
)

type memoryFeedbackStore struct {
	mu     sync.Mutex
	events []domain.Feedback
}

// NewMemoryFeedbackStore guarda el feedback en memoria; se pierde al reiniciar.
func NewMemoryFeedbackStore() repository.FeedbackRepository {
	return &memoryFeedbackStore{}
}

func (s *memoryFeedbackStore) Create(_ context.Context, feedback domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, feedback)
	return nil
}

func (s *memoryFeedbackStore) Summary(_ context.Context) (domain.FeedbackSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out domain.FeedbackSummary
	for _, e := range s.events {
		switch e.Rating {
		case domain.RatingUp:
			out.Up++
		case domain.RatingDown:
			out.Down++
		}
	}
	return out, nil
}

const redisFeedbackRecordScript = `
redis.call("INCR", KEYS[1])
redis.call("LPUSH", KEYS[2], ARGV[1])
redis.call("LTRIM", KEYS[2], 0, tonumber(ARGV[2]) - 1)
return 1
`

type redisFeedbackClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

type redisFeedbackStore struct {
	client    redisFeedbackClient
	prefix    string
	maxEvents int
}

// NewRedisFeedbackStore mantiene contadores por rating y una lista acotada de eventos recientes.
func NewRedisFeedbackStore(client *redis.Client) repository.FeedbackRepository {
	if client == nil {
		return nil
	}
	return &redisFeedbackStore{
		client:    client,
		prefix:    "feedback:",
		maxEvents: 1000,
	}
}

func (s *redisFeedbackStore) counterKey(rating domain.Rating) string {
	return s.prefix + "count:" + string(rating)
}

func (s *redisFeedbackStore) Create(ctx context.Context, feedback domain.Feedback) error {
	payload, err := json.Marshal(feedback)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	keys := []string{s.counterKey(feedback.Rating), s.prefix + "events"}
	return s.client.Eval(ctx, redisFeedbackRecordScript, keys, string(payload), s.maxEvents).Err()
}

func (s *redisFeedbackStore) Summary(ctx context.Context) (domain.FeedbackSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	vals, err := s.client.MGet(ctx, s.counterKey(domain.RatingUp), s.counterKey(domain.RatingDown)).Result()
	if err != nil {
		return domain.FeedbackSummary{}, err
	}
	if len(vals) != 2 {
		return domain.FeedbackSummary{}, fmt.Errorf("unexpected mget result size %d", len(vals))
	}
	up, err := parseRedisCounter(vals[0])
	if err != nil {
		return domain.FeedbackSummary{}, err
	}
	down, err := parseRedisCounter(vals[1])
	if err != nil {
		return domain.FeedbackSummary{}, err
	}
	return domain.FeedbackSummary{Up: up, Down: down}, nil
}

// Una clave inexistente llega como nil y cuenta como cero.
func parseRedisCounter(v interface{}) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse counter: %w", err)
		}
		return n, nil
	case int64:
		return val, nil
	default:
		return 0, fmt.Errorf("unexpected counter type %T", v)
	}
}
