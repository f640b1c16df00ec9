package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"chat-relay/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback domain.Feedback) error
	Summary(ctx context.Context) (domain.FeedbackSummary, error)
}

type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

func (r *PgFeedbackRepository) Create(ctx context.Context, feedback domain.Feedback) error {
	const query = `
		INSERT INTO feedback (id, rating, content, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		feedback.ID,
		string(feedback.Rating),
		feedback.Content,
		feedback.CreatedAt,
	)
	return err
}

func (r *PgFeedbackRepository) Summary(ctx context.Context) (domain.FeedbackSummary, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE rating = 'up'),
			COUNT(*) FILTER (WHERE rating = 'down')
		FROM feedback
	`
	var summary domain.FeedbackSummary
	err := r.pool.QueryRow(ctx, query).Scan(&summary.Up, &summary.Down)
	return summary, err
}
