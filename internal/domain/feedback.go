package domain

import "time"

// Feedback registra la valoracion de una respuesta del asistente.
type Feedback struct {
	ID        string    `json:"id"`
	Rating    Rating    `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackSummary struct {
	Up   int64 `json:"up"`
	Down int64 `json:"down"`
}
