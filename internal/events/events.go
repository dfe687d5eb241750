package events

import "time"

// Routing keys published on the topic exchange.
const (
	QuizCreated        = "quiz.created"
	QuizJoined         = "quiz.joined"
	QuizSubmitted      = "quiz.submitted"
	FactCheckCreated   = "factcheck.created"
	FactCheckJoined    = "factcheck.joined"
	FactCheckSubmitted = "factcheck.submitted"
)

// Event is the envelope for every message.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	GameID     string         `json:"gameId"`
	Wallet     string         `json:"wallet,omitempty"`
	Score      *int           `json:"score,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
