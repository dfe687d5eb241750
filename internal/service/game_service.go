package service

import (
	"context"
	"strings"

	"github.com/lshigami/quizforge/internal/dto"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// GameService generates the stateless mini-game challenges. Each method
// falls back to fixed content when generation fails, so none return errors.
type GameService interface {
	FactChallenge(ctx context.Context, topic, difficulty string) dto.FactChallenge
	MemoryChallenge(ctx context.Context, difficulty string) dto.MemoryChallenge
	TypingWords(ctx context.Context, difficulty, category string) dto.TypingWordsResponse
}

type gameService struct {
	generator TextGenerator
}

func NewGameService(generator TextGenerator) GameService {
	return &gameService{generator: generator}
}

// normalizeDifficulty maps unknown values to medium.
func normalizeDifficulty(d string) string {
	switch d = strings.ToLower(strings.TrimSpace(d)); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	}
	return DifficultyMedium
}
