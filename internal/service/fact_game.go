package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/quizforge/internal/dto"
	"github.com/rs/zerolog/log"
)

type factSettings struct {
	count      int
	complexity string
	timeLimit  int
}

var factDifficulties = map[string]factSettings{
	DifficultyEasy:   {count: 5, complexity: "basic", timeLimit: 30},
	DifficultyMedium: {count: 8, complexity: "intermediate", timeLimit: 25},
	DifficultyHard:   {count: 10, complexity: "advanced", timeLimit: 20},
}

func factSettingsFor(difficulty string) factSettings {
	return factDifficulties[normalizeDifficulty(difficulty)]
}

const factChallengePrompt = `Generate %d %s difficulty true/false statements about %s.

    RULES:
    - Mix of true and false statements
    - Each statement should be clear and concise
    - Avoid obvious true/false indicators
    - Include interesting but lesser-known facts
    - For false statements, make subtle but clear modifications to true facts

    Format each fact as a JSON object with:
    {
      "statement": "[fact statement]",
      "isTrue": boolean,
      "explanation": "[brief explanation]"
    }

    Return as a JSON array of these objects.`

func (s *gameService) FactChallenge(ctx context.Context, topic, difficulty string) dto.FactChallenge {
	difficulty = normalizeDifficulty(difficulty)
	settings := factDifficulties[difficulty]

	items, err := s.generateFacts(ctx, fmt.Sprintf(factChallengePrompt, settings.count, settings.complexity, topic))
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Str("difficulty", difficulty).Msg("Fact challenge generation failed, using fallback")
		return fallbackFactChallenge(topic, difficulty)
	}
	return dto.FactChallenge{Items: items, Difficulty: difficulty, Topic: topic, TimeLimit: settings.timeLimit}
}

func (s *gameService) generateFacts(ctx context.Context, prompt string) ([]dto.FactItem, error) {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var items []dto.FactItem
	if err := json.Unmarshal([]byte(StripJSONFence(raw)), &items); err != nil {
		return nil, fmt.Errorf("decode facts: %w", err)
	}
	kept := items[:0]
	for _, item := range items {
		if strings.TrimSpace(item.Statement) != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no facts in response")
	}
	return kept, nil
}

func fallbackFactChallenge(topic, difficulty string) dto.FactChallenge {
	return dto.FactChallenge{
		Items: []dto.FactItem{
			{Statement: fmt.Sprintf("This is a sample %s fact 1", topic), IsTrue: true, Explanation: "This is a fallback fact"},
			{Statement: fmt.Sprintf("This is a sample %s fact 2", topic), IsTrue: false, Explanation: "This is another fallback fact"},
		},
		Difficulty: difficulty,
		Topic:      topic,
		TimeLimit:  30,
	}
}
