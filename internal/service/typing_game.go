package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lshigami/quizforge/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	CategoryCommon    = "common"
	CategoryTechnical = "technical"
	CategoryAcademic  = "academic"
	CategoryRandom    = "random"

	maxTypingWords = 100
)

var typingDifficultyCriteria = map[string]string{
	DifficultyEasy:   "simple, frequently used words with 3-6 characters",
	DifficultyMedium: "moderately complex words with 5-8 characters",
	DifficultyHard:   "advanced, less common words with 7-12 characters",
}

var typingCategoryCriteria = map[string]string{
	CategoryCommon:    "everyday language words",
	CategoryTechnical: "technology and science-related terminology",
	CategoryAcademic:  "scholarly and intellectual vocabulary",
	CategoryRandom:    "a diverse mix of words from various domains",
}

var fallbackWords = map[string][]string{
	DifficultyEasy:   {"cat", "dog", "run", "sun", "car", "book", "tree", "fish", "bird", "ball", "talk", "walk", "play", "home", "love"},
	DifficultyMedium: {"happy", "smile", "quick", "brave", "light", "dance", "music", "dream", "ocean", "river", "story", "magic", "power", "world", "peace"},
	DifficultyHard:   {"magnificent", "adventure", "challenge", "brilliant", "elegant", "fantastic", "wonderful", "incredible", "mysterious", "fantastic"},
}

var lowercaseWord = regexp.MustCompile(`^[a-z]+$`)

const typingPrompt = `Generate 100 unique %s from %s domain.

STRICT OUTPUT FORMAT (CRITICAL):
word1
word2
word3
...word100

RULES:
- No repeated words
- No proper nouns
- No hyphenated words
- No numbers or special characters
- Ensure clear spelling
- Prefer standard English words`

func normalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if _, ok := typingCategoryCriteria[c]; ok {
		return c
	}
	return CategoryCommon
}

func (s *gameService) TypingWords(ctx context.Context, difficulty, category string) dto.TypingWordsResponse {
	difficulty = normalizeDifficulty(difficulty)
	category = normalizeCategory(category)

	prompt := fmt.Sprintf(typingPrompt, typingDifficultyCriteria[difficulty], typingCategoryCriteria[category])
	raw, err := s.generator.Generate(ctx, prompt)
	var words []string
	if err == nil {
		words = ParseTypingWords(raw)
		if len(words) == 0 {
			err = errors.New("no usable words in response")
		}
	}
	if err != nil {
		log.Warn().Err(err).Str("difficulty", difficulty).Str("category", category).Msg("Typing word generation failed, using fallback")
		words = append([]string(nil), fallbackWords[difficulty]...)
	}
	return dto.TypingWordsResponse{Words: words, Count: len(words), Difficulty: difficulty, Category: category}
}

// ParseTypingWords keeps one lowercase alphabetic word of 3 to 14 letters per line, at most 100.
func ParseTypingWords(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if len(word) <= 2 || len(word) >= 15 || !lowercaseWord.MatchString(word) {
			continue
		}
		out = append(out, word)
		if len(out) == maxTypingWords {
			break
		}
	}
	return out
}
