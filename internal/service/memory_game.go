package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lshigami/quizforge/internal/dto"
	"github.com/rs/zerolog/log"
)

const maxSequenceItems = 8

type memorySettings struct {
	sequenceLength int
	timeLimit      int
	categories     []string
}

var memoryDifficulties = map[string]memorySettings{
	DifficultyEasy:   {sequenceLength: 4, timeLimit: 30, categories: []string{"animals", "fruits", "simple_objects"}},
	DifficultyMedium: {sequenceLength: 6, timeLimit: 25, categories: []string{"vehicles", "nature", "household_items"}},
	DifficultyHard:   {sequenceLength: 8, timeLimit: 20, categories: []string{"complex_objects", "abstract_shapes", "technology"}},
}

var fallbackSequences = map[string][]string{
	DifficultyEasy:   {"Red Apple", "Blue Car", "Yellow Flower", "Green Frog"},
	DifficultyMedium: {"Silver Laptop", "Orange Submarine", "Purple Bicycle", "Brown Telescope", "Pink Camera", "Gray Headphones"},
	DifficultyHard: {
		"Translucent Crystal", "Holographic Drone", "Metallic Geometric Shape", "Iridescent Butterfly",
		"Abstract Spiral", "Quantum Circuit Board", "Fractal Pattern", "Luminescent Jellyfish",
	},
}

var numberedLine = regexp.MustCompile(`^\d+\.\s`)

const memoryPrompt = `Generate a unique set of %d image descriptions for a memory challenge.

      RULES:
      - Select from %s categories
      - Ensure no repeated items
      - Provide distinct, memorable images
      - Format:
        1. [Image Description]
        2. [Image Description]
        ...
      `

func (s *gameService) MemoryChallenge(ctx context.Context, difficulty string) dto.MemoryChallenge {
	difficulty = normalizeDifficulty(difficulty)
	settings := memoryDifficulties[difficulty]

	prompt := fmt.Sprintf(memoryPrompt, settings.sequenceLength, strings.Join(settings.categories, ", "))
	raw, err := s.generator.Generate(ctx, prompt)
	if err == nil {
		if sequence := ParseImageDescriptions(raw); len(sequence) > 0 {
			return dto.MemoryChallenge{
				Sequence:       sequence,
				Difficulty:     difficulty,
				TimeLimit:      settings.timeLimit,
				SequenceLength: settings.sequenceLength,
			}
		}
		err = errors.New("no numbered descriptions in response")
	}
	log.Warn().Err(err).Str("difficulty", difficulty).Msg("Memory challenge generation failed, using fallback")

	sequence := append([]string(nil), fallbackSequences[difficulty]...)
	return dto.MemoryChallenge{
		Sequence:       sequence,
		Difficulty:     difficulty,
		TimeLimit:      settings.timeLimit,
		SequenceLength: len(sequence),
	}
}

// ParseImageDescriptions keeps "N. description" lines, strips the number and
// drops descriptions of 5 characters or fewer or 200 or more.
func ParseImageDescriptions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !numberedLine.MatchString(line) {
			continue
		}
		desc := numberedLine.ReplaceAllString(line, "")
		if n := utf8.RuneCountInString(desc); n <= 5 || n >= 200 {
			continue
		}
		out = append(out, desc)
		if len(out) == maxSequenceItems {
			break
		}
	}
	return out
}
