package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// MaxContentRunes bounds the content placed in a generation instruction.
const MaxContentRunes = 8000

// Backend is a text-completion service.
type Backend interface {
	Generate(ctx context.Context, instruction string) (string, error)
}

// Generator asks the primary backend for questions and switches to the
// secondary backend once when the primary is rate limited.
type Generator struct {
	primary   Backend
	secondary Backend
	recorder  Recorder
}

func NewGenerator(primary, secondary Backend, recorder Recorder) *Generator {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Generator{primary: primary, secondary: secondary, recorder: recorder}
}

// Generate returns the raw backend response for count questions about content.
func (g *Generator) Generate(ctx context.Context, content string, count int) (string, error) {
	instruction := BuildInstruction(content, count)
	if g.primary == nil {
		return g.fromSecondary(ctx, instruction)
	}

	text, err := g.primary.Generate(ctx, instruction)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, ErrRateLimited) {
		log.Error().Err(err).Msg("Primary generation backend failed")
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	log.Warn().Err(err).Msg("Primary generation backend rate limited, falling back to secondary")
	g.recorder.ObserveFallback()
	return g.fromSecondary(ctx, instruction)
}

func (g *Generator) fromSecondary(ctx context.Context, instruction string) (string, error) {
	if g.secondary == nil {
		return "", fmt.Errorf("%w: no secondary backend configured", ErrGenerationFailed)
	}
	text, err := g.secondary.Generate(ctx, instruction)
	if err != nil {
		log.Error().Err(err).Msg("Secondary generation backend failed")
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return text, nil
}

// BuildInstruction renders the quiz generation prompt.
func BuildInstruction(content string, count int) string {
	return fmt.Sprintf(instructionTemplate, truncate(content, MaxContentRunes), count)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

const instructionTemplate = `The following is the content:

%s

Based on this content, generate a quiz with exactly %d multiple-choice questions.

IMPORTANT FORMATTING INSTRUCTIONS:
- Each question must have EXACTLY 4 options: A, B, C, and D
- Clearly mark the correct answer
- Follow this EXACT format:

Question 1: [Question Text]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
Correct Answer: [A/B/C/D]

Question 2: [Next Question Text]
...and so on.`
