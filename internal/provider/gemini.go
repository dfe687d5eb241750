package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/quizforge/config"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient is a text-completion client backed by the Gemini API. It serves
// as the secondary quiz backend and as the generator for the mini-games.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient returns a client with no model when the API key is empty so
// the application can start without Gemini; every call then fails.
func NewGeminiClient(cfg *config.Config) (*GeminiClient, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Gemini generation will be non-functional.")
		return &GeminiClient{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	name := cfg.GeminiModel
	if name == "" {
		name = defaultGeminiModel
	}
	return &GeminiClient{model: client.GenerativeModel(name)}, nil
}

// Generate sends prompt as a single text part and concatenates the text parts
// of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", errors.New("gemini client not initialized")
	}
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if isGeminiRateLimit(err) {
			return "", fmt.Errorf("gemini: %w: %w", ingest.ErrRateLimited, err)
		}
		log.Error().Err(err).Msg("Gemini GenerateContent failed")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", errors.New("gemini returned no text content")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

func isGeminiRateLimit(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return true
	}
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	return false
}

