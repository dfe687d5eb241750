package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/quizforge/config"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound is returned when the Data API has no item for the id.
var ErrVideoNotFound = errors.New("video not found")

// YouTubeClient fetches video metadata from the YouTube Data API v3.
type YouTubeClient struct {
	svc *youtube.Service
}

// NewYouTubeClient returns a disabled client when no API key is configured.
func NewYouTubeClient(cfg *config.Config) (*YouTubeClient, error) {
	if cfg.YouTubeApiKey == "" {
		log.Warn().Msg("YOUTUBE_API_KEY is not set. Video quizzes will fail to resolve metadata.")
		return &YouTubeClient{}, nil
	}
	return NewYouTubeClientWithOptions(context.Background(), option.WithAPIKey(cfg.YouTubeApiKey))
}

func NewYouTubeClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*YouTubeClient, error) {
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize YouTube client: %w", err)
	}
	return &YouTubeClient{svc: svc}, nil
}

func (c *YouTubeClient) VideoDetails(ctx context.Context, videoID string) (*ingest.VideoDetails, error) {
	if c.svc == nil {
		return nil, fmt.Errorf("%w: youtube api key not configured", ingest.ErrNotFound)
	}
	resp, err := c.svc.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube videos.list: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}
	snippet := resp.Items[0].Snippet
	return &ingest.VideoDetails{Title: snippet.Title, Description: snippet.Description}, nil
}
