package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// VideoMetadataProvider looks up the title and description of a video.
type VideoMetadataProvider interface {
	VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error)
}

// TranscriptProvider returns caption fragments for a video.
type TranscriptProvider interface {
	ValidateID(ctx context.Context, videoID string) (bool, error)
	Transcript(ctx context.Context, videoID string) ([]string, error)
}

// Summarizer produces an AI summary of a video.
type Summarizer interface {
	Summarize(ctx context.Context, videoID string) (string, error)
}

const invalidVideoURLMessage = "Invalid YouTube URL. Please provide a valid YouTube video URL."

// ParseVideoID extracts the video id from a youtube.com or youtu.be URL.
func ParseVideoID(videoURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(videoURL))
	if err != nil || u.Host == "" {
		return "", newError(ErrInvalidInput, invalidVideoURLMessage, err)
	}
	var id string
	switch host := strings.ToLower(u.Hostname()); {
	case strings.Contains(host, "youtube.com"):
		id = u.Query().Get("v")
	case strings.Contains(host, "youtu.be"):
		id = strings.TrimPrefix(u.Path, "/")
	default:
		return "", newError(ErrInvalidInput, invalidVideoURLMessage, nil)
	}
	if id == "" {
		return "", newError(ErrInvalidInput, invalidVideoURLMessage, errors.New("missing video id"))
	}
	return id, nil
}

// VideoResolver chooses the best available text for a video.
type VideoResolver struct {
	transcripts TranscriptProvider
	primary     Summarizer
	alternative Summarizer
}

func NewVideoResolver(transcripts TranscriptProvider, primary, alternative Summarizer) *VideoResolver {
	return &VideoResolver{transcripts: transcripts, primary: primary, alternative: alternative}
}

type videoAttempt struct {
	provenance Provenance
	fetch      func(ctx context.Context, videoID string) (string, error)
}

// Resolve walks transcript, primary summary and alternative summary in order and
// returns the first non-empty text. Provider failures move on to the next step;
// the title and description are used when every provider comes back empty.
func (r *VideoResolver) Resolve(ctx context.Context, videoID string, details VideoDetails) RawContent {
	attempts := []videoAttempt{
		{provenance: ProvenanceTranscript, fetch: r.transcript},
		{provenance: ProvenancePrimarySummary, fetch: summarize(r.primary)},
		{provenance: ProvenanceAlternativeSummary, fetch: summarize(r.alternative)},
	}
	for _, a := range attempts {
		text, err := a.fetch(ctx, videoID)
		if err != nil {
			log.Warn().Err(err).Str("videoID", videoID).Str("source", string(a.provenance)).Msg("Video content source failed, trying next")
			continue
		}
		if strings.TrimSpace(text) != "" {
			return RawContent{Text: text, Provenance: a.provenance}
		}
	}
	return RawContent{
		Text:       details.Title + "\n\n" + details.Description,
		Provenance: ProvenanceVideoDescription,
	}
}

func (r *VideoResolver) transcript(ctx context.Context, videoID string) (string, error) {
	if r.transcripts == nil {
		return "", nil
	}
	valid, err := r.transcripts.ValidateID(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("validate video id: %w", err)
	}
	if !valid {
		log.Debug().Str("videoID", videoID).Msg("Transcript provider rejected video id")
		return "", nil
	}
	fragments, err := r.transcripts.Transcript(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	return strings.Join(fragments, " "), nil
}

func summarize(s Summarizer) func(context.Context, string) (string, error) {
	return func(ctx context.Context, videoID string) (string, error) {
		if s == nil {
			return "", nil
		}
		return s.Summarize(ctx, videoID)
	}
}

func withContentType(rc RawContent) string {
	return "Content Type: " + string(rc.Provenance) + "\n\n" + rc.Text
}
