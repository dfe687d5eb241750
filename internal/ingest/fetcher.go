package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// MinPageTextLength is the shortest normalized page text accepted from a URL source.
	MinPageTextLength   = 100
	defaultProbeTimeout = 5 * time.Second
	maxPageBytes        = 10 << 20

	videoDetailsMessage = "Could not fetch video details. Please check if the video exists."
)

var errPageTooLarge = errors.New("page exceeds 10MB")

// DocumentExtractor turns an uploaded document into plain text.
type DocumentExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Fetcher resolves a Source into RawContent.
type Fetcher struct {
	documents    DocumentExtractor
	videos       VideoMetadataProvider
	resolver     *VideoResolver
	httpClient   *http.Client
	probeTimeout time.Duration
}

type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the client used for URL sources.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.httpClient = c }
}

// WithProbeTimeout bounds the HEAD check performed before scraping a URL.
func WithProbeTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.probeTimeout = d }
}

func NewFetcher(documents DocumentExtractor, videos VideoMetadataProvider, resolver *VideoResolver, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		documents:    documents,
		videos:       videos,
		resolver:     resolver,
		httpClient:   http.DefaultClient,
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.resolver == nil {
		f.resolver = NewVideoResolver(nil, nil, nil)
	}
	return f
}

// Fetch produces the content for src.
func (f *Fetcher) Fetch(ctx context.Context, src Source) (RawContent, error) {
	switch src.Kind {
	case SourcePrompt:
		if strings.TrimSpace(src.Text) == "" {
			return RawContent{}, newError(ErrInvalidInput, "Prompt is required", nil)
		}
		return RawContent{Text: src.Text, Provenance: ProvenancePrompt}, nil
	case SourceDocument:
		return f.fetchDocument(ctx, src.Document)
	case SourceURL:
		return f.fetchURL(ctx, src.URL)
	case SourceVideo:
		return f.fetchVideo(ctx, src.URL)
	default:
		return RawContent{}, newError(ErrInvalidInput, "Unsupported source", fmt.Errorf("unknown source kind %q", src.Kind))
	}
}

func (f *Fetcher) fetchDocument(ctx context.Context, data []byte) (RawContent, error) {
	if len(data) == 0 {
		return RawContent{}, newError(ErrInvalidInput, "No PDF file uploaded.", nil)
	}
	if f.documents == nil {
		return RawContent{}, newError(ErrInvalidInput, "PDF extraction is not available", nil)
	}
	text, err := f.documents.ExtractText(ctx, data)
	if err != nil {
		return RawContent{}, newError(ErrInvalidInput, "Failed to read the uploaded PDF", err)
	}
	return RawContent{Text: text, Provenance: ProvenancePDF}, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, rawURL string) (RawContent, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return RawContent{}, newError(ErrInvalidInput, "Invalid URL format", nil)
	}
	if err := f.probe(ctx, u.String()); err != nil {
		log.Warn().Err(err).Str("url", u.String()).Msg("URL probe failed")
		return RawContent{}, newError(ErrInvalidInput, "URL is not accessible or does not contain valid HTML content", err)
	}

	page, err := f.get(ctx, u.String())
	if err != nil {
		return RawContent{}, newError(ErrInvalidInput, "Failed to fetch website content", err)
	}
	text := NormalizeHTML(page)
	if len([]rune(text)) < MinPageTextLength {
		return RawContent{}, newError(ErrInsufficientContent, "Could not extract sufficient content from the provided URL", nil)
	}
	return RawContent{Text: text, Provenance: ProvenanceURL}, nil
}

func (f *Fetcher) probe(ctx context.Context, target string) error {
	ctx, cancel := context.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("probe returned status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		return fmt.Errorf("unexpected content type %q", ct)
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxPageBytes {
		return "", errPageTooLarge
	}
	return string(body), nil
}

func (f *Fetcher) fetchVideo(ctx context.Context, videoURL string) (RawContent, error) {
	videoID, err := ParseVideoID(videoURL)
	if err != nil {
		return RawContent{}, err
	}
	if f.videos == nil {
		return RawContent{}, newError(ErrNotFound, videoDetailsMessage, errors.New("video metadata provider is not configured"))
	}
	details, err := f.videos.VideoDetails(ctx, videoID)
	if err != nil || details == nil {
		log.Warn().Err(err).Str("videoID", videoID).Msg("Could not fetch video details")
		return RawContent{}, newError(ErrNotFound, videoDetailsMessage, err)
	}
	return f.resolver.Resolve(ctx, videoID, *details), nil
}
