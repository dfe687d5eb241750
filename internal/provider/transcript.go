package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const (
	defaultTimedTextURL = "https://video.google.com/timedtext"
	defaultOEmbedURL    = "https://www.youtube.com/oembed"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// TranscriptClient reads public captions from the YouTube timedtext endpoint.
type TranscriptClient struct {
	httpClient   *http.Client
	timedTextURL string
	oembedURL    string
	lang         string
}

func NewTranscriptClient(httpClient *http.Client) *TranscriptClient {
	return NewTranscriptClientWithEndpoints(httpClient, defaultTimedTextURL, defaultOEmbedURL)
}

func NewTranscriptClientWithEndpoints(httpClient *http.Client, timedTextURL, oembedURL string) *TranscriptClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TranscriptClient{httpClient: httpClient, timedTextURL: timedTextURL, oembedURL: oembedURL, lang: "en"}
}

// ValidateID reports whether id is well formed and refers to a public video.
func (c *TranscriptClient) ValidateID(ctx context.Context, videoID string) (bool, error) {
	if !videoIDPattern.MatchString(videoID) {
		return false, nil
	}
	q := url.Values{}
	q.Set("url", "https://www.youtube.com/watch?v="+videoID)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.oembedURL+"?"+q.Encode(), nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("oembed request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return false, nil
	default:
		return false, fmt.Errorf("oembed returned status %d", resp.StatusCode)
	}
}

type timedText struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// Transcript returns the caption fragments in playback order.
func (c *TranscriptClient) Transcript(ctx context.Context, videoID string) ([]string, error) {
	q := url.Values{}
	q.Set("lang", c.lang)
	q.Set("v", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.timedTextURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}
	var doc timedText
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode timedtext: %w", err)
	}

	fragments := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		if text := strings.TrimSpace(html.UnescapeString(t.Body)); text != "" {
			fragments = append(fragments, text)
		}
	}
	if len(fragments) == 0 {
		return nil, fmt.Errorf("no captions available for %s", videoID)
	}
	return fragments, nil
}
