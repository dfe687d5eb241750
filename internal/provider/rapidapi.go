package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	primarySummarizerHost     = "youtube-summarizer1.p.rapidapi.com"
	alternativeSummarizerHost = "youtube-video-summarizer-with-ai.p.rapidapi.com"
)

type summaryResponse struct {
	Summary string `json:"summary"`
}

// PrimarySummarizer posts the watch URL to the youtube-summarizer RapidAPI.
type PrimarySummarizer struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewPrimarySummarizer(httpClient *http.Client, apiKey string) *PrimarySummarizer {
	return NewPrimarySummarizerWithEndpoint(httpClient, "https://"+primarySummarizerHost+"/api/summarize/youtube", apiKey)
}

func NewPrimarySummarizerWithEndpoint(httpClient *http.Client, endpoint, apiKey string) *PrimarySummarizer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PrimarySummarizer{httpClient: httpClient, endpoint: endpoint, apiKey: apiKey}
}

func (s *PrimarySummarizer) Summarize(ctx context.Context, videoID string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("rapidapi key not configured")
	}
	payload, err := json.Marshal(map[string]string{
		"url":            "https://www.youtube.com/watch?v=" + videoID,
		"additionalInfo": "give brief",
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", primarySummarizerHost)
	return doSummary(s.httpClient, req)
}

// AlternativeSummarizer reads a stored summary record from the
// youtube-video-summarizer-with-ai RapidAPI.
type AlternativeSummarizer struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	uniqueID   string
}

func NewAlternativeSummarizer(httpClient *http.Client, apiKey, uniqueID string) *AlternativeSummarizer {
	return NewAlternativeSummarizerWithEndpoint(httpClient, "https://"+alternativeSummarizerHost+"/api/v1/record/getRecordDetails", apiKey, uniqueID)
}

func NewAlternativeSummarizerWithEndpoint(httpClient *http.Client, endpoint, apiKey, uniqueID string) *AlternativeSummarizer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AlternativeSummarizer{httpClient: httpClient, endpoint: endpoint, apiKey: apiKey, uniqueID: uniqueID}
}

func (s *AlternativeSummarizer) Summarize(ctx context.Context, videoID string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("rapidapi key not configured")
	}
	q := url.Values{}
	q.Set("recordId", videoID)
	q.Set("locale", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", alternativeSummarizerHost)
	if s.uniqueID != "" {
		req.Header.Set("uniqueid", s.uniqueID)
	}
	return doSummary(s.httpClient, req)
}

func doSummary(client *http.Client, req *http.Request) (string, error) {
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("summary request returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	var out summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode summary: %w", err)
	}
	return out.Summary, nil
}
