package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lshigami/quizforge/config"
	"github.com/lshigami/quizforge/internal/ingest"
	"google.golang.org/api/option"
)

func youtubeServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/videos") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestYouTubeVideoDetails(t *testing.T) {
	srv := youtubeServer(t, `{"items":[{"id":"abc123","snippet":{"title":"Cells 101","description":"An intro"}}]}`)
	c, err := NewYouTubeClientWithOptions(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	got, err := c.VideoDetails(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("video details: %v", err)
	}
	if got.Title != "Cells 101" || got.Description != "An intro" {
		t.Fatalf("unexpected details: %+v", got)
	}
}

func TestYouTubeVideoNotFound(t *testing.T) {
	srv := youtubeServer(t, `{"items":[]}`)
	c, err := NewYouTubeClientWithOptions(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	if _, err := c.VideoDetails(context.Background(), "missing"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestNewYouTubeClientWithoutKey(t *testing.T) {
	c, err := NewYouTubeClient(&config.Config{})
	if err != nil {
		t.Fatalf("client without key: %v", err)
	}
	if _, err := c.VideoDetails(context.Background(), "abc123"); !errors.Is(err, ingest.ErrNotFound) {
		t.Fatalf("expected ingest.ErrNotFound, got %v", err)
	}
}
