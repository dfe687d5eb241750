package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const twoQuestions = "Question 1: What do plants need for photosynthesis?\nA) Sunlight\nB) Sand\nC) Salt\nD) Smoke\nCorrect Answer: A\n\n" +
	"Question 2: Which gas is released?\nA) Nitrogen\nB) Oxygen\nC) Argon\nD) Neon\nCorrect Answer: B"

func TestPipelinePromptEndToEnd(t *testing.T) {
	primary := &scriptedBackend{responses: []string{twoQuestions}}
	secondary := &scriptedBackend{}
	p := NewPipeline(NewFetcher(nil, nil, nil), NewGenerator(primary, secondary, nil), nil)

	got, err := p.ProduceQuestions(context.Background(), PromptSource("Photosynthesis"), 2)
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if len(secondary.calls) != 0 {
		t.Fatalf("secondary backend should not be called, got %d calls", len(secondary.calls))
	}
	if !strings.Contains(primary.calls[0], "\n\nPhotosynthesis\n\n") {
		t.Fatalf("prompt text missing from instruction: %q", primary.calls[0])
	}
}

func TestPipelineVideoPrefixesContentType(t *testing.T) {
	primary := &scriptedBackend{responses: []string{twoQuestions}}
	videos := &stubVideos{details: &VideoDetails{Title: "Leaves", Description: "How leaves work"}}
	fetcher := NewFetcher(nil, videos, NewVideoResolver(nil, nil, nil))
	p := NewPipeline(fetcher, NewGenerator(primary, nil, nil), nil)

	if _, err := p.ProduceQuestions(context.Background(), VideoSource("https://www.youtube.com/watch?v=leaf1"), 2); err != nil {
		t.Fatalf("produce: %v", err)
	}
	want := "Content Type: video_description\n\nLeaves\n\nHow leaves work"
	if !strings.Contains(primary.calls[0], want) {
		t.Fatalf("instruction missing %q: %q", want, primary.calls[0])
	}
}

func TestPipelineExtractionEmpty(t *testing.T) {
	primary := &scriptedBackend{responses: []string{"no questions here"}}
	p := NewPipeline(NewFetcher(nil, nil, nil), NewGenerator(primary, nil, nil), nil)

	_, err := p.ProduceQuestions(context.Background(), PromptSource("Photosynthesis"), 2)
	if !errors.Is(err, ErrExtractionEmpty) {
		t.Fatalf("expected ErrExtractionEmpty, got %v", err)
	}
}

func TestPipelineRejectsNonPositiveCount(t *testing.T) {
	primary := &scriptedBackend{}
	p := NewPipeline(NewFetcher(nil, nil, nil), NewGenerator(primary, nil, nil), nil)

	_, err := p.ProduceQuestions(context.Background(), PromptSource("Photosynthesis"), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(primary.calls) != 0 {
		t.Fatal("backend should not be called")
	}
}

func TestPipelinePropagatesFetchErrors(t *testing.T) {
	primary := &scriptedBackend{}
	p := NewPipeline(NewFetcher(nil, nil, nil), NewGenerator(primary, nil, nil), nil)

	_, err := p.ProduceQuestions(context.Background(), VideoSource("https://example.com/video"), 2)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
