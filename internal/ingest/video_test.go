package ingest

import (
	"context"
	"errors"
	"testing"
)

func TestParseVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=XYZ", "XYZ"},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=abc123", "abc123"},
		{"https://youtu.be/XYZ", "XYZ"},
		{"https://youtu.be/XYZ?si=share", "XYZ"},
	}
	for _, tc := range cases {
		got, err := ParseVideoID(tc.url)
		if err != nil {
			t.Fatalf("ParseVideoID(%q) returned error: %v", tc.url, err)
		}
		if got != tc.want {
			t.Fatalf("ParseVideoID(%q) want=%q got=%q", tc.url, tc.want, got)
		}
	}
}

func TestParseVideoIDInvalid(t *testing.T) {
	for _, raw := range []string{
		"https://vimeo.com/12345",
		"https://www.youtube.com/watch",
		"https://youtu.be/",
		"not a url",
		"",
	} {
		if _, err := ParseVideoID(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseVideoID(%q) expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

type fakeTranscripts struct {
	valid     bool
	validErr  error
	fragments []string
	err       error
	calls     int
}

func (f *fakeTranscripts) ValidateID(context.Context, string) (bool, error) {
	return f.valid, f.validErr
}

func (f *fakeTranscripts) Transcript(context.Context, string) ([]string, error) {
	f.calls++
	return f.fragments, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
	calls   int
}

func (f *fakeSummarizer) Summarize(context.Context, string) (string, error) {
	f.calls++
	return f.summary, f.err
}

var sampleDetails = VideoDetails{Title: "Cells 101", Description: "An intro to cells."}

func TestVideoResolverPrefersTranscript(t *testing.T) {
	transcripts := &fakeTranscripts{valid: true, fragments: []string{"hello", "world"}}
	primary := &fakeSummarizer{summary: "primary summary"}
	alternative := &fakeSummarizer{summary: "alternative summary"}

	got := NewVideoResolver(transcripts, primary, alternative).Resolve(context.Background(), "vid", sampleDetails)
	if got.Text != "hello world" || got.Provenance != ProvenanceTranscript {
		t.Fatalf("unexpected content: %+v", got)
	}
	if primary.calls != 0 || alternative.calls != 0 {
		t.Fatalf("summarizers should not be called, primary=%d alternative=%d", primary.calls, alternative.calls)
	}
}

func TestVideoResolverFallsThroughChain(t *testing.T) {
	cases := []struct {
		name        string
		transcripts *fakeTranscripts
		primary     *fakeSummarizer
		alternative *fakeSummarizer
		want        RawContent
	}{
		{
			name:        "invalid id uses primary summary",
			transcripts: &fakeTranscripts{valid: false, fragments: []string{"unused"}},
			primary:     &fakeSummarizer{summary: "primary summary"},
			alternative: &fakeSummarizer{summary: "alternative summary"},
			want:        RawContent{Text: "primary summary", Provenance: ProvenancePrimarySummary},
		},
		{
			name:        "transcript error and empty primary use alternative",
			transcripts: &fakeTranscripts{valid: true, err: errors.New("captions disabled")},
			primary:     &fakeSummarizer{summary: ""},
			alternative: &fakeSummarizer{summary: "alternative summary"},
			want:        RawContent{Text: "alternative summary", Provenance: ProvenanceAlternativeSummary},
		},
		{
			name:        "everything fails uses description",
			transcripts: &fakeTranscripts{validErr: errors.New("network down")},
			primary:     &fakeSummarizer{err: errors.New("quota exceeded")},
			alternative: &fakeSummarizer{err: errors.New("bad gateway")},
			want:        RawContent{Text: "Cells 101\n\nAn intro to cells.", Provenance: ProvenanceVideoDescription},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewVideoResolver(tc.transcripts, tc.primary, tc.alternative).Resolve(context.Background(), "vid", sampleDetails)
			if got != tc.want {
				t.Fatalf("want=%+v got=%+v", tc.want, got)
			}
		})
	}
}

func TestVideoResolverWithoutProviders(t *testing.T) {
	got := NewVideoResolver(nil, nil, nil).Resolve(context.Background(), "vid", sampleDetails)
	if got.Provenance != ProvenanceVideoDescription {
		t.Fatalf("expected description fallback, got %+v", got)
	}
}
