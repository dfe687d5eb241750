package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func transcriptServer(t *testing.T, oembedStatus int, captions string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(oembedStatus)
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") == "" {
			http.Error(w, "missing v", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(captions))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTranscriptClient(t *testing.T) {
	srv := transcriptServer(t, http.StatusOK, `<?xml version="1.0" encoding="utf-8" ?><transcript>`+
		`<text start="0.0" dur="1.2">Cells are the</text>`+
		`<text start="1.2" dur="2.0">building blocks &amp;amp; units</text>`+
		`<text start="3.2" dur="1.0">  </text>`+
		`</transcript>`)
	c := NewTranscriptClientWithEndpoints(srv.Client(), srv.URL+"/timedtext", srv.URL+"/oembed")

	valid, err := c.ValidateID(context.Background(), "dQw4w9WgXcQ")
	if err != nil || !valid {
		t.Fatalf("expected a valid id, got valid=%v err=%v", valid, err)
	}
	got, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	want := []string{"Cells are the", "building blocks & units"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want=%q got=%q", want, got)
	}
}

func TestTranscriptValidateID(t *testing.T) {
	srv := transcriptServer(t, http.StatusNotFound, "")
	c := NewTranscriptClientWithEndpoints(srv.Client(), srv.URL+"/timedtext", srv.URL+"/oembed")

	if valid, err := c.ValidateID(context.Background(), "short"); valid || err != nil {
		t.Fatalf("malformed id: valid=%v err=%v", valid, err)
	}
	if valid, err := c.ValidateID(context.Background(), "dQw4w9WgXcQ"); valid || err != nil {
		t.Fatalf("missing video: valid=%v err=%v", valid, err)
	}
}

func TestTranscriptNoCaptions(t *testing.T) {
	srv := transcriptServer(t, http.StatusOK, `<transcript></transcript>`)
	c := NewTranscriptClientWithEndpoints(srv.Client(), srv.URL+"/timedtext", srv.URL+"/oembed")
	if _, err := c.Transcript(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Fatal("expected an error when no captions are present")
	}
}
