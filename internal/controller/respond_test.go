package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/lshigami/quizforge/internal/service"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&service.Error{Kind: service.ErrNotFound, Message: "Quiz not found"}, http.StatusNotFound},
		{&service.Error{Kind: service.ErrForbidden, Message: "This quiz is private."}, http.StatusForbidden},
		{fmt.Errorf("fetch: %w", ingest.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("video: %w", ingest.ErrNotFound), http.StatusBadRequest},
		{ingest.ErrInsufficientContent, http.StatusBadRequest},
		{ingest.ErrExtractionEmpty, http.StatusBadRequest},
		{fmt.Errorf("all backends: %w", ingest.ErrGenerationFailed), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v): want=%d got=%d", tc.err, tc.want, got)
		}
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, errors.New("dial tcp: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Internal server error" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRespondErrorUsesPublicMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		want string
	}{
		{&service.Error{Kind: service.ErrForbidden, Message: "This quiz is private."}, "This quiz is private."},
		{fmt.Errorf("create quiz: %w", &ingest.Error{Kind: ingest.ErrInvalidInput, Message: "Invalid URL format"}), "Invalid URL format"},
		{ingest.ErrExtractionEmpty, "Failed to generate valid questions"},
		{fmt.Errorf("%w: bedrock: ThrottlingException: slow down", ingest.ErrGenerationFailed), "Failed to generate content. Please try again later."},
		{fmt.Errorf("%w: youtube api key not configured", ingest.ErrNotFound), "Could not fetch video details. Please check if the video exists."},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, tc.err)

		var body dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error != tc.want {
			t.Fatalf("RespondError(%v): want=%q got=%q", tc.err, tc.want, body.Error)
		}
	}
}
