package game

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/dto"
)

type fakeGameService struct {
	topic      string
	difficulty string
	category   string
}

func (f *fakeGameService) FactChallenge(_ context.Context, topic, difficulty string) dto.FactChallenge {
	f.topic, f.difficulty = topic, difficulty
	return dto.FactChallenge{Items: []dto.FactItem{{Statement: "s", IsTrue: true}}, Difficulty: "easy", Topic: topic, TimeLimit: 30}
}

func (f *fakeGameService) MemoryChallenge(_ context.Context, difficulty string) dto.MemoryChallenge {
	f.difficulty = difficulty
	return dto.MemoryChallenge{Sequence: []string{"Red Apple"}, Difficulty: "medium", TimeLimit: 25, SequenceLength: 6}
}

func (f *fakeGameService) TypingWords(_ context.Context, difficulty, category string) dto.TypingWordsResponse {
	f.difficulty, f.category = difficulty, category
	return dto.TypingWordsResponse{Words: []string{"cat"}, Count: 1, Difficulty: "easy", Category: "common"}
}

func newRouter(svc *fakeGameService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewGameController(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFactChallenge(t *testing.T) {
	svc := &fakeGameService{}
	w := post(newRouter(svc), "/api/fact-check/challenge", `{"topic":"volcanoes","difficulty":"easy"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", w.Code)
	}
	var resp dto.FactChallengeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Facts Generated Successfully" || resp.Facts.Topic != "volcanoes" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.difficulty != "easy" {
		t.Fatalf("difficulty not forwarded: %q", svc.difficulty)
	}
}

func TestFactChallengeRequiresTopic(t *testing.T) {
	w := post(newRouter(&fakeGameService{}), "/api/fact-check/challenge", `{"difficulty":"easy"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
}

func TestMemoryChallengeEmptyBody(t *testing.T) {
	svc := &fakeGameService{difficulty: "unset"}
	w := post(newRouter(svc), "/api/memory-challenge/challenge", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d body=%s", w.Code, w.Body.String())
	}
	var resp dto.MemoryChallengeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Memory Challenge Generated Successfully" || resp.Challenge.SequenceLength != 6 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.difficulty != "" {
		t.Fatalf("want empty difficulty forwarded, got %q", svc.difficulty)
	}
}

func TestTypingWords(t *testing.T) {
	svc := &fakeGameService{}
	w := post(newRouter(svc), "/api/typing/words", `{"difficulty":"hard","category":"academic"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", w.Code)
	}
	if svc.difficulty != "hard" || svc.category != "academic" {
		t.Fatalf("request not forwarded: %+v", svc)
	}
	want := `{"words":["cat"],"count":1,"difficulty":"easy","category":"common"}`
	if got := w.Body.String(); got != want {
		t.Fatalf("body: want=%s got=%s", want, got)
	}
}

func TestTypingWordsMalformedBody(t *testing.T) {
	w := post(newRouter(&fakeGameService{}), "/api/typing/words", `{"difficulty":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
}
