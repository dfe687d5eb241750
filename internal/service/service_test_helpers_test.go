package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/lshigami/quizforge/internal/events"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/lshigami/quizforge/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Quiz{}, &model.Participant{}, &model.FactCheck{}, &model.ParticipantFact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type fakeProducer struct {
	questions ingest.QuestionSet
	err       error
	sources   []ingest.Source
	counts    []int
}

func (f *fakeProducer) ProduceQuestions(_ context.Context, src ingest.Source, count int) (ingest.QuestionSet, error) {
	f.sources = append(f.sources, src)
	f.counts = append(f.counts, count)
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func twoQuestions() ingest.QuestionSet {
	return ingest.QuestionSet{
		{Question: "What is 2 + 2?", Options: [4]string{"A) 3", "B) 4", "C) 5", "D) 6"}, CorrectAnswer: "B"},
		{Question: "Capital of France?", Options: [4]string{"A) Paris", "B) Rome", "C) Oslo", "D) Bern"}, CorrectAnswer: "A"},
	}
}

func boolPtr(b bool) *bool { return &b }
