package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

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

func TestQuizRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewQuizRepository(newTestDB(t))

	quiz := &model.Quiz{
		QuizID:          "ab12c",
		CreatorName:     "alice",
		CreatorWallet:   "0xabc",
		NumParticipants: 3,
		QuestionCount:   1,
		RewardPerScore:  0.5,
		IsPublic:        true,
		Questions: []model.QuizQuestion{{
			ID:            "q1",
			Question:      "What is Go?",
			Options:       []string{"A) a language", "B) a game", "C) a verb", "D) a board"},
			CorrectAnswer: "A",
		}},
	}
	if err := repo.Create(ctx, quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByQuizID(ctx, "ab12c")
	if err != nil {
		t.Fatalf("FindByQuizID: %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectAnswer != "A" {
		t.Fatalf("questions not persisted: %+v", got.Questions)
	}
	if !got.IsPublic {
		t.Fatalf("want isPublic=true")
	}

	exists, err := repo.ExistsByQuizID(ctx, "ab12c")
	if err != nil || !exists {
		t.Fatalf("ExistsByQuizID: exists=%v err=%v", exists, err)
	}
	exists, _ = repo.ExistsByQuizID(ctx, "zzzzz")
	if exists {
		t.Fatalf("want no quiz zzzzz")
	}
}

func TestQuizRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewQuizRepository(newTestDB(t))
	if err := repo.Create(ctx, &model.Quiz{QuizID: "q0001", CreatorName: "a", CreatorWallet: "w", IsPublic: true}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(ctx, "q0001", map[string]interface{}{"is_public": false, "is_finished": true}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.FindByQuizID(ctx, "q0001")
	if err != nil {
		t.Fatalf("FindByQuizID: %v", err)
	}
	if got.IsPublic || !got.IsFinished {
		t.Fatalf("want isPublic=false isFinished=true, got %v %v", got.IsPublic, got.IsFinished)
	}

	if err := repo.Update(ctx, "nope1", map[string]interface{}{"is_finished": true}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestQuizRepositoryNotFound(t *testing.T) {
	repo := NewQuizRepository(newTestDB(t))
	if _, err := repo.FindByQuizID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestParticipantRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewParticipantRepository(newTestDB(t))

	for _, wallet := range []string{"0x1", "0x2"} {
		if err := repo.Create(ctx, &model.Participant{QuizID: "q1", ParticipantName: "p" + wallet, WalletAddress: wallet}); err != nil {
			t.Fatalf("Create %s: %v", wallet, err)
		}
	}
	if err := repo.Create(ctx, &model.Participant{QuizID: "q1", ParticipantName: "dup", WalletAddress: "0x1"}); err == nil {
		t.Fatalf("want unique violation for duplicate wallet")
	}

	count, err := repo.CountByQuiz(ctx, "q1")
	if err != nil || count != 2 {
		t.Fatalf("CountByQuiz: want=2 got=%d err=%v", count, err)
	}

	p, err := repo.FindByQuizAndWallet(ctx, "q1", "0x2")
	if err != nil {
		t.Fatalf("FindByQuizAndWallet: %v", err)
	}
	if p.Score != nil {
		t.Fatalf("want nil score before submit")
	}
	score := 4
	p.Score = &score
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := repo.ListByQuiz(ctx, "q1")
	if err != nil {
		t.Fatalf("ListByQuiz: %v", err)
	}
	if len(list) != 2 || list[1].Score == nil || *list[1].Score != 4 {
		t.Fatalf("unexpected participants: %+v", list)
	}

	if _, err := repo.FindByQuizAndWallet(ctx, "q1", "0x9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFactCheckRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	checks := NewFactCheckRepository(db)
	participants := NewParticipantFactRepository(db)

	fc := &model.FactCheck{
		FactCheckID:   "fc001",
		CreatorName:   "bob",
		CreatorWallet: "0xb",
		FactsCount:    2,
		Facts: []model.Fact{
			{ID: "f1", Statement: "Water boils at 100C at sea level", IsTrue: true},
			{ID: "f2", Statement: "The sun orbits the earth", IsTrue: false},
		},
	}
	if err := checks.Create(ctx, fc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := checks.FindByFactCheckID(ctx, "fc001")
	if err != nil {
		t.Fatalf("FindByFactCheckID: %v", err)
	}
	if len(got.Facts) != 2 || got.Facts[1].IsTrue {
		t.Fatalf("facts not persisted: %+v", got.Facts)
	}
	if err := checks.Update(ctx, "fc001", map[string]interface{}{"game_id": int64(26)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = checks.FindByFactCheckID(ctx, "fc001")
	if got.GameID == nil || *got.GameID != 26 {
		t.Fatalf("want gameId=26, got %v", got.GameID)
	}

	if err := participants.Create(ctx, &model.ParticipantFact{FactCheckID: "fc001", ParticipantName: "c", WalletAddress: "0xc"}); err != nil {
		t.Fatalf("Create participant: %v", err)
	}
	count, _ := participants.CountByFactCheck(ctx, "fc001")
	if count != 1 {
		t.Fatalf("CountByFactCheck: want=1 got=%d", count)
	}
	p, err := participants.FindByFactCheckAndWallet(ctx, "fc001", "0xc")
	if err != nil {
		t.Fatalf("FindByFactCheckAndWallet: %v", err)
	}
	score, reward := 2, 1.5
	p.Score, p.Reward = &score, &reward
	if err := participants.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	list, _ := participants.ListByFactCheck(ctx, "fc001")
	if len(list) != 1 || list[0].Reward == nil || *list[0].Reward != 1.5 {
		t.Fatalf("unexpected participants: %+v", list)
	}
}
