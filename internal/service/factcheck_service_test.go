package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/events"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/lshigami/quizforge/internal/model"
	"github.com/lshigami/quizforge/internal/repository"
)

const fencedFacts = "```json\n[" +
	`{"statement": "Water boils at 100C at sea level", "isTrue": true},` +
	`{"statement": "The sun orbits the earth", "isTrue": false},` +
	`{"statement": "", "isTrue": true}` +
	"]\n```"

func newFactCheckFixture(t *testing.T, gen *fakeGenerator) (FactCheckService, *recordingPublisher) {
	t.Helper()
	db := newTestDB(t)
	pub := &recordingPublisher{}
	svc := NewFactCheckService(gen, repository.NewFactCheckRepository(db), repository.NewParticipantFactRepository(db), pub)
	return svc, pub
}

func factCheckRequest(isPublic bool) dto.CreateFactCheckRequest {
	return dto.CreateFactCheckRequest{
		Topic:           "science",
		Difficulty:      "hard",
		CreatorName:     "alice",
		CreatorWallet:   "0xalice",
		NumParticipants: 2,
		TotalCost:       4,
		RewardPerScore:  1.5,
		FactsCount:      2,
		IsPublic:        isPublic,
	}
}

func TestFactCheckCreate(t *testing.T) {
	gen := &fakeGenerator{response: fencedFacts}
	svc, pub := newFactCheckFixture(t, gen)

	fc, err := svc.Create(context.Background(), factCheckRequest(true))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !quizIDPattern.MatchString(fc.FactCheckID) {
		t.Fatalf("fact check id %q is not 5 base36 chars", fc.FactCheckID)
	}
	if len(fc.Facts) != 2 || fc.Facts[0].ID == "" || !fc.Facts[0].IsTrue || fc.Facts[1].IsTrue {
		t.Fatalf("unexpected facts: %+v", fc.Facts)
	}
	if !strings.Contains(gen.prompts[0], "Generate 2 advanced difficulty true/false statements about science.") {
		t.Fatalf("unexpected prompt: %q", gen.prompts[0])
	}
	if got := pub.types(); !reflect.DeepEqual(got, []string{events.FactCheckCreated}) {
		t.Fatalf("events: %v", got)
	}
}

func TestFactCheckCreateGenerationFailures(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "backend error", gen: &fakeGenerator{err: errors.New("quota")}},
		{name: "malformed json", gen: &fakeGenerator{response: "not json"}},
		{name: "no statements", gen: &fakeGenerator{response: `[{"statement": " ", "isTrue": true}]`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, pub := newFactCheckFixture(t, tc.gen)
			_, err := svc.Create(context.Background(), factCheckRequest(true))
			if !errors.Is(err, ingest.ErrGenerationFailed) {
				t.Fatalf("want ErrGenerationFailed, got %v", err)
			}
			if len(pub.types()) != 0 {
				t.Fatalf("no event expected")
			}
		})
	}
}

func TestFactCheckAccessRules(t *testing.T) {
	svc, _ := newFactCheckFixture(t, &fakeGenerator{response: fencedFacts})
	ctx := context.Background()

	private, err := svc.Create(ctx, factCheckRequest(false))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Verify(ctx, private.FactCheckID, "0x1"); !errors.Is(err, ErrForbidden) || err.Error() != "This fact check is private." {
		t.Fatalf("private: got %v", err)
	}
	if _, err := svc.Join(ctx, "zzzzz", dto.JoinRequest{WalletAddress: "0x1", ParticipantName: "bob"}); !errors.Is(err, ErrNotFound) || err.Error() != "Fact Check not found" {
		t.Fatalf("missing: got %v", err)
	}

	public, _ := svc.Create(ctx, factCheckRequest(true))
	for _, wallet := range []string{"0x1", "0x2"} {
		if _, err := svc.Join(ctx, public.FactCheckID, dto.JoinRequest{WalletAddress: wallet, ParticipantName: wallet}); err != nil {
			t.Fatalf("Join %s: %v", wallet, err)
		}
	}
	if _, err := svc.Verify(ctx, public.FactCheckID, "0x2"); err == nil || err.Error() != "You have already participated in this fact check." {
		t.Fatalf("repeat: got %v", err)
	}
	if _, err := svc.Verify(ctx, public.FactCheckID, "0x3"); err == nil || err.Error() != "The number of participants for this fact check has been reached." {
		t.Fatalf("full: got %v", err)
	}
}

func TestFactCheckSubmitAndUpdate(t *testing.T) {
	svc, pub := newFactCheckFixture(t, &fakeGenerator{response: fencedFacts})
	ctx := context.Background()

	fc, _ := svc.Create(ctx, factCheckRequest(true))
	if _, err := svc.Submit(ctx, dto.SubmitFactCheckRequest{FactCheckID: fc.FactCheckID, WalletAddress: "0x1"}); err == nil || err.Error() != "You have not joined this fact check." {
		t.Fatalf("submit before join: got %v", err)
	}
	if _, err := svc.Join(ctx, fc.FactCheckID, dto.JoinRequest{WalletAddress: "0x1", ParticipantName: "bob"}); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if _, err := svc.Join(ctx, fc.FactCheckID, dto.JoinRequest{WalletAddress: "0x2", ParticipantName: "carol"}); err != nil {
		t.Fatalf("Join: %v", err)
	}

	answers := map[string]interface{}{
		fc.Facts[0].ID: true,
		fc.Facts[1].ID: "false",
	}
	p, err := svc.Submit(ctx, dto.SubmitFactCheckRequest{FactCheckID: fc.FactCheckID, WalletAddress: "0x1", Answers: answers})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if p.Score == nil || *p.Score != 2 || p.Reward == nil || *p.Reward != 3 {
		t.Fatalf("want score 2 reward 3, got %+v", p)
	}

	var req dto.UpdateFactCheckRequest
	if err := json.Unmarshal([]byte(`{"gameId": {"hex": "0x1a"}, "isFinished": true}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	resp, err := svc.Update(ctx, fc.FactCheckID, req)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.GameID == nil || *resp.GameID != 26 {
		t.Fatalf("want gameId 26, got %v", resp.GameID)
	}
	if want := []string{"0x1", "0x2"}; !reflect.DeepEqual(resp.Participants, want) {
		t.Fatalf("participants: want=%v got=%v", want, resp.Participants)
	}
	if len(resp.Rewards) != 2 || resp.Rewards[0] == nil || *resp.Rewards[0] != 3 || resp.Rewards[1] != nil {
		t.Fatalf("unexpected rewards: %v", resp.Rewards)
	}

	board, err := svc.Leaderboard(ctx, fc.FactCheckID)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if !board.FactCheck.IsFinished || len(board.Participants) != 2 {
		t.Fatalf("unexpected leaderboard: %+v", board)
	}

	want := []string{events.FactCheckCreated, events.FactCheckJoined, events.FactCheckJoined, events.FactCheckSubmitted}
	if got := pub.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events: want=%v got=%v", want, got)
	}

	if _, err := svc.Update(ctx, "zzzzz", req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestScoreFacts(t *testing.T) {
	facts := []model.Fact{{ID: "a", IsTrue: true}, {ID: "b", IsTrue: false}, {ID: "c", IsTrue: true}, {ID: "d", IsTrue: false}}
	answers := map[string]interface{}{"a": "TRUE", "b": true, "c": 1.0}
	if got := ScoreFacts(facts, answers); got != 1 {
		t.Fatalf("want=1 got=%d", got)
	}
}
