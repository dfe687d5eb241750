package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/events"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/lshigami/quizforge/internal/model"
	"github.com/lshigami/quizforge/internal/repository"
	"github.com/rs/zerolog/log"
)

// TextGenerator is a single-prompt completion backend, satisfied by *provider.GeminiClient.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type FactCheckService interface {
	Create(ctx context.Context, req dto.CreateFactCheckRequest) (*dto.FactCheckResponse, error)
	Verify(ctx context.Context, factCheckID, walletAddress string) (*dto.FactCheckResponse, error)
	Join(ctx context.Context, factCheckID string, req dto.JoinRequest) (*dto.ParticipantFactResponse, error)
	Leaderboard(ctx context.Context, factCheckID string) (*dto.FactCheckLeaderboardResponse, error)
	Submit(ctx context.Context, req dto.SubmitFactCheckRequest) (*dto.ParticipantFactResponse, error)
	Update(ctx context.Context, factCheckID string, req dto.UpdateFactCheckRequest) (*dto.UpdateFactCheckResponse, error)
}

type factCheckService struct {
	generator    TextGenerator
	factChecks   repository.FactCheckRepository
	participants repository.ParticipantFactRepository
	publisher    events.Publisher

	joinMu sync.Mutex
}

func NewFactCheckService(generator TextGenerator, factChecks repository.FactCheckRepository, participants repository.ParticipantFactRepository, publisher events.Publisher) FactCheckService {
	return &factCheckService{
		generator:    generator,
		factChecks:   factChecks,
		participants: participants,
		publisher:    publisher,
	}
}

const persistedFactPrompt = `Generate %d %s difficulty true/false statements about %s.

    RULES:
    - Mix of true and false statements
    - Each statement should be clear and concise
    - Avoid obvious true/false indicators
    - Include interesting but lesser-known facts
    - For false statements, make subtle but clear modifications to true facts

    Format each fact as a JSON object with:
    {
      "statement": "[fact statement]",
      "isTrue": boolean
    }

    Return as a JSON array of these objects.`

func (s *factCheckService) Create(ctx context.Context, req dto.CreateFactCheckRequest) (*dto.FactCheckResponse, error) {
	settings := factSettingsFor(req.Difficulty)
	prompt := fmt.Sprintf(persistedFactPrompt, req.FactsCount, settings.complexity, req.Topic)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("topic", req.Topic).Msg("Fact generation failed")
		return nil, fmt.Errorf("%w: %v", ingest.ErrGenerationFailed, err)
	}
	var generated []struct {
		Statement string `json:"statement"`
		IsTrue    bool   `json:"isTrue"`
	}
	if err := json.Unmarshal([]byte(StripJSONFence(raw)), &generated); err != nil {
		log.Warn().Err(err).Str("topic", req.Topic).Msg("Fact generation returned malformed JSON")
		return nil, fmt.Errorf("%w: malformed facts: %v", ingest.ErrGenerationFailed, err)
	}
	facts := make([]model.Fact, 0, len(generated))
	for _, g := range generated {
		if strings.TrimSpace(g.Statement) == "" {
			continue
		}
		facts = append(facts, model.Fact{ID: uuid.NewString(), Statement: g.Statement, IsTrue: g.IsTrue})
	}
	if len(facts) == 0 {
		return nil, fmt.Errorf("%w: no facts generated", ingest.ErrGenerationFailed)
	}

	factCheckID, err := newGameID(ctx, s.factChecks.ExistsByFactCheckID)
	if err != nil {
		return nil, fmt.Errorf("allocate fact check id: %w", err)
	}
	fc := &model.FactCheck{
		FactCheckID:     factCheckID,
		CreatorName:     req.CreatorName,
		CreatorWallet:   req.CreatorWallet,
		Facts:           facts,
		NumParticipants: req.NumParticipants,
		TotalCost:       req.TotalCost,
		FactsCount:      req.FactsCount,
		RewardPerScore:  req.RewardPerScore,
		IsPublic:        req.IsPublic,
	}
	if err := s.factChecks.Create(ctx, fc); err != nil {
		return nil, fmt.Errorf("save fact check: %w", err)
	}
	log.Info().Str("factCheckId", factCheckID).Int("facts", len(facts)).Msg("Fact check created")

	s.publish(ctx, events.Event{
		Type:    events.FactCheckCreated,
		GameID:  factCheckID,
		Wallet:  fc.CreatorWallet,
		Payload: map[string]any{"topic": req.Topic, "factsCount": len(facts)},
	})
	return toFactCheckResponse(fc)
}

func (s *factCheckService) Verify(ctx context.Context, factCheckID, walletAddress string) (*dto.FactCheckResponse, error) {
	fc, err := s.findFactCheck(ctx, factCheckID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(ctx, fc, walletAddress); err != nil {
		return nil, err
	}
	return toFactCheckResponse(fc)
}

func (s *factCheckService) Join(ctx context.Context, factCheckID string, req dto.JoinRequest) (*dto.ParticipantFactResponse, error) {
	fc, err := s.findFactCheck(ctx, factCheckID)
	if err != nil {
		return nil, err
	}

	s.joinMu.Lock()
	defer s.joinMu.Unlock()
	if err := s.checkAccess(ctx, fc, req.WalletAddress); err != nil {
		return nil, err
	}
	participant := &model.ParticipantFact{
		FactCheckID:     factCheckID,
		ParticipantName: req.ParticipantName,
		WalletAddress:   req.WalletAddress,
	}
	if err := s.participants.Create(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, forbidden("You have already participated in this fact check.")
		}
		return nil, fmt.Errorf("save participant: %w", err)
	}

	s.publish(ctx, events.Event{Type: events.FactCheckJoined, GameID: factCheckID, Wallet: req.WalletAddress})
	return toParticipantFactResponse(participant)
}

func (s *factCheckService) Leaderboard(ctx context.Context, factCheckID string) (*dto.FactCheckLeaderboardResponse, error) {
	fc, err := s.findFactCheck(ctx, factCheckID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participants.ListByFactCheck(ctx, factCheckID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	fcResp, err := toFactCheckResponse(fc)
	if err != nil {
		return nil, err
	}
	resp := &dto.FactCheckLeaderboardResponse{FactCheck: *fcResp, Participants: []dto.ParticipantFactResponse{}}
	if err := copier.Copy(&resp.Participants, &participants); err != nil {
		return nil, fmt.Errorf("map participants: %w", err)
	}
	return resp, nil
}

func (s *factCheckService) Submit(ctx context.Context, req dto.SubmitFactCheckRequest) (*dto.ParticipantFactResponse, error) {
	fc, err := s.findFactCheck(ctx, req.FactCheckID)
	if err != nil {
		return nil, err
	}
	participant, err := s.participants.FindByFactCheckAndWallet(ctx, req.FactCheckID, req.WalletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, forbidden("You have not joined this fact check.")
		}
		return nil, err
	}

	score := ScoreFacts(fc.Facts, req.Answers)
	reward := float64(score) * fc.RewardPerScore
	participant.Score = &score
	participant.Reward = &reward
	if err := s.participants.Save(ctx, participant); err != nil {
		return nil, fmt.Errorf("save score: %w", err)
	}
	log.Info().Str("factCheckId", req.FactCheckID).Str("wallet", req.WalletAddress).Int("score", score).Float64("reward", reward).Msg("Fact check submitted")

	s.publish(ctx, events.Event{
		Type:    events.FactCheckSubmitted,
		GameID:  req.FactCheckID,
		Wallet:  req.WalletAddress,
		Score:   &score,
		Payload: map[string]any{"reward": reward},
	})
	return toParticipantFactResponse(participant)
}

func (s *factCheckService) Update(ctx context.Context, factCheckID string, req dto.UpdateFactCheckRequest) (*dto.UpdateFactCheckResponse, error) {
	fields := factCheckUpdateFields(req)
	if len(fields) > 0 {
		if err := s.factChecks.Update(ctx, factCheckID, fields); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Fact Check not found")
			}
			return nil, fmt.Errorf("update fact check: %w", err)
		}
	}
	fc, err := s.findFactCheck(ctx, factCheckID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participants.ListByFactCheck(ctx, factCheckID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	resp := &dto.UpdateFactCheckResponse{
		GameID:       fc.GameID,
		Participants: make([]string, 0, len(participants)),
		Rewards:      make([]*float64, 0, len(participants)),
	}
	for _, p := range participants {
		resp.Participants = append(resp.Participants, p.WalletAddress)
		resp.Rewards = append(resp.Rewards, p.Reward)
	}
	return resp, nil
}

func (s *factCheckService) findFactCheck(ctx context.Context, factCheckID string) (*model.FactCheck, error) {
	fc, err := s.factChecks.FindByFactCheckID(ctx, factCheckID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Fact Check not found")
		}
		return nil, fmt.Errorf("find fact check: %w", err)
	}
	return fc, nil
}

func (s *factCheckService) checkAccess(ctx context.Context, fc *model.FactCheck, walletAddress string) error {
	if !fc.IsPublic {
		return forbidden("This fact check is private.")
	}
	_, err := s.participants.FindByFactCheckAndWallet(ctx, fc.FactCheckID, walletAddress)
	switch {
	case err == nil:
		return forbidden("You have already participated in this fact check.")
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}
	count, err := s.participants.CountByFactCheck(ctx, fc.FactCheckID)
	if err != nil {
		return err
	}
	if count >= int64(fc.NumParticipants) {
		return forbidden("The number of participants for this fact check has been reached.")
	}
	return nil
}

func (s *factCheckService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("gameId", event.GameID).Msg("Failed to publish event")
	}
}

// ScoreFacts counts answered facts whose verdict matches. Missing answers score nothing.
func ScoreFacts(facts []model.Fact, answers map[string]interface{}) int {
	score := 0
	for _, f := range facts {
		verdict, ok := answerVerdict(answers[f.ID])
		if ok && verdict == f.IsTrue {
			score++
		}
	}
	return score
}

func answerVerdict(v interface{}) (bool, bool) {
	switch a := v.(type) {
	case bool:
		return a, true
	case string:
		switch strings.ToLower(strings.TrimSpace(a)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func factCheckUpdateFields(req dto.UpdateFactCheckRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.SID != nil {
		fields["s_id"] = *req.SID
	}
	if req.GameID != nil {
		fields["game_id"] = int64(*req.GameID)
	}
	if req.CreatorName != nil {
		fields["creator_name"] = *req.CreatorName
	}
	if req.CreatorWallet != nil {
		fields["creator_wallet"] = *req.CreatorWallet
	}
	if req.NumParticipants != nil {
		fields["num_participants"] = *req.NumParticipants
	}
	if req.TotalCost != nil {
		fields["total_cost"] = *req.TotalCost
	}
	if req.FactsCount != nil {
		fields["facts_count"] = *req.FactsCount
	}
	if req.RewardPerScore != nil {
		fields["reward_per_score"] = *req.RewardPerScore
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if req.IsFinished != nil {
		fields["is_finished"] = *req.IsFinished
	}
	return fields
}

func toFactCheckResponse(fc *model.FactCheck) (*dto.FactCheckResponse, error) {
	var resp dto.FactCheckResponse
	if err := copier.Copy(&resp, fc); err != nil {
		return nil, fmt.Errorf("map fact check: %w", err)
	}
	facts := []model.Fact(fc.Facts)
	resp.Facts = []dto.FactResponse{}
	if err := copier.Copy(&resp.Facts, &facts); err != nil {
		return nil, fmt.Errorf("map facts: %w", err)
	}
	return &resp, nil
}

func toParticipantFactResponse(p *model.ParticipantFact) (*dto.ParticipantFactResponse, error) {
	var resp dto.ParticipantFactResponse
	if err := copier.Copy(&resp, p); err != nil {
		return nil, fmt.Errorf("map participant: %w", err)
	}
	return &resp, nil
}
