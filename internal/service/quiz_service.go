package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
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

const noAnswer = "no_answer"

var optionLetters = [4]string{"A", "B", "C", "D"}

// QuestionProducer is satisfied by *ingest.Pipeline.
type QuestionProducer interface {
	ProduceQuestions(ctx context.Context, src ingest.Source, count int) (ingest.QuestionSet, error)
}

type QuizService interface {
	CreateFromPrompt(ctx context.Context, req dto.CreatePromptQuizRequest) (*dto.QuizResponse, error)
	CreateFromURL(ctx context.Context, req dto.CreateURLQuizRequest) (*dto.QuizResponse, error)
	CreateFromVideo(ctx context.Context, req dto.CreateVideoQuizRequest) (*dto.QuizResponse, error)
	CreateFromPDF(ctx context.Context, form dto.CreatePDFQuizForm, pdf []byte) (*dto.QuizResponse, error)
	Verify(ctx context.Context, quizID, walletAddress string) (*dto.QuizResponse, error)
	Join(ctx context.Context, quizID string, req dto.JoinRequest) (*dto.ParticipantResponse, error)
	Leaderboard(ctx context.Context, quizID string) (*dto.QuizLeaderboardResponse, error)
	Submit(ctx context.Context, req dto.SubmitQuizRequest) (*dto.ParticipantResponse, error)
	Update(ctx context.Context, quizID string, req dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	UpdateNFTTokenID(ctx context.Context, req dto.UpdateNFTTokenRequest) (*dto.ParticipantResponse, error)
}

type quizService struct {
	producer     QuestionProducer
	quizzes      repository.QuizRepository
	participants repository.ParticipantRepository
	publisher    events.Publisher

	// joinMu serializes the capacity check and insert of Join.
	joinMu sync.Mutex
}

func NewQuizService(producer QuestionProducer, quizzes repository.QuizRepository, participants repository.ParticipantRepository, publisher events.Publisher) QuizService {
	return &quizService{
		producer:     producer,
		quizzes:      quizzes,
		participants: participants,
		publisher:    publisher,
	}
}

func (s *quizService) CreateFromPrompt(ctx context.Context, req dto.CreatePromptQuizRequest) (*dto.QuizResponse, error) {
	return s.create(ctx, req.QuizSettings, ingest.PromptSource(req.Prompt), false)
}

func (s *quizService) CreateFromURL(ctx context.Context, req dto.CreateURLQuizRequest) (*dto.QuizResponse, error) {
	return s.create(ctx, req.QuizSettings, ingest.URLSource(req.WebsiteURL), true)
}

func (s *quizService) CreateFromVideo(ctx context.Context, req dto.CreateVideoQuizRequest) (*dto.QuizResponse, error) {
	return s.create(ctx, req.QuizSettings, ingest.VideoSource(req.YtVideoURL), false)
}

func (s *quizService) CreateFromPDF(ctx context.Context, form dto.CreatePDFQuizForm, pdf []byte) (*dto.QuizResponse, error) {
	return s.create(ctx, form.QuizSettings, ingest.DocumentSource(pdf), false)
}

func (s *quizService) create(ctx context.Context, settings dto.QuizSettings, src ingest.Source, defaultPublic bool) (*dto.QuizResponse, error) {
	generated, err := s.producer.ProduceQuestions(ctx, src, settings.QuestionCount)
	if err != nil {
		log.Warn().Err(err).Str("source", string(src.Kind)).Msg("Quiz generation failed")
		return nil, err
	}

	quizID, err := newGameID(ctx, s.quizzes.ExistsByQuizID)
	if err != nil {
		return nil, fmt.Errorf("allocate quiz id: %w", err)
	}

	isPublic := defaultPublic
	if settings.IsPublic != nil {
		isPublic = *settings.IsPublic
	}
	quiz := &model.Quiz{
		QuizID:          quizID,
		CreatorName:     settings.CreatorName,
		CreatorWallet:   settings.CreatorWallet,
		Questions:       toQuizQuestions(generated),
		NumParticipants: settings.NumParticipants,
		TotalCost:       settings.TotalCost,
		QuestionCount:   settings.QuestionCount,
		RewardPerScore:  settings.RewardPerScore,
		IsPublic:        isPublic,
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		log.Error().Err(err).Str("quizId", quizID).Msg("Failed to save quiz")
		return nil, fmt.Errorf("save quiz: %w", err)
	}
	log.Info().Str("quizId", quizID).Str("source", string(src.Kind)).Int("questions", len(quiz.Questions)).Msg("Quiz created")

	s.publish(ctx, events.Event{
		Type:    events.QuizCreated,
		GameID:  quizID,
		Wallet:  quiz.CreatorWallet,
		Payload: map[string]any{"source": string(src.Kind), "questionCount": len(quiz.Questions)},
	})
	return toQuizResponse(quiz)
}

func (s *quizService) Verify(ctx context.Context, quizID, walletAddress string) (*dto.QuizResponse, error) {
	quiz, err := s.findQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(ctx, quiz, walletAddress); err != nil {
		return nil, err
	}
	return toQuizResponse(quiz)
}

func (s *quizService) Join(ctx context.Context, quizID string, req dto.JoinRequest) (*dto.ParticipantResponse, error) {
	quiz, err := s.findQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	s.joinMu.Lock()
	defer s.joinMu.Unlock()
	if err := s.checkAccess(ctx, quiz, req.WalletAddress); err != nil {
		return nil, err
	}
	participant := &model.Participant{
		QuizID:          quizID,
		ParticipantName: req.ParticipantName,
		WalletAddress:   req.WalletAddress,
	}
	if err := s.participants.Create(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, forbidden("You have already participated in this quiz.")
		}
		return nil, fmt.Errorf("save participant: %w", err)
	}

	s.publish(ctx, events.Event{Type: events.QuizJoined, GameID: quizID, Wallet: req.WalletAddress})
	return toParticipantResponse(participant)
}

func (s *quizService) Leaderboard(ctx context.Context, quizID string) (*dto.QuizLeaderboardResponse, error) {
	quiz, err := s.findQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participants.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	quizResp, err := toQuizResponse(quiz)
	if err != nil {
		return nil, err
	}
	resp := &dto.QuizLeaderboardResponse{Quiz: *quizResp, Participants: []dto.ParticipantResponse{}}
	if err := copier.Copy(&resp.Participants, &participants); err != nil {
		return nil, fmt.Errorf("map participants: %w", err)
	}
	return resp, nil
}

func (s *quizService) Submit(ctx context.Context, req dto.SubmitQuizRequest) (*dto.ParticipantResponse, error) {
	quiz, err := s.findQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	participant, err := s.participants.FindByQuizAndWallet(ctx, req.QuizID, req.WalletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, forbidden("You have not joined this quiz.")
		}
		return nil, err
	}

	score := ScoreQuiz(quiz.Questions, req.Answers)
	participant.Score = &score
	if err := s.participants.Save(ctx, participant); err != nil {
		return nil, fmt.Errorf("save score: %w", err)
	}
	log.Info().Str("quizId", req.QuizID).Str("wallet", req.WalletAddress).Int("score", score).Msg("Quiz submitted")

	s.publish(ctx, events.Event{Type: events.QuizSubmitted, GameID: req.QuizID, Wallet: req.WalletAddress, Score: &score})
	return toParticipantResponse(participant)
}

func (s *quizService) Update(ctx context.Context, quizID string, req dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	fields := quizUpdateFields(req)
	if len(fields) > 0 {
		if err := s.quizzes.Update(ctx, quizID, fields); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Quiz not found")
			}
			return nil, fmt.Errorf("update quiz: %w", err)
		}
	}
	quiz, err := s.findQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return toQuizResponse(quiz)
}

func (s *quizService) UpdateNFTTokenID(ctx context.Context, req dto.UpdateNFTTokenRequest) (*dto.ParticipantResponse, error) {
	participant, err := s.participants.FindByQuizAndWallet(ctx, req.QuizID, req.WalletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Participant not found")
		}
		return nil, err
	}
	participant.NFTTokenID = req.NFTTokenID
	if err := s.participants.Save(ctx, participant); err != nil {
		return nil, fmt.Errorf("save nft token id: %w", err)
	}
	return toParticipantResponse(participant)
}

func (s *quizService) findQuiz(ctx context.Context, quizID string) (*model.Quiz, error) {
	quiz, err := s.quizzes.FindByQuizID(ctx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Quiz not found")
		}
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	return quiz, nil
}

// checkAccess rejects private quizzes, repeat wallets and full quizzes, in that order.
func (s *quizService) checkAccess(ctx context.Context, quiz *model.Quiz, walletAddress string) error {
	if !quiz.IsPublic {
		return forbidden("This quiz is private.")
	}
	_, err := s.participants.FindByQuizAndWallet(ctx, quiz.QuizID, walletAddress)
	switch {
	case err == nil:
		return forbidden("You have already participated in this quiz.")
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}
	count, err := s.participants.CountByQuiz(ctx, quiz.QuizID)
	if err != nil {
		return err
	}
	if count >= int64(quiz.NumParticipants) {
		return forbidden("The number of participants for this quiz has been reached.")
	}
	return nil
}

func (s *quizService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("gameId", event.GameID).Msg("Failed to publish event")
	}
}

// ScoreQuiz counts answers whose option letter equals the correct answer.
// Unanswered, "no_answer" and out of range entries score nothing.
func ScoreQuiz(questions []model.QuizQuestion, answers map[string]interface{}) int {
	score := 0
	for _, q := range questions {
		idx, ok := answerIndex(answers[q.ID])
		if ok && optionLetters[idx] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

func answerIndex(v interface{}) (int, bool) {
	var idx int
	switch a := v.(type) {
	case float64:
		if a != float64(int(a)) {
			return 0, false
		}
		idx = int(a)
	case int:
		idx = a
	case json.Number:
		n, err := a.Int64()
		if err != nil {
			return 0, false
		}
		idx = int(n)
	case string:
		if a == noAnswer {
			return 0, false
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, false
		}
		idx = n
	default:
		return 0, false
	}
	if idx < 0 || idx >= len(optionLetters) {
		return 0, false
	}
	return idx, true
}

func quizUpdateFields(req dto.UpdateQuizRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.SID != nil {
		fields["s_id"] = *req.SID
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
	if req.QuestionCount != nil {
		fields["question_count"] = *req.QuestionCount
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

func toQuizQuestions(set ingest.QuestionSet) []model.QuizQuestion {
	questions := make([]model.QuizQuestion, 0, len(set))
	for _, q := range set {
		questions = append(questions, model.QuizQuestion{
			ID:            uuid.NewString(),
			Question:      q.Question,
			Options:       append([]string(nil), q.Options[:]...),
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return questions
}

func toQuizResponse(quiz *model.Quiz) (*dto.QuizResponse, error) {
	var resp dto.QuizResponse
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("map quiz: %w", err)
	}
	questions := []model.QuizQuestion(quiz.Questions)
	resp.Questions = []dto.QuestionResponse{}
	if err := copier.Copy(&resp.Questions, &questions); err != nil {
		return nil, fmt.Errorf("map questions: %w", err)
	}
	return &resp, nil
}

func toParticipantResponse(p *model.Participant) (*dto.ParticipantResponse, error) {
	var resp dto.ParticipantResponse
	if err := copier.Copy(&resp, p); err != nil {
		return nil, fmt.Errorf("map participant: %w", err)
	}
	return &resp, nil
}
