package repository

import (
	"context"

	"github.com/lshigami/quizforge/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *model.Quiz) error
	FindByQuizID(ctx context.Context, quizID string) (*model.Quiz, error)
	ExistsByQuizID(ctx context.Context, quizID string) (bool, error)
	Update(ctx context.Context, quizID string, fields map[string]interface{}) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *quizRepository) FindByQuizID(ctx context.Context, quizID string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).First(&quiz).Error
	if err != nil {
		return nil, translate(err)
	}
	return &quiz, nil
}

func (r *quizRepository) ExistsByQuizID(ctx context.Context, quizID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Quiz{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count > 0, err
}

// Update applies column/value pairs. Zero values in fields are written.
func (r *quizRepository) Update(ctx context.Context, quizID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&model.Quiz{}).Where("quiz_id = ?", quizID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *model.Participant) error
	FindByQuizAndWallet(ctx context.Context, quizID, walletAddress string) (*model.Participant, error)
	CountByQuiz(ctx context.Context, quizID string) (int64, error)
	ListByQuiz(ctx context.Context, quizID string) ([]model.Participant, error)
	Save(ctx context.Context, participant *model.Participant) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *model.Participant) error {
	return translate(r.db.WithContext(ctx).Create(participant).Error)
}

func (r *participantRepository) FindByQuizAndWallet(ctx context.Context, quizID, walletAddress string) (*model.Participant, error) {
	var p model.Participant
	err := r.db.WithContext(ctx).Where("quiz_id = ? AND wallet_address = ?", quizID, walletAddress).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *participantRepository) CountByQuiz(ctx context.Context, quizID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Participant{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

func (r *participantRepository) ListByQuiz(ctx context.Context, quizID string) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id ASC").Find(&participants).Error
	return participants, err
}

func (r *participantRepository) Save(ctx context.Context, participant *model.Participant) error {
	return r.db.WithContext(ctx).Save(participant).Error
}
