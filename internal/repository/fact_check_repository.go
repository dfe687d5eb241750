package repository

import (
	"context"

	"github.com/lshigami/quizforge/internal/model"
	"gorm.io/gorm"
)

type FactCheckRepository interface {
	Create(ctx context.Context, factCheck *model.FactCheck) error
	FindByFactCheckID(ctx context.Context, factCheckID string) (*model.FactCheck, error)
	ExistsByFactCheckID(ctx context.Context, factCheckID string) (bool, error)
	Update(ctx context.Context, factCheckID string, fields map[string]interface{}) error
}

type factCheckRepository struct {
	db *gorm.DB
}

func NewFactCheckRepository(db *gorm.DB) FactCheckRepository {
	return &factCheckRepository{db: db}
}

func (r *factCheckRepository) Create(ctx context.Context, factCheck *model.FactCheck) error {
	return r.db.WithContext(ctx).Create(factCheck).Error
}

func (r *factCheckRepository) FindByFactCheckID(ctx context.Context, factCheckID string) (*model.FactCheck, error) {
	var fc model.FactCheck
	err := r.db.WithContext(ctx).Where("fact_check_id = ?", factCheckID).First(&fc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &fc, nil
}

func (r *factCheckRepository) ExistsByFactCheckID(ctx context.Context, factCheckID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FactCheck{}).Where("fact_check_id = ?", factCheckID).Count(&count).Error
	return count > 0, err
}

func (r *factCheckRepository) Update(ctx context.Context, factCheckID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&model.FactCheck{}).Where("fact_check_id = ?", factCheckID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type ParticipantFactRepository interface {
	Create(ctx context.Context, participant *model.ParticipantFact) error
	FindByFactCheckAndWallet(ctx context.Context, factCheckID, walletAddress string) (*model.ParticipantFact, error)
	CountByFactCheck(ctx context.Context, factCheckID string) (int64, error)
	ListByFactCheck(ctx context.Context, factCheckID string) ([]model.ParticipantFact, error)
	Save(ctx context.Context, participant *model.ParticipantFact) error
}

type participantFactRepository struct {
	db *gorm.DB
}

func NewParticipantFactRepository(db *gorm.DB) ParticipantFactRepository {
	return &participantFactRepository{db: db}
}

func (r *participantFactRepository) Create(ctx context.Context, participant *model.ParticipantFact) error {
	return translate(r.db.WithContext(ctx).Create(participant).Error)
}

func (r *participantFactRepository) FindByFactCheckAndWallet(ctx context.Context, factCheckID, walletAddress string) (*model.ParticipantFact, error) {
	var p model.ParticipantFact
	err := r.db.WithContext(ctx).Where("fact_check_id = ? AND wallet_address = ?", factCheckID, walletAddress).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *participantFactRepository) CountByFactCheck(ctx context.Context, factCheckID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ParticipantFact{}).Where("fact_check_id = ?", factCheckID).Count(&count).Error
	return count, err
}

func (r *participantFactRepository) ListByFactCheck(ctx context.Context, factCheckID string) ([]model.ParticipantFact, error) {
	var participants []model.ParticipantFact
	err := r.db.WithContext(ctx).Where("fact_check_id = ?", factCheckID).Order("id ASC").Find(&participants).Error
	return participants, err
}

func (r *participantFactRepository) Save(ctx context.Context, participant *model.ParticipantFact) error {
	return r.db.WithContext(ctx).Save(participant).Error
}
