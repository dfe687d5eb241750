package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizQuestion is stored inline on the quiz row.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type Quiz struct {
	ID              uint                              `gorm:"primarykey" json:"-"`
	SID             *int64                            `gorm:"column:s_id" json:"sId,omitempty"`
	QuizID          string                            `gorm:"size:16;not null;uniqueIndex" json:"quizId"`
	CreatorName     string                            `gorm:"not null" json:"creatorName"`
	CreatorWallet   string                            `gorm:"not null;index" json:"creatorWallet"`
	Questions       datatypes.JSONSlice[QuizQuestion] `json:"questions"`
	NumParticipants int                               `gorm:"not null" json:"numParticipants"`
	TotalCost       float64                           `gorm:"not null" json:"totalCost"`
	QuestionCount   int                               `gorm:"not null" json:"questionCount"`
	RewardPerScore  float64                           `gorm:"not null" json:"rewardPerScore"`
	IsPublic        bool                              `gorm:"not null;default:false" json:"isPublic"`
	IsFinished      bool                              `gorm:"not null;default:false" json:"isFinished"`
	CreatedAt       time.Time                         `json:"createdAt"`
	UpdatedAt       time.Time                         `json:"updatedAt"`
}
