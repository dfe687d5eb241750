package model

import (
	"time"

	"gorm.io/datatypes"
)

type Fact struct {
	ID        string `json:"id"`
	Statement string `json:"statement"`
	IsTrue    bool   `json:"isTrue"`
}

type FactCheck struct {
	ID              uint                      `gorm:"primarykey" json:"-"`
	SID             *int64                    `gorm:"column:s_id" json:"sId,omitempty"`
	GameID          *int64                    `json:"gameId,omitempty"`
	FactCheckID     string                    `gorm:"size:16;not null;uniqueIndex" json:"factCheckId"`
	CreatorName     string                    `gorm:"not null" json:"creatorName"`
	CreatorWallet   string                    `gorm:"not null;index" json:"creatorWallet"`
	Facts           datatypes.JSONSlice[Fact] `json:"facts"`
	NumParticipants int                       `gorm:"not null" json:"numParticipants"`
	TotalCost       float64                   `gorm:"not null" json:"totalCost"`
	FactsCount      int                       `gorm:"not null" json:"factsCount"`
	RewardPerScore  float64                   `gorm:"not null" json:"rewardPerScore"`
	IsPublic        bool                      `gorm:"not null;default:false" json:"isPublic"`
	IsFinished      bool                      `gorm:"not null;default:false" json:"isFinished"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

// ParticipantFact is a wallet that joined a fact check.
type ParticipantFact struct {
	ID              uint      `gorm:"primarykey" json:"-"`
	FactCheckID     string    `gorm:"size:16;not null;uniqueIndex:idx_participant_fact_wallet" json:"factCheckId"`
	ParticipantName string    `gorm:"not null" json:"participantName"`
	WalletAddress   string    `gorm:"not null;uniqueIndex:idx_participant_fact_wallet" json:"walletAddress"`
	Score           *int      `json:"score"`
	Reward          *float64  `json:"reward"`
	NFTTokenID      *int64    `gorm:"column:nft_token_id" json:"nftTokenId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
