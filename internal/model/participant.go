package model

import "time"

// Participant is a wallet that joined a quiz. Score stays nil until the wallet submits.
type Participant struct {
	ID              uint      `gorm:"primarykey" json:"-"`
	QuizID          string    `gorm:"size:16;not null;uniqueIndex:idx_participant_quiz_wallet" json:"quizId"`
	ParticipantName string    `gorm:"not null" json:"participantName"`
	WalletAddress   string    `gorm:"not null;uniqueIndex:idx_participant_quiz_wallet" json:"walletAddress"`
	Score           *int      `json:"score"`
	NFTTokenID      *int64    `gorm:"column:nft_token_id" json:"nftTokenId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
