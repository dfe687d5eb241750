package dto

import "time"

// QuizSettings are the creator supplied fields shared by every create endpoint.
// The form tags serve the multipart PDF upload.
type QuizSettings struct {
	CreatorName     string  `json:"creatorName" form:"creatorName" binding:"required"`
	CreatorWallet   string  `json:"creatorWallet" form:"creatorWallet" binding:"required"`
	NumParticipants int     `json:"numParticipants" form:"numParticipants" binding:"required,gt=0"`
	TotalCost       float64 `json:"totalCost" form:"totalCost" binding:"gte=0"`
	QuestionCount   int     `json:"questionCount" form:"questionCount" binding:"required,gt=0"`
	RewardPerScore  float64 `json:"rewardPerScore" form:"rewardPerScore" binding:"gte=0"`
	IsPublic        *bool   `json:"isPublic" form:"isPublic"`
}

type CreatePromptQuizRequest struct {
	QuizSettings
	Prompt string `json:"prompt" binding:"required"`
}

type CreateURLQuizRequest struct {
	QuizSettings
	WebsiteURL string `json:"websiteUrl" binding:"required"`
}

type CreateVideoQuizRequest struct {
	QuizSettings
	YtVideoURL string `json:"ytVideoUrl" binding:"required"`
}

// CreatePDFQuizForm is bound from multipart/form-data; the file itself is the "pdf" part.
type CreatePDFQuizForm struct {
	QuizSettings
}

type VerifyRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

type JoinRequest struct {
	WalletAddress   string `json:"walletAddress" binding:"required"`
	ParticipantName string `json:"participantName" binding:"required"`
}

// SubmitQuizRequest maps question id to the chosen option index (0-3) or "no_answer".
type SubmitQuizRequest struct {
	QuizID        string                 `json:"quizId" binding:"required"`
	WalletAddress string                 `json:"walletAddress" binding:"required"`
	Answers       map[string]interface{} `json:"answers"`
}

// UpdateQuizRequest is a partial update; nil fields are left unchanged.
type UpdateQuizRequest struct {
	SID             *int64   `json:"sId"`
	CreatorName     *string  `json:"creatorName"`
	CreatorWallet   *string  `json:"creatorWallet"`
	NumParticipants *int     `json:"numParticipants"`
	TotalCost       *float64 `json:"totalCost"`
	QuestionCount   *int     `json:"questionCount"`
	RewardPerScore  *float64 `json:"rewardPerScore"`
	IsPublic        *bool    `json:"isPublic"`
	IsFinished      *bool    `json:"isFinished"`
}

type UpdateNFTTokenRequest struct {
	QuizID        string `json:"quizId" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	NFTTokenID    *int64 `json:"nftTokenId" binding:"required"`
}

type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type QuizResponse struct {
	SID             *int64             `json:"sId,omitempty"`
	QuizID          string             `json:"quizId"`
	CreatorName     string             `json:"creatorName"`
	CreatorWallet   string             `json:"creatorWallet"`
	Questions       []QuestionResponse `json:"questions" copier:"-"`
	NumParticipants int                `json:"numParticipants"`
	TotalCost       float64            `json:"totalCost"`
	QuestionCount   int                `json:"questionCount"`
	RewardPerScore  float64            `json:"rewardPerScore"`
	IsPublic        bool               `json:"isPublic"`
	IsFinished      bool               `json:"isFinished"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type ParticipantResponse struct {
	QuizID          string `json:"quizId"`
	ParticipantName string `json:"participantName"`
	WalletAddress   string `json:"walletAddress"`
	Score           *int   `json:"score"`
	NFTTokenID      *int64 `json:"nftTokenId,omitempty"`
}

type QuizLeaderboardResponse struct {
	Quiz         QuizResponse          `json:"quiz"`
	Participants []ParticipantResponse `json:"participants"`
}
