package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type CreateFactCheckRequest struct {
	Topic           string  `json:"topic" binding:"required"`
	Difficulty      string  `json:"difficulty"`
	CreatorName     string  `json:"creatorName" binding:"required"`
	CreatorWallet   string  `json:"creatorWallet" binding:"required"`
	NumParticipants int     `json:"numParticipants" binding:"required,gt=0"`
	TotalCost       float64 `json:"totalCost" binding:"gte=0"`
	RewardPerScore  float64 `json:"rewardPerScore" binding:"gte=0"`
	FactsCount      int     `json:"factsCount" binding:"required,gt=0"`
	IsPublic        bool    `json:"isPublic"`
}

// SubmitFactCheckRequest maps fact id to true/false, either as a bool or the strings "true"/"false".
type SubmitFactCheckRequest struct {
	FactCheckID   string                 `json:"factCheckId" binding:"required"`
	WalletAddress string                 `json:"walletAddress" binding:"required"`
	Answers       map[string]interface{} `json:"answers"`
}

// GameID accepts a JSON number, a numeric string or an ethers style {"hex": "0x1a"} object.
type GameID int64

func (g *GameID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Hex string `json:"hex"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		hex := strings.TrimPrefix(strings.TrimPrefix(wrapped.Hex, "0x"), "0X")
		v, err := strconv.ParseInt(hex, 16, 64)
		if err != nil {
			return fmt.Errorf("invalid gameId hex %q: %w", wrapped.Hex, err)
		}
		*g = GameID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid gameId %s", data)
		}
		n = json.Number(s)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("invalid gameId %s: %w", data, err)
	}
	*g = GameID(v)
	return nil
}

type UpdateFactCheckRequest struct {
	SID             *int64   `json:"sId"`
	GameID          *GameID  `json:"gameId"`
	CreatorName     *string  `json:"creatorName"`
	CreatorWallet   *string  `json:"creatorWallet"`
	NumParticipants *int     `json:"numParticipants"`
	TotalCost       *float64 `json:"totalCost"`
	FactsCount      *int     `json:"factsCount"`
	RewardPerScore  *float64 `json:"rewardPerScore"`
	IsPublic        *bool    `json:"isPublic"`
	IsFinished      *bool    `json:"isFinished"`
}

type UpdateFactCheckResponse struct {
	GameID       *int64     `json:"gameId"`
	Participants []string   `json:"participants"`
	Rewards      []*float64 `json:"rewards"`
}

type FactResponse struct {
	ID        string `json:"id"`
	Statement string `json:"statement"`
	IsTrue    bool   `json:"isTrue"`
}

type FactCheckResponse struct {
	SID             *int64         `json:"sId,omitempty"`
	GameID          *int64         `json:"gameId,omitempty"`
	FactCheckID     string         `json:"factCheckId"`
	CreatorName     string         `json:"creatorName"`
	CreatorWallet   string         `json:"creatorWallet"`
	Facts           []FactResponse `json:"facts" copier:"-"`
	NumParticipants int            `json:"numParticipants"`
	TotalCost       float64        `json:"totalCost"`
	FactsCount      int            `json:"factsCount"`
	RewardPerScore  float64        `json:"rewardPerScore"`
	IsPublic        bool           `json:"isPublic"`
	IsFinished      bool           `json:"isFinished"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type ParticipantFactResponse struct {
	FactCheckID     string   `json:"factCheckId"`
	ParticipantName string   `json:"participantName"`
	WalletAddress   string   `json:"walletAddress"`
	Score           *int     `json:"score"`
	Reward          *float64 `json:"reward"`
	NFTTokenID      *int64   `json:"nftTokenId,omitempty"`
}

type FactCheckLeaderboardResponse struct {
	FactCheck    FactCheckResponse         `json:"factCheck"`
	Participants []ParticipantFactResponse `json:"participants"`
}
