package dto

type FactChallengeRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
}

type FactItem struct {
	Statement   string `json:"statement"`
	IsTrue      bool   `json:"isTrue"`
	Explanation string `json:"explanation"`
}

type FactChallenge struct {
	Items      []FactItem `json:"items"`
	Difficulty string     `json:"difficulty"`
	Topic      string     `json:"topic"`
	TimeLimit  int        `json:"timeLimit"`
}

type FactChallengeResponse struct {
	Facts   FactChallenge `json:"facts"`
	Message string        `json:"message"`
}

type MemoryChallengeRequest struct {
	Difficulty string `json:"difficulty"`
}

type MemoryChallenge struct {
	Sequence       []string `json:"sequence"`
	Difficulty     string   `json:"difficulty"`
	TimeLimit      int      `json:"timeLimit"`
	SequenceLength int      `json:"sequenceLength"`
}

type MemoryChallengeResponse struct {
	Challenge MemoryChallenge `json:"challenge"`
	Message   string          `json:"message"`
}

type TypingWordsRequest struct {
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

type TypingWordsResponse struct {
	Words      []string `json:"words"`
	Count      int      `json:"count"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
}
