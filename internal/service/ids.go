package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

const (
	idAlphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	gameIDLength  = 5
	maxIDAttempts = 5
)

var errIDExhausted = errors.New("could not allocate a unique game id")

func randomGameID() (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(idAlphabet)))
	for i := 0; i < gameIDLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(idAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// newGameID draws ids until exists reports a free one.
func newGameID(ctx context.Context, exists func(context.Context, string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := randomGameID()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", errIDExhausted
}

var jsonFence = regexp.MustCompile("```json|```")

// StripJSONFence removes markdown code fences a model wraps around JSON output.
func StripJSONFence(s string) string {
	return strings.TrimSpace(jsonFence.ReplaceAllString(s, ""))
}
