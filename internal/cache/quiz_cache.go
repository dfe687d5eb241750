package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lshigami/quizforge/config"
	"github.com/lshigami/quizforge/internal/model"
	"github.com/lshigami/quizforge/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// NewClient parses REDIS_URL. It returns nil when caching is not configured.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		log.Warn().Msg("REDIS_URL is not set. Quiz caching is disabled.")
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

// QuizRepository is a read-through cache in front of the database repository.
// Each quiz is stored as one JSON string under quiz:{quizId}.
type QuizRepository struct {
	repository.QuizRepository
	client *redis.Client
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

// WrapQuizRepository returns next unchanged when client is nil.
func WrapQuizRepository(next repository.QuizRepository, client *redis.Client, ttl time.Duration) repository.QuizRepository {
	if client == nil {
		return next
	}
	return &QuizRepository{
		QuizRepository: next,
		client:         client,
		ttl:            ttl,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuizRepository) FindByQuizID(ctx context.Context, quizID string) (*model.Quiz, error) {
	if quiz, ok := r.cached(ctx, quizID); ok {
		return quiz, nil
	}

	// The shared load must not inherit one caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	ch := r.sf.DoChan(quizID, func() (interface{}, error) {
		if quiz, ok := r.cached(flightCtx, quizID); ok {
			return quiz, nil
		}
		quiz, err := r.QuizRepository.FindByQuizID(flightCtx, quizID)
		if err != nil {
			return nil, err
		}
		if body, err := json.Marshal(quiz); err == nil {
			if err := r.client.Set(flightCtx, key(quizID), body, r.ttlWithJitter()).Err(); err != nil {
				log.Warn().Err(err).Str("quizId", quizID).Msg("Failed to cache quiz")
			}
		}
		return quiz, nil
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	// singleflight shares the pointer between waiters.
	shared := res.Val.(*model.Quiz)
	quiz := *shared
	return &quiz, nil
}

func (r *QuizRepository) Update(ctx context.Context, quizID string, fields map[string]interface{}) error {
	if err := r.QuizRepository.Update(ctx, quizID, fields); err != nil {
		return err
	}
	r.invalidate(ctx, quizID)
	return nil
}

func (r *QuizRepository) cached(ctx context.Context, quizID string) (*model.Quiz, bool) {
	body, err := r.client.Get(ctx, key(quizID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("quizId", quizID).Msg("Quiz cache read failed")
		}
		return nil, false
	}
	var quiz model.Quiz
	if err := json.Unmarshal(body, &quiz); err != nil {
		r.invalidate(ctx, quizID)
		return nil, false
	}
	return &quiz, true
}

func (r *QuizRepository) invalidate(ctx context.Context, quizID string) {
	if err := r.client.Del(ctx, key(quizID)).Err(); err != nil {
		log.Warn().Err(err).Str("quizId", quizID).Msg("Failed to invalidate cached quiz")
	}
}

func (r *QuizRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

func key(quizID string) string {
	return "quiz:" + quizID
}
