package service

import (
	"context"
	"encoding/json"

	"quizdeck/internal/cache"
	"quizdeck/internal/config"
	"quizdeck/internal/domain"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// quizDetailCache keeps the taker-facing quiz projection in Redis.
// singleflight collapses concurrent misses on the same quiz into one
// repository read.
type quizDetailCache struct {
	cache domain.Cache
	cfg   *config.Config
	group singleflight.Group
}

func newQuizDetailCache(c domain.Cache, cfg *config.Config) *quizDetailCache {
	return &quizDetailCache{cache: c, cfg: cfg}
}

func quizDetailKey(quizID string) string {
	return cache.GenerateCacheKey("quiz", "detail", quizID)
}

// get returns the cached detail for quizID, or (nil, false) on a miss.
// Cache failures are logged and treated as misses so Redis never takes
// the read path down.
func (q *quizDetailCache) get(ctx context.Context, quizID string) (*domain.Quiz, bool) {
	if q == nil || q.cache == nil {
		return nil, false
	}
	payload, err := q.cache.Get(ctx, quizDetailKey(quizID))
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("quiz detail cache read failed", zap.String("quizID", quizID), zap.Error(err))
		}
		return nil, false
	}
	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		logger.Get().Warn("quiz detail cache entry corrupt", zap.String("quizID", quizID), zap.Error(err))
		return nil, false
	}
	return &quiz, true
}

func (q *quizDetailCache) set(ctx context.Context, quiz *domain.Quiz) {
	if q == nil || q.cache == nil || quiz == nil {
		return
	}
	payload, err := json.Marshal(quiz)
	if err != nil {
		logger.Get().Warn("quiz detail cache marshal failed", zap.String("quizID", quiz.ID), zap.Error(err))
		return
	}
	if err := q.cache.Set(ctx, quizDetailKey(quiz.ID), string(payload), q.cfg.Cache.QuizDetailTTL); err != nil {
		logger.Get().Warn("quiz detail cache write failed", zap.String("quizID", quiz.ID), zap.Error(err))
	}
}

// loadThrough reads through the cache: hit, or one shared repository call
// per quiz across concurrent callers. A quiz that does not exist is
// returned as (nil, nil) and not cached.
func (q *quizDetailCache) loadThrough(ctx context.Context, quizID string, load func(ctx context.Context, id string) (*domain.Quiz, error)) (*domain.Quiz, error) {
	if q == nil || q.cache == nil {
		return load(ctx, quizID)
	}
	if quiz, ok := q.get(ctx, quizID); ok {
		return quiz, nil
	}

	v, err, _ := q.group.Do(quizDetailKey(quizID), func() (interface{}, error) {
		quiz, err := load(ctx, quizID)
		if err != nil {
			return nil, err
		}
		if quiz != nil {
			q.set(ctx, quiz)
		}
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	quiz, _ := v.(*domain.Quiz)
	return quiz, nil
}
