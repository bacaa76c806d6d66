package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const rankingKeyPrefix = "ranking:job:"

type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func RankingCacheKey(jobID uuid.UUID) string {
	return rankingKeyPrefix + jobID.String()
}

// invalidateRankings drops every cached ranking. Any change to a candidate's
// reviews, records or approval can reorder every job's list.
func invalidateRankings(ctx context.Context, cache RankingCache, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPattern(ctx, rankingKeyPrefix+"*"); err != nil {
		logger.Warn("ranking cache invalidation failed", zap.Error(err))
	}
}
