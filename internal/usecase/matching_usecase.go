package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/metrics"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ranking is the ordered candidate list for one job offer.
type Ranking struct {
	JobOfferID  uuid.UUID              `json:"jobOfferId"`
	JobTitle    string                 `json:"jobTitle"`
	Department  string                 `json:"department"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Candidates  []matching.MatchResult `json:"candidates"`
}

type MatchingUsecase interface {
	RecommendedCandidates(ctx context.Context, jobID uuid.UUID) (Ranking, error)
}

type Matching struct {
	offers     repository.JobOfferRepository
	candidates repository.CandidateRepository
	cache      RankingCache
	metrics    *metrics.Manager
	logger     *zap.Logger

	fetchTimeout time.Duration
	cacheTTL     time.Duration
	now          func() time.Time
}

func NewMatchingUsecase(
	offers repository.JobOfferRepository,
	candidates repository.CandidateRepository,
	cache RankingCache,
	m *metrics.Manager,
	logger *zap.Logger,
	cfg config.MatchingConfig,
) *Matching {
	if m == nil {
		m = metrics.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{
		offers:       offers,
		candidates:   candidates,
		cache:        cache,
		metrics:      m,
		logger:       logger.Named("matching"),
		fetchTimeout: cfg.FetchTimeout,
		cacheTTL:     cfg.CacheTTL,
		now:          time.Now,
	}
}

// RecommendedCandidates ranks every eligible employee against the job offer.
// Load failures surface as ErrJobOfferNotFound or ErrUpstreamUnavailable and
// the engine is not run; a malformed offer surfaces as matching.ErrInvalidOpening.
func (u *Matching) RecommendedCandidates(ctx context.Context, jobID uuid.UUID) (Ranking, error) {
	if jobID == uuid.Nil {
		return Ranking{}, ErrJobOfferNotFound
	}

	key := RankingCacheKey(jobID)
	if u.cache != nil {
		var cached Ranking
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("ranking cache read failed", zap.String("key", key), zap.Error(err))
		}
		u.metrics.RecordCacheLookup(hit && err == nil)
		if hit && err == nil {
			return cached, nil
		}
	}

	start := time.Now()

	fetchCtx := ctx
	if u.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, u.fetchTimeout)
		defer cancel()
	}

	offer, err := u.offers.GetByID(fetchCtx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobOfferNotFound) {
			u.metrics.RecordRankingError("not_found")
			return Ranking{}, ErrJobOfferNotFound
		}
		u.metrics.RecordRankingError("upstream")
		u.logger.Error("load job offer failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return Ranking{}, fmt.Errorf("%w: load job offer: %w", ErrUpstreamUnavailable, err)
	}

	opening := offer.Opening()
	if err := opening.Validate(); err != nil {
		u.metrics.RecordRankingError("invalid_opening")
		return Ranking{}, err
	}

	pool, err := u.candidates.ListProfiles(fetchCtx)
	if err != nil {
		u.metrics.RecordRankingError("upstream")
		u.logger.Error("load candidate pool failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return Ranking{}, fmt.Errorf("%w: load candidates: %w", ErrUpstreamUnavailable, err)
	}

	now := u.now()
	ranking := Ranking{
		JobOfferID:  offer.ID,
		JobTitle:    offer.Title,
		Department:  offer.Department,
		GeneratedAt: now.UTC(),
		Candidates:  matching.Rank(opening, pool, now),
	}

	took := time.Since(start)
	u.metrics.RecordRanking(float64(took.Microseconds())/1000, len(pool))
	u.logger.Debug("ranking computed",
		zap.String("job_id", jobID.String()),
		zap.Int("candidates", len(pool)),
		zap.Duration("took", took),
	)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, ranking, u.cacheTTL); err != nil {
			u.logger.Warn("ranking cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return ranking, nil
}
