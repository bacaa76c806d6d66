package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newTestMatching(offers *fakeOffers, cands *fakeCandidates, cache RankingCache) *Matching {
	uc := NewMatchingUsecase(offers, cands, cache, testMetrics(), zap.NewNop(), config.MatchingConfig{
		FetchTimeout: 50 * time.Millisecond,
		CacheTTL:     time.Minute,
	})
	uc.now = func() time.Time { return testNow }
	return uc
}

func activeOffer(minYears int, minPerf string) job.Offer {
	return job.Offer{
		ID:                  uuid.New(),
		Title:               "Team Lead",
		Department:          "Engineering",
		MinYearsExperience:  minYears,
		MinPerformanceScore: decimal.RequireFromString(minPerf),
		Status:              job.StatusActive,
	}
}

func TestMatchingUsecase_RanksPool(t *testing.T) {
	offer := activeOffer(2, "3.0")
	strong := matching.CandidateProfile{
		ID:               uuid.New(),
		FullName:         "Strong",
		HireDate:         testNow.AddDate(-4, 0, 0),
		ReviewScores:     []decimal.Decimal{decimal.RequireFromString("4.5")},
		AchievementCount: 5,
		CertificateCount: 3,
	}
	weak := matching.CandidateProfile{ID: uuid.New(), FullName: "Weak", HireDate: testNow}

	uc := newTestMatching(newFakeOffers(offer), &fakeCandidates{pool: []matching.CandidateProfile{weak, strong}}, newMemCache())

	r, err := uc.RecommendedCandidates(context.Background(), offer.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.JobOfferID != offer.ID || r.JobTitle != "Team Lead" {
		t.Fatalf("unexpected ranking header: %+v", r)
	}
	if len(r.Candidates) != 2 || r.Candidates[0].FullName != "Strong" {
		t.Fatalf("expected Strong first, got %+v", r.Candidates)
	}
	if !r.Candidates[0].MatchScore.Equal(decimal.RequireFromString("96")) {
		t.Fatalf("expected 96, got %s", r.Candidates[0].MatchScore)
	}
}

func TestMatchingUsecase_EmptyPool(t *testing.T) {
	offer := activeOffer(0, "0")
	uc := newTestMatching(newFakeOffers(offer), &fakeCandidates{}, nil)

	r, err := uc.RecommendedCandidates(context.Background(), offer.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Candidates == nil || len(r.Candidates) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", r.Candidates)
	}
}

func TestMatchingUsecase_CachesResult(t *testing.T) {
	offer := activeOffer(1, "0")
	cands := &fakeCandidates{pool: []matching.CandidateProfile{{ID: uuid.New(), FullName: "A", HireDate: testNow.AddDate(-2, 0, 0)}}}
	cache := newMemCache()
	uc := newTestMatching(newFakeOffers(offer), cands, cache)

	first, err := uc.RecommendedCandidates(context.Background(), offer.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := uc.RecommendedCandidates(context.Background(), offer.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if cands.calls != 1 {
		t.Fatalf("expected one pool load, got %d", cands.calls)
	}
	if len(second.Candidates) != 1 || !second.Candidates[0].MatchScore.Equal(first.Candidates[0].MatchScore) {
		t.Fatalf("cached ranking differs: %+v vs %+v", second, first)
	}

	invalidateRankings(context.Background(), cache, zap.NewNop())
	if _, err := uc.RecommendedCandidates(context.Background(), offer.ID); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if cands.calls != 2 {
		t.Fatalf("expected reload after invalidation, got %d loads", cands.calls)
	}
}

func TestMatchingUsecase_UnknownOffer(t *testing.T) {
	cands := &fakeCandidates{}
	uc := newTestMatching(newFakeOffers(), cands, nil)

	_, err := uc.RecommendedCandidates(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobOfferNotFound) {
		t.Fatalf("expected ErrJobOfferNotFound, got %v", err)
	}
	if _, err := uc.RecommendedCandidates(context.Background(), uuid.Nil); !errors.Is(err, ErrJobOfferNotFound) {
		t.Fatalf("expected ErrJobOfferNotFound for nil id, got %v", err)
	}
	if cands.calls != 0 {
		t.Fatal("candidate pool must not be loaded")
	}
}

func TestMatchingUsecase_UpstreamFailures(t *testing.T) {
	offer := activeOffer(1, "0")

	t.Run("offer store down", func(t *testing.T) {
		offers := newFakeOffers(offer)
		offers.getErr = errors.New("connection refused")
		uc := newTestMatching(offers, &fakeCandidates{}, nil)

		_, err := uc.RecommendedCandidates(context.Background(), offer.ID)
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})

	t.Run("pool load error", func(t *testing.T) {
		uc := newTestMatching(newFakeOffers(offer), &fakeCandidates{err: errors.New("boom")}, nil)

		_, err := uc.RecommendedCandidates(context.Background(), offer.ID)
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})

	t.Run("pool load exceeds fetch timeout", func(t *testing.T) {
		cache := newMemCache()
		uc := newTestMatching(newFakeOffers(offer), &fakeCandidates{delay: time.Second}, cache)

		_, err := uc.RecommendedCandidates(context.Background(), offer.ID)
		if !errors.Is(err, ErrUpstreamUnavailable) || !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected upstream timeout, got %v", err)
		}
		if len(cache.data) != 0 {
			t.Fatal("failed ranking must not be cached")
		}
	})
}

func TestMatchingUsecase_InvalidOpening(t *testing.T) {
	offer := activeOffer(-1, "0")
	cands := &fakeCandidates{}
	uc := newTestMatching(newFakeOffers(offer), cands, nil)

	_, err := uc.RecommendedCandidates(context.Background(), offer.ID)
	if !errors.Is(err, matching.ErrInvalidOpening) {
		t.Fatalf("expected ErrInvalidOpening, got %v", err)
	}
	if cands.calls != 0 {
		t.Fatal("engine inputs must not be loaded for an invalid opening")
	}
}
