package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestApplicationUsecase_Apply(t *testing.T) {
	offer := activeOffer(5, "3.0")
	me := matching.CandidateProfile{
		ID:               uuid.New(),
		FullName:         "Ana Torres",
		Email:            "ana@example.com",
		HireDate:         testNow.Add(-913 * 24 * time.Hour),
		ReviewScores:     []decimal.Decimal{decimal.RequireFromString("3.5"), decimal.RequireFromString("4.5")},
		AchievementCount: 3,
		CertificateCount: 2,
	}
	apps := &fakeApplications{}
	notifier := &recordingNotifier{}
	uc := NewApplicationUsecase(apps, newFakeOffers(offer), &fakeCandidates{pool: []matching.CandidateProfile{me}}, notifier, testMetrics(), zap.NewNop())
	uc.now = func() time.Time { return testNow }

	a, err := uc.Apply(context.Background(), me.ID, offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if a.MatchScore.String() != "65.33" {
		t.Fatalf("expected stored score 65.33, got %s", a.MatchScore)
	}
	if a.Status != application.StatusPending || a.JobTitle != offer.Title {
		t.Fatalf("unexpected application: %+v", a)
	}
	if len(notifier.events) != 1 || notifier.events[0] != EventApplicationSubmitted {
		t.Fatalf("expected application_submitted, got %v", notifier.events)
	}

	if _, err := uc.Apply(context.Background(), me.ID, offer.ID); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	mine, err := uc.ListMine(context.Background(), me.ID)
	if err != nil || len(mine) != 1 {
		t.Fatalf("list mine: %v %v", mine, err)
	}
}

func TestApplicationUsecase_ApplyRejects(t *testing.T) {
	closed := activeOffer(0, "0")
	closed.Status = job.StatusClosed
	me := matching.CandidateProfile{ID: uuid.New(), HireDate: testNow}
	uc := NewApplicationUsecase(&fakeApplications{}, newFakeOffers(closed), &fakeCandidates{pool: []matching.CandidateProfile{me}}, nil, testMetrics(), nil)

	if _, err := uc.Apply(context.Background(), me.ID, uuid.New()); !errors.Is(err, ErrJobOfferNotFound) {
		t.Fatalf("expected ErrJobOfferNotFound, got %v", err)
	}
	if _, err := uc.Apply(context.Background(), me.ID, closed.ID); !errors.Is(err, ErrJobOfferClosed) {
		t.Fatalf("expected ErrJobOfferClosed, got %v", err)
	}
	if _, err := uc.Apply(context.Background(), uuid.Nil, closed.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestApplicationUsecase_ApplyRace(t *testing.T) {
	offer := activeOffer(0, "0")
	me := matching.CandidateProfile{ID: uuid.New(), HireDate: testNow}
	apps := &fakeApplications{createErr: repository.ErrAlreadyApplied}
	uc := NewApplicationUsecase(apps, newFakeOffers(offer), &fakeCandidates{pool: []matching.CandidateProfile{me}}, nil, testMetrics(), nil)

	if _, err := uc.Apply(context.Background(), me.ID, offer.ID); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied from unique constraint, got %v", err)
	}
}
