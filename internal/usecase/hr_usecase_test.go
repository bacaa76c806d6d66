package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestHRUsecase_ApproveUser(t *testing.T) {
	pending := user.User{ID: uuid.New(), Email: "new@example.com", FirstName: "New", LastName: "Hire", PasswordHash: "hash"}
	users := newFakeUsers(pending)
	cache := newMemCache()
	_ = cache.SetJSON(context.Background(), RankingCacheKey(uuid.New()), "stale", 0)
	notifier := &recordingNotifier{}
	uc := NewHRUsecase(users, newFakeOffers(), &fakeApplications{}, cache, notifier, zap.NewNop())

	got, err := uc.ApproveUser(context.Background(), pending.ID, "supervisor")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !got.IsApproved || got.Role != user.RoleSupervisor {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if len(cache.data) != 0 {
		t.Fatal("rankings not invalidated")
	}
	if len(notifier.events) != 1 || notifier.events[0] != EventEmployeeApproved {
		t.Fatalf("expected employee_approved event, got %v", notifier.events)
	}
}

func TestHRUsecase_ApproveUserErrors(t *testing.T) {
	uc := NewHRUsecase(newFakeUsers(), newFakeOffers(), &fakeApplications{}, nil, nil, nil)

	if _, err := uc.ApproveUser(context.Background(), uuid.New(), "janitor"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if _, err := uc.ApproveUser(context.Background(), uuid.New(), "HR"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestHRUsecase_Stats(t *testing.T) {
	users := newFakeUsers(
		user.User{ID: uuid.New()},
		user.User{ID: uuid.New()},
		user.User{ID: uuid.New(), IsApproved: true, Role: user.RoleEmployee},
	)
	open := job.Offer{ID: uuid.New(), Status: job.StatusActive}
	closed := job.Offer{ID: uuid.New(), Status: job.StatusClosed}
	apps := &fakeApplications{items: []application.Application{
		{ID: uuid.New(), Status: application.StatusPending},
		{ID: uuid.New(), Status: application.StatusAccepted},
	}}
	uc := NewHRUsecase(users, newFakeOffers(open, closed), apps, nil, nil, zap.NewNop())

	s, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.PendingUsersCount != 2 || s.OpenJobOffersCount != 1 || s.PendingApplicationsCount != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestHRUsecase_JobApplicationsAndStatus(t *testing.T) {
	offer := job.Offer{ID: uuid.New(), Status: job.StatusActive}
	appID := uuid.New()
	apps := &fakeApplications{items: []application.Application{
		{ID: appID, JobOfferID: offer.ID, Status: application.StatusPending, MatchScore: decimal.NewFromInt(70)},
	}}
	uc := NewHRUsecase(newFakeUsers(), newFakeOffers(offer), apps, nil, nil, zap.NewNop())

	if _, err := uc.JobApplications(context.Background(), uuid.New()); !errors.Is(err, ErrJobOfferNotFound) {
		t.Fatalf("expected ErrJobOfferNotFound, got %v", err)
	}
	list, err := uc.JobApplications(context.Background(), offer.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %v", list, err)
	}

	notes := "  strong fit "
	if err := uc.UpdateApplicationStatus(context.Background(), UpdateApplicationStatusInput{
		ApplicationID: appID, Status: "UnderReview", HRNotes: &notes,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if apps.items[0].Status != application.StatusUnderReview || *apps.items[0].HRNotes != "strong fit" {
		t.Fatalf("unexpected application: %+v", apps.items[0])
	}

	if err := uc.UpdateApplicationStatus(context.Background(), UpdateApplicationStatusInput{ApplicationID: appID, Status: "Hired"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := uc.UpdateApplicationStatus(context.Background(), UpdateApplicationStatusInput{ApplicationID: uuid.New(), Status: "Rejected"}); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestJobOfferUsecase_Create(t *testing.T) {
	offers := newFakeOffers()
	notifier := &recordingNotifier{}
	uc := NewJobOfferUsecase(offers, notifier, zap.NewNop())
	uc.now = func() time.Time { return testNow }
	hr := uuid.New()

	o, err := uc.Create(context.Background(), hr, CreateJobOfferInput{
		Title:               "  Data Engineer ",
		MinYearsExperience:  3,
		MinPerformanceScore: decimal.RequireFromString("3.456"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.Title != "Data Engineer" || o.Status != job.StatusActive || o.CreatedByID != hr {
		t.Fatalf("unexpected offer: %+v", o)
	}
	if !o.MinPerformanceScore.Equal(decimal.RequireFromString("3.46")) {
		t.Fatalf("min performance not rounded: %s", o.MinPerformanceScore)
	}
	if _, ok := offers.byID[o.ID]; !ok {
		t.Fatal("offer not stored")
	}
	if len(notifier.events) != 1 || notifier.events[0] != EventJobOfferCreated {
		t.Fatalf("expected job_offer_created, got %v", notifier.events)
	}
}

func TestJobOfferUsecase_CreateRejectsInvalid(t *testing.T) {
	uc := NewJobOfferUsecase(newFakeOffers(), nil, nil)
	uc.now = func() time.Time { return testNow }
	hr := uuid.New()
	past := testNow.Add(-time.Hour)

	if _, err := uc.Create(context.Background(), hr, CreateJobOfferInput{Title: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := uc.Create(context.Background(), hr, CreateJobOfferInput{Title: "X", ClosingAt: &past}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for past closing date, got %v", err)
	}
	if _, err := uc.Create(context.Background(), hr, CreateJobOfferInput{Title: "X", MinYearsExperience: -2}); !errors.Is(err, matching.ErrInvalidOpening) {
		t.Fatalf("expected ErrInvalidOpening, got %v", err)
	}
	if _, err := uc.Create(context.Background(), hr, CreateJobOfferInput{Title: "X", MinPerformanceScore: decimal.NewFromInt(6)}); !errors.Is(err, matching.ErrInvalidOpening) {
		t.Fatalf("expected ErrInvalidOpening, got %v", err)
	}
}

func TestJobOfferUsecase_Close(t *testing.T) {
	offer := job.Offer{ID: uuid.New(), Status: job.StatusActive}
	offers := newFakeOffers(offer)
	uc := NewJobOfferUsecase(offers, nil, zap.NewNop())

	if err := uc.Close(context.Background(), offer.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if offers.byID[offer.ID].Status != job.StatusClosed {
		t.Fatal("offer not closed")
	}
	if err := uc.Close(context.Background(), uuid.New()); !errors.Is(err, ErrJobOfferNotFound) {
		t.Fatalf("expected ErrJobOfferNotFound, got %v", err)
	}
}
