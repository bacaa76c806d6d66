package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/domain/review"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/metrics"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateReviewInput struct {
	EmployeeID          uuid.UUID
	Period              string
	Ratings             review.Ratings
	Strengths           *string
	AreasForImprovement *string
	Comments            *string
}

type ReviewUsecase interface {
	Create(ctx context.Context, reviewerID uuid.UUID, in CreateReviewInput) (review.Review, error)
	ListMine(ctx context.Context, reviewerID uuid.UUID) ([]review.Review, error)
	Employees(ctx context.Context, reviewerID uuid.UUID) ([]user.User, error)
}

type Reviews struct {
	reviews repository.ReviewRepository
	users   user.Repository
	cache   RankingCache
	metrics *metrics.Manager
	logger  *zap.Logger
	now     func() time.Time
}

func NewReviewUsecase(reviews repository.ReviewRepository, users user.Repository, cache RankingCache, m *metrics.Manager, logger *zap.Logger) *Reviews {
	if m == nil {
		m = metrics.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reviews{
		reviews: reviews,
		users:   users,
		cache:   cache,
		metrics: m,
		logger:  logger.Named("reviews"),
		now:     time.Now,
	}
}

// Create records a review. Every rating must be within 1..5 and the overall
// score is their mean rounded to two places.
func (u *Reviews) Create(ctx context.Context, reviewerID uuid.UUID, in CreateReviewInput) (review.Review, error) {
	if reviewerID == uuid.Nil {
		return review.Review{}, ErrUnauthorized
	}
	if in.EmployeeID == uuid.Nil || strings.TrimSpace(in.Period) == "" {
		return review.Review{}, ErrInvalidInput
	}
	if in.EmployeeID == reviewerID {
		return review.Review{}, ErrSelfReview
	}
	if err := in.Ratings.Validate(); err != nil {
		return review.Review{}, errors.Join(ErrInvalidInput, err)
	}

	employee, err := u.users.GetByID(ctx, in.EmployeeID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return review.Review{}, ErrUserNotFound
		}
		u.logger.Error("load employee failed", zap.String("employee_id", in.EmployeeID.String()), zap.Error(err))
		return review.Review{}, ErrInternal
	}
	if !employee.IsApproved {
		return review.Review{}, ErrUserNotFound
	}

	rv := review.Review{
		ID:                  uuid.New(),
		EmployeeID:          employee.ID,
		EmployeeName:        employee.FullName(),
		EmployeeEmail:       employee.Email,
		ReviewerID:          reviewerID,
		Period:              strings.TrimSpace(in.Period),
		ReviewedAt:          u.now().UTC(),
		Ratings:             in.Ratings,
		OverallScore:        in.Ratings.Overall(),
		Strengths:           in.Strengths,
		AreasForImprovement: in.AreasForImprovement,
		Comments:            in.Comments,
	}

	if err := u.reviews.Create(ctx, rv); err != nil {
		u.logger.Error("create review failed", zap.Error(err))
		return review.Review{}, ErrInternal
	}

	u.metrics.RecordReviewRecorded()
	invalidateRankings(ctx, u.cache, u.logger)
	return rv, nil
}

func (u *Reviews) ListMine(ctx context.Context, reviewerID uuid.UUID) ([]review.Review, error) {
	if reviewerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.reviews.ListByReviewer(ctx, reviewerID)
	if err != nil {
		u.logger.Error("list reviews failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

// Employees lists the approved employees the reviewer may review.
func (u *Reviews) Employees(ctx context.Context, reviewerID uuid.UUID) ([]user.User, error) {
	if reviewerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	all, err := u.users.ListApproved(ctx, user.RoleEmployee)
	if err != nil {
		u.logger.Error("list employees failed", zap.Error(err))
		return nil, ErrInternal
	}
	out := make([]user.User, 0, len(all))
	for _, e := range all {
		if e.ID == reviewerID {
			continue
		}
		e.PasswordHash = ""
		out = append(out, e)
	}
	return out, nil
}
