package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateJobOfferInput struct {
	Title                   string
	Description             string
	Department              string
	RequiredSkills          string
	MinYearsExperience      int
	MinPerformanceScore     decimal.Decimal
	PreferredCertifications *string
	ClosingAt               *time.Time
}

type JobOfferUsecase interface {
	List(ctx context.Context) ([]job.Offer, error)
	Create(ctx context.Context, createdBy uuid.UUID, in CreateJobOfferInput) (job.Offer, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type JobOffers struct {
	offers   repository.JobOfferRepository
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewJobOfferUsecase(offers repository.JobOfferRepository, notifier Notifier, logger *zap.Logger) *JobOffers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobOffers{
		offers:   offers,
		notifier: notifierOrNop(notifier),
		logger:   logger.Named("job_offers"),
		now:      time.Now,
	}
}

func (u *JobOffers) List(ctx context.Context) ([]job.Offer, error) {
	out, err := u.offers.List(ctx)
	if err != nil {
		u.logger.Error("list job offers failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

// Create rejects openings the matching engine would refuse with matching.ErrInvalidOpening.
func (u *JobOffers) Create(ctx context.Context, createdBy uuid.UUID, in CreateJobOfferInput) (job.Offer, error) {
	if createdBy == uuid.Nil {
		return job.Offer{}, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Offer{}, ErrInvalidInput
	}

	now := u.now().UTC()
	if in.ClosingAt != nil && !in.ClosingAt.After(now) {
		return job.Offer{}, ErrInvalidInput
	}

	o := job.Offer{
		ID:                      uuid.New(),
		Title:                   title,
		Description:             strings.TrimSpace(in.Description),
		Department:              strings.TrimSpace(in.Department),
		RequiredSkills:          strings.TrimSpace(in.RequiredSkills),
		MinYearsExperience:      in.MinYearsExperience,
		MinPerformanceScore:     in.MinPerformanceScore.Round(2),
		PreferredCertifications: in.PreferredCertifications,
		Status:                  job.StatusActive,
		PostedAt:                now,
		ClosingAt:               in.ClosingAt,
		CreatedByID:             createdBy,
	}
	if err := o.Opening().Validate(); err != nil {
		return job.Offer{}, err
	}

	if err := u.offers.Create(ctx, o); err != nil {
		u.logger.Error("create job offer failed", zap.Error(err))
		return job.Offer{}, ErrInternal
	}

	u.logger.Info("job offer created", zap.String("job_id", o.ID.String()), zap.String("title", o.Title))
	u.notifier.Notify(EventJobOfferCreated, map[string]any{
		"jobOfferId": o.ID,
		"title":      o.Title,
		"department": o.Department,
	})
	return o, nil
}

func (u *JobOffers) Close(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrJobOfferNotFound
	}
	if err := u.offers.UpdateStatus(ctx, id, job.StatusClosed); err != nil {
		if errors.Is(err, repository.ErrJobOfferNotFound) {
			return ErrJobOfferNotFound
		}
		u.logger.Error("close job offer failed", zap.String("job_id", id.String()), zap.Error(err))
		return ErrInternal
	}
	u.logger.Info("job offer closed", zap.String("job_id", id.String()))
	return nil
}

