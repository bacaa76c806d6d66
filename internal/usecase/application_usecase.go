package usecase

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/metrics"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
	ListMine(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error)
}

type Applications struct {
	applications repository.ApplicationRepository
	offers       repository.JobOfferRepository
	candidates   repository.CandidateRepository
	notifier     Notifier
	metrics      *metrics.Manager
	logger       *zap.Logger
	now          func() time.Time
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	offers repository.JobOfferRepository,
	candidates repository.CandidateRepository,
	notifier Notifier,
	m *metrics.Manager,
	logger *zap.Logger,
) *Applications {
	if m == nil {
		m = metrics.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applications{
		applications: applications,
		offers:       offers,
		candidates:   candidates,
		notifier:     notifierOrNop(notifier),
		metrics:      m,
		logger:       logger.Named("applications"),
		now:          time.Now,
	}
}

// Apply stores the applicant's match score as of now alongside the application.
func (u *Applications) Apply(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	if applicantID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return application.Application{}, ErrJobOfferNotFound
	}

	offer, err := u.offers.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobOfferNotFound) {
			return application.Application{}, ErrJobOfferNotFound
		}
		u.logger.Error("load job offer failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return application.Application{}, ErrInternal
	}
	if !offer.IsActive() {
		return application.Application{}, ErrJobOfferClosed
	}

	exists, err := u.applications.Exists(ctx, jobID, applicantID)
	if err != nil {
		u.logger.Error("check existing application failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	profile, err := u.candidates.GetProfile(ctx, applicantID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return application.Application{}, ErrUnauthorized
		}
		u.logger.Error("load candidate profile failed", zap.String("user_id", applicantID.String()), zap.Error(err))
		return application.Application{}, ErrInternal
	}

	now := u.now()
	score := matching.Score(offer.Opening(), profile, now)

	a := application.Application{
		ID:             uuid.New(),
		JobOfferID:     offer.ID,
		JobTitle:       offer.Title,
		ApplicantID:    applicantID,
		ApplicantName:  profile.FullName,
		ApplicantEmail: profile.Email,
		Department:     profile.Department,
		Position:       profile.Position,
		AppliedAt:      now.UTC(),
		Status:         application.StatusPending,
		MatchScore:     score.MatchScore,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return application.Application{}, ErrAlreadyApplied
		}
		u.logger.Error("create application failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	u.metrics.RecordApplicationSubmitted()
	u.logger.Info("application submitted",
		zap.String("job_id", jobID.String()),
		zap.String("applicant_id", applicantID.String()),
		zap.String("match_score", a.MatchScore.StringFixed(2)),
	)
	u.notifier.Notify(EventApplicationSubmitted, map[string]any{
		"applicationId": a.ID,
		"jobOfferId":    a.JobOfferID,
		"jobTitle":      a.JobTitle,
		"applicantName": a.ApplicantName,
		"matchScore":    a.MatchScore.InexactFloat64(),
	})
	return a, nil
}

func (u *Applications) ListMine(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	if applicantID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		u.logger.Error("list applications failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}
