package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/user"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardStats struct {
	PendingUsersCount        int
	OpenJobOffersCount       int
	PendingApplicationsCount int
}

type UpdateApplicationStatusInput struct {
	ApplicationID uuid.UUID
	Status        string
	HRNotes       *string
}

type HRUsecase interface {
	PendingUsers(ctx context.Context) ([]user.User, error)
	ApproveUser(ctx context.Context, userID uuid.UUID, role string) (user.User, error)
	Stats(ctx context.Context) (DashboardStats, error)
	JobApplications(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	UpdateApplicationStatus(ctx context.Context, in UpdateApplicationStatusInput) error
}

type HR struct {
	users        user.Repository
	offers       repository.JobOfferRepository
	applications repository.ApplicationRepository
	cache        RankingCache
	notifier     Notifier
	logger       *zap.Logger
}

func NewHRUsecase(
	users user.Repository,
	offers repository.JobOfferRepository,
	applications repository.ApplicationRepository,
	cache RankingCache,
	notifier Notifier,
	logger *zap.Logger,
) *HR {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HR{
		users:        users,
		offers:       offers,
		applications: applications,
		cache:        cache,
		notifier:     notifierOrNop(notifier),
		logger:       logger.Named("hr"),
	}
}

func (u *HR) PendingUsers(ctx context.Context) ([]user.User, error) {
	out, err := u.users.ListPending(ctx)
	if err != nil {
		u.logger.Error("list pending users failed", zap.Error(err))
		return nil, ErrInternal
	}
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

// ApproveUser activates an account with one of the HR, Supervisor or Employee roles.
func (u *HR) ApproveUser(ctx context.Context, userID uuid.UUID, role string) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrInvalidInput
	}
	r, ok := user.ParseRole(role)
	if !ok {
		return user.User{}, ErrInvalidInput
	}

	if err := u.users.Approve(ctx, userID, r); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		u.logger.Error("approve user failed", zap.String("user_id", userID.String()), zap.Error(err))
		return user.User{}, ErrInternal
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("reload approved user failed", zap.String("user_id", userID.String()), zap.Error(err))
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""

	invalidateRankings(ctx, u.cache, u.logger)
	u.logger.Info("user approved", zap.String("user_id", userID.String()), zap.String("role", string(r)))
	u.notifier.Notify(EventEmployeeApproved, map[string]any{
		"userId":   usr.ID,
		"fullName": usr.FullName(),
		"role":     string(usr.Role),
	})
	return usr, nil
}

func (u *HR) Stats(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats
	var err error

	if s.PendingUsersCount, err = u.users.CountPending(ctx); err != nil {
		u.logger.Error("count pending users failed", zap.Error(err))
		return DashboardStats{}, ErrInternal
	}
	if s.OpenJobOffersCount, err = u.offers.CountActive(ctx); err != nil {
		u.logger.Error("count active job offers failed", zap.Error(err))
		return DashboardStats{}, ErrInternal
	}
	if s.PendingApplicationsCount, err = u.applications.CountPending(ctx); err != nil {
		u.logger.Error("count pending applications failed", zap.Error(err))
		return DashboardStats{}, ErrInternal
	}
	return s, nil
}

func (u *HR) JobApplications(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	if jobID == uuid.Nil {
		return nil, ErrJobOfferNotFound
	}
	if _, err := u.offers.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobOfferNotFound) {
			return nil, ErrJobOfferNotFound
		}
		u.logger.Error("load job offer failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	out, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		u.logger.Error("list applications failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

func (u *HR) UpdateApplicationStatus(ctx context.Context, in UpdateApplicationStatusInput) error {
	if in.ApplicationID == uuid.Nil {
		return ErrInvalidInput
	}
	status, ok := application.ParseStatus(in.Status)
	if !ok {
		return ErrInvalidInput
	}

	var notes *string
	if in.HRNotes != nil {
		v := strings.TrimSpace(*in.HRNotes)
		notes = &v
	}

	if err := u.applications.UpdateStatus(ctx, in.ApplicationID, status, notes); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		u.logger.Error("update application status failed", zap.String("application_id", in.ApplicationID.String()), zap.Error(err))
		return ErrInternal
	}
	return nil
}
