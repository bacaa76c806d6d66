package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/record"
	"talent-match/internal/domain/review"
	"talent-match/internal/domain/user"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddAchievementInput struct {
	Title       string
	Description string
	Category    string
	AchievedAt  time.Time
	ImpactScore *int
}

type AddCertificateInput struct {
	Name                string
	IssuingOrganization string
	IssuedAt            time.Time
	ExpiresAt           *time.Time
	CredentialID        *string
}

// UpdateProfileInput changes only the fields that are set.
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	Department *string
	Position   *string
}

type EmployeeUsecase interface {
	Profile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	ReceivedReviews(ctx context.Context, userID uuid.UUID) ([]review.Review, error)
	AddAchievement(ctx context.Context, userID uuid.UUID, in AddAchievementInput) (record.Achievement, error)
	Achievements(ctx context.Context, userID uuid.UUID) ([]record.Achievement, error)
	AddCertificate(ctx context.Context, userID uuid.UUID, in AddCertificateInput) (record.Certificate, error)
	Certificates(ctx context.Context, userID uuid.UUID) ([]record.Certificate, error)
	EligibleJobOffers(ctx context.Context, userID uuid.UUID) ([]job.Offer, error)
}

type Employee struct {
	users   user.Repository
	records repository.RecordRepository
	reviews repository.ReviewRepository
	offers  repository.JobOfferRepository
	cache   RankingCache
	logger  *zap.Logger
	now     func() time.Time
}

func NewEmployeeUsecase(
	users user.Repository,
	records repository.RecordRepository,
	reviews repository.ReviewRepository,
	offers repository.JobOfferRepository,
	cache RankingCache,
	logger *zap.Logger,
) *Employee {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Employee{
		users:   users,
		records: records,
		reviews: reviews,
		offers:  offers,
		cache:   cache,
		logger:  logger.Named("employee"),
		now:     time.Now,
	}
}

func (u *Employee) Profile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		u.logger.Error("load profile failed", zap.Error(err))
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// UpdateProfile edits the caller's name, department and position. Department
// and position appear in rankings, so cached rankings are dropped.
func (u *Employee) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := u.Profile(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if in.FirstName != nil {
		usr.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		usr.LastName = strings.TrimSpace(*in.LastName)
	}
	if usr.FirstName == "" || usr.LastName == "" {
		return user.User{}, ErrInvalidInput
	}
	if in.Department != nil {
		usr.Department = optionalText(*in.Department)
	}
	if in.Position != nil {
		usr.Position = optionalText(*in.Position)
	}

	if err := u.users.UpdateProfile(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		u.logger.Error("update profile failed", zap.Error(err))
		return user.User{}, ErrInternal
	}

	invalidateRankings(ctx, u.cache, u.logger)
	return usr, nil
}

func (u *Employee) ReceivedReviews(ctx context.Context, userID uuid.UUID) ([]review.Review, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.reviews.ListByEmployee(ctx, userID)
	if err != nil {
		u.logger.Error("list received reviews failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (u *Employee) AddAchievement(ctx context.Context, userID uuid.UUID, in AddAchievementInput) (record.Achievement, error) {
	if userID == uuid.Nil {
		return record.Achievement{}, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" || in.AchievedAt.IsZero() {
		return record.Achievement{}, ErrInvalidInput
	}
	impact := record.DefaultImpactScore
	if in.ImpactScore != nil {
		impact = *in.ImpactScore
	}
	if impact < record.MinImpactScore || impact > record.MaxImpactScore {
		return record.Achievement{}, ErrInvalidInput
	}

	a := record.Achievement{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		AchievedAt:  in.AchievedAt.UTC(),
		ImpactScore: impact,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.records.CreateAchievement(ctx, a); err != nil {
		u.logger.Error("create achievement failed", zap.Error(err))
		return record.Achievement{}, ErrInternal
	}

	invalidateRankings(ctx, u.cache, u.logger)
	return a, nil
}

func (u *Employee) Achievements(ctx context.Context, userID uuid.UUID) ([]record.Achievement, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.records.ListAchievements(ctx, userID)
	if err != nil {
		u.logger.Error("list achievements failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Employee) AddCertificate(ctx context.Context, userID uuid.UUID, in AddCertificateInput) (record.Certificate, error) {
	if userID == uuid.Nil {
		return record.Certificate{}, ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	org := strings.TrimSpace(in.IssuingOrganization)
	if name == "" || org == "" || in.IssuedAt.IsZero() {
		return record.Certificate{}, ErrInvalidInput
	}
	if in.ExpiresAt != nil && in.ExpiresAt.Before(in.IssuedAt) {
		return record.Certificate{}, ErrInvalidInput
	}

	c := record.Certificate{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                name,
		IssuingOrganization: org,
		IssuedAt:            in.IssuedAt.UTC(),
		ExpiresAt:           in.ExpiresAt,
		CredentialID:        in.CredentialID,
		CreatedAt:           u.now().UTC(),
	}
	if err := u.records.CreateCertificate(ctx, c); err != nil {
		u.logger.Error("create certificate failed", zap.Error(err))
		return record.Certificate{}, ErrInternal
	}

	invalidateRankings(ctx, u.cache, u.logger)
	return c, nil
}

func (u *Employee) Certificates(ctx context.Context, userID uuid.UUID) ([]record.Certificate, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.records.ListCertificates(ctx, userID)
	if err != nil {
		u.logger.Error("list certificates failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

// EligibleJobOffers lists active offers whose minimum performance score the
// caller's review average meets. Employees without reviews average zero.
func (u *Employee) EligibleJobOffers(ctx context.Context, userID uuid.UUID) ([]job.Offer, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	avg, _, err := u.reviews.AverageForEmployee(ctx, userID)
	if err != nil {
		u.logger.Error("average performance failed", zap.Error(err))
		return nil, ErrInternal
	}
	out, err := u.offers.ListEligible(ctx, avg)
	if err != nil {
		u.logger.Error("list eligible job offers failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}
