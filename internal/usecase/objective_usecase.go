package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/domain/objective"
	"talent-match/internal/domain/user"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateObjectiveInput struct {
	Title       string
	Description string
	TargetAt    *time.Time
}

type CommentObjectiveInput struct {
	ObjectiveID uuid.UUID
	Comment     string
	// CompletionPercentage keeps the current value when nil.
	CompletionPercentage *int
}

type ObjectiveUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateObjectiveInput) (objective.Objective, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]objective.Objective, error)
	ListForReview(ctx context.Context) ([]objective.Objective, error)
	Comment(ctx context.Context, supervisorID uuid.UUID, in CommentObjectiveInput) (objective.Objective, objective.Progress, error)
}

type Objectives struct {
	objectives repository.ObjectiveRepository
	users      user.Repository
	notifier   Notifier
	logger     *zap.Logger
	now        func() time.Time
}

func NewObjectiveUsecase(objectives repository.ObjectiveRepository, users user.Repository, notifier Notifier, logger *zap.Logger) *Objectives {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Objectives{
		objectives: objectives,
		users:      users,
		notifier:   notifierOrNop(notifier),
		logger:     logger.Named("objectives"),
		now:        time.Now,
	}
}

// Create starts an objective in progress at 0%. Without a target date it is
// due one month from now.
func (u *Objectives) Create(ctx context.Context, userID uuid.UUID, in CreateObjectiveInput) (objective.Objective, error) {
	if userID == uuid.Nil {
		return objective.Objective{}, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return objective.Objective{}, ErrInvalidInput
	}

	start := u.now().UTC()
	target := start.AddDate(0, objective.DefaultTermMonths, 0)
	if in.TargetAt != nil {
		target = in.TargetAt.UTC()
		if target.Before(start.Truncate(24 * time.Hour)) {
			return objective.Objective{}, ErrInvalidInput
		}
	}

	o := objective.Objective{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		StartAt:     start,
		TargetAt:    target,
		Status:      objective.StatusInProgress,
		CreatedAt:   start,
	}
	if err := u.objectives.Create(ctx, o); err != nil {
		u.logger.Error("create objective failed", zap.Error(err))
		return objective.Objective{}, ErrInternal
	}
	return o, nil
}

func (u *Objectives) ListMine(ctx context.Context, userID uuid.UUID) ([]objective.Objective, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.objectives.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("list objectives failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

// ListForReview returns the objectives of every approved account, newest first.
func (u *Objectives) ListForReview(ctx context.Context) ([]objective.Objective, error) {
	out, err := u.objectives.ListForApproved(ctx)
	if err != nil {
		u.logger.Error("list objectives for review failed", zap.Error(err))
		return nil, ErrInternal
	}
	return out, nil
}

// Comment records a supervisor note and moves the objective's completion.
// Supervisors cannot comment on their own objectives.
func (u *Objectives) Comment(ctx context.Context, supervisorID uuid.UUID, in CommentObjectiveInput) (objective.Objective, objective.Progress, error) {
	if supervisorID == uuid.Nil {
		return objective.Objective{}, objective.Progress{}, ErrUnauthorized
	}
	if in.ObjectiveID == uuid.Nil {
		return objective.Objective{}, objective.Progress{}, ErrInvalidInput
	}

	o, err := u.objectives.GetByID(ctx, in.ObjectiveID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectiveNotFound) {
			return objective.Objective{}, objective.Progress{}, ErrObjectiveNotFound
		}
		u.logger.Error("load objective failed", zap.String("objective_id", in.ObjectiveID.String()), zap.Error(err))
		return objective.Objective{}, objective.Progress{}, ErrInternal
	}
	if o.UserID == supervisorID {
		return objective.Objective{}, objective.Progress{}, ErrForbidden
	}

	supervisor, err := u.users.GetByID(ctx, supervisorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return objective.Objective{}, objective.Progress{}, ErrUserNotFound
		}
		u.logger.Error("load supervisor failed", zap.Error(err))
		return objective.Objective{}, objective.Progress{}, ErrInternal
	}

	pct := o.CompletionPercentage
	if in.CompletionPercentage != nil {
		pct = *in.CompletionPercentage
	}
	if err := o.Apply(pct); err != nil {
		return objective.Objective{}, objective.Progress{}, errors.Join(ErrInvalidInput, err)
	}

	p := objective.Progress{
		ID:          uuid.New(),
		ObjectiveID: o.ID,
		UpdatedByID: supervisor.ID,
		UpdatedBy:   supervisor.FullName(),
		Notes:       strings.TrimSpace(in.Comment),
		Percentage:  o.CompletionPercentage,
		UpdatedAt:   u.now().UTC(),
	}
	if err := u.objectives.AddProgress(ctx, o, p); err != nil {
		if errors.Is(err, repository.ErrObjectiveNotFound) {
			return objective.Objective{}, objective.Progress{}, ErrObjectiveNotFound
		}
		u.logger.Error("add objective progress failed", zap.Error(err))
		return objective.Objective{}, objective.Progress{}, ErrInternal
	}

	o.LastProgress = &p
	u.notifier.Notify(EventObjectiveUpdated, map[string]any{
		"objectiveId":          o.ID,
		"employeeId":           o.UserID,
		"status":               o.Status,
		"completionPercentage": o.CompletionPercentage,
	})
	return o, p, nil
}
