package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/objective"

	"github.com/google/uuid"
)

var ErrObjectiveNotFound = errors.New("objective not found")

type ObjectiveRepository interface {
	Create(ctx context.Context, o objective.Objective) error
	GetByID(ctx context.Context, id uuid.UUID) (objective.Objective, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]objective.Objective, error)
	// ListForApproved returns the objectives of every approved account with
	// the owner, the progress count and the latest progress note.
	ListForApproved(ctx context.Context) ([]objective.Objective, error)
	// AddProgress stores p and the objective's new status and completion in
	// one transaction.
	AddProgress(ctx context.Context, o objective.Objective, p objective.Progress) error
}

const objectiveColumns = `o.id, o.user_id, o.title, o.description, o.start_at, o.target_at,
	o.status, o.completion_percentage, o.created_at`

const objectiveOverviewSelect = `
SELECT ` + objectiveColumns + `,
	TRIM(u.first_name || ' ' || u.last_name), u.email,
	(SELECT COUNT(*) FROM objective_progress op WHERE op.objective_id = o.id),
	lp.id, lp.updated_by, TRIM(pu.first_name || ' ' || pu.last_name), lp.notes, lp.percentage, lp.updated_at
FROM objectives o
JOIN users u ON u.id = o.user_id
LEFT JOIN LATERAL (
	SELECT op.id, op.updated_by, op.notes, op.percentage, op.updated_at
	FROM objective_progress op
	WHERE op.objective_id = o.id
	ORDER BY op.updated_at DESC
	LIMIT 1
) lp ON TRUE
LEFT JOIN users pu ON pu.id = lp.updated_by`

type PostgresObjectiveRepository struct {
	db database.DB
}

func NewPostgresObjectiveRepository(db database.DB) *PostgresObjectiveRepository {
	return &PostgresObjectiveRepository{db: db}
}

func (r *PostgresObjectiveRepository) Create(ctx context.Context, o objective.Objective) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO objectives (id, user_id, title, description, start_at, target_at, status, completion_percentage, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.UserID, o.Title, o.Description, o.StartAt, o.TargetAt, string(o.Status), o.CompletionPercentage, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert objective: %w", err)
	}
	return nil
}

func (r *PostgresObjectiveRepository) GetByID(ctx context.Context, id uuid.UUID) (objective.Objective, error) {
	row := r.db.QueryRow(ctx, `SELECT `+objectiveColumns+` FROM objectives o WHERE o.id = $1`, id)
	o, err := scanObjective(row)
	if err != nil {
		if database.IsNoRows(err) {
			return objective.Objective{}, ErrObjectiveNotFound
		}
		return objective.Objective{}, err
	}
	return o, nil
}

func (r *PostgresObjectiveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]objective.Objective, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+objectiveColumns+` FROM objectives o WHERE o.user_id = $1 ORDER BY o.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]objective.Objective, 0)
	for rows.Next() {
		o, err := scanObjective(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresObjectiveRepository) ListForApproved(ctx context.Context) ([]objective.Objective, error) {
	rows, err := r.db.Query(ctx,
		objectiveOverviewSelect+` WHERE u.is_approved = TRUE ORDER BY o.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]objective.Objective, 0)
	for rows.Next() {
		var (
			o      objective.Objective
			status string

			progressID  *uuid.UUID
			updatedByID *uuid.UUID
			updatedBy   *string
			notes       *string
			percentage  *int
			updatedAt   *time.Time
		)
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Title, &o.Description, &o.StartAt, &o.TargetAt,
			&status, &o.CompletionPercentage, &o.CreatedAt,
			&o.EmployeeName, &o.EmployeeEmail, &o.ProgressCount,
			&progressID, &updatedByID, &updatedBy, &notes, &percentage, &updatedAt,
		); err != nil {
			return nil, err
		}
		o.Status = objective.Status(status)
		if progressID != nil {
			o.LastProgress = &objective.Progress{
				ID:          *progressID,
				ObjectiveID: o.ID,
				UpdatedByID: deref(updatedByID),
				UpdatedBy:   deref(updatedBy),
				Notes:       deref(notes),
				Percentage:  deref(percentage),
				UpdatedAt:   deref(updatedAt),
			}
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresObjectiveRepository) AddProgress(ctx context.Context, o objective.Objective, p objective.Progress) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin objective progress: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO objective_progress (id, objective_id, updated_by, notes, percentage, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, o.ID, p.UpdatedByID, p.Notes, p.Percentage, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert objective progress: %w", err)
	}

	n, err := tx.Exec(ctx,
		`UPDATE objectives SET status = $2, completion_percentage = $3 WHERE id = $1`,
		o.ID, string(o.Status), o.CompletionPercentage,
	)
	if err != nil {
		return fmt.Errorf("update objective: %w", err)
	}
	if n == 0 {
		return ErrObjectiveNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit objective progress: %w", err)
	}
	return nil
}

func scanObjective(row database.Row) (objective.Objective, error) {
	var o objective.Objective
	var status string
	if err := row.Scan(
		&o.ID, &o.UserID, &o.Title, &o.Description, &o.StartAt, &o.TargetAt,
		&status, &o.CompletionPercentage, &o.CreatedAt,
	); err != nil {
		return objective.Objective{}, err
	}
	o.Status = objective.Status(status)
	return o, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
