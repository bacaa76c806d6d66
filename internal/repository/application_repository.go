package repository

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/application"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job offer")
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	Exists(ctx context.Context, jobOfferID, applicantID uuid.UUID) (bool, error)
	// ListByJob orders by match score descending, earliest application first on ties.
	ListByJob(ctx context.Context, jobOfferID uuid.UUID) ([]application.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, notes *string) error
	CountPending(ctx context.Context) (int, error)
}

const applicationSelect = `
SELECT ja.id, ja.job_offer_id, jo.title, ja.applicant_id,
	TRIM(u.first_name || ' ' || u.last_name), u.email, u.department, u.position,
	ja.applied_at, ja.status, ja.match_score, ja.hr_notes
FROM job_applications ja
JOIN job_offers jo ON jo.id = ja.job_offer_id
JOIN users u ON u.id = ja.applicant_id`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, job_offer_id, applicant_id, applied_at, status, match_score, hr_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobOfferID, a.ApplicantID, a.AppliedAt, string(a.Status), a.MatchScore, a.HRNotes,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "job_applications_offer_applicant_key") {
			return ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, jobOfferID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_offer_id = $1 AND applicant_id = $2)`,
		jobOfferID, applicantID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobOfferID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE ja.job_offer_id = $1 ORDER BY ja.match_score DESC, ja.applied_at ASC`, jobOfferID)
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE ja.applicant_id = $1 ORDER BY ja.applied_at DESC`, applicantID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, notes *string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $2, hr_notes = COALESCE($3, hr_notes) WHERE id = $1`,
		id, string(status), notes,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE status = $1`,
		string(application.StatusPending),
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		var status string
		if err := rows.Scan(
			&a.ID, &a.JobOfferID, &a.JobTitle, &a.ApplicantID,
			&a.ApplicantName, &a.ApplicantEmail, &a.Department, &a.Position,
			&a.AppliedAt, &status, &a.MatchScore, &a.HRNotes,
		); err != nil {
			return nil, err
		}
		a.Status = application.Status(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
