package repository

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrJobOfferNotFound = errors.New("job offer not found")

type JobOfferRepository interface {
	Create(ctx context.Context, o job.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Offer, error)
	List(ctx context.Context) ([]job.Offer, error)
	// ListEligible returns active offers whose minimum performance score does
	// not exceed avg.
	ListEligible(ctx context.Context, avg decimal.Decimal) ([]job.Offer, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) error
	CountActive(ctx context.Context) (int, error)
}

const jobOfferSelect = `
SELECT jo.id, jo.title, jo.description, jo.department, jo.required_skills,
	jo.min_years_experience, jo.min_performance_score, jo.preferred_certifications,
	jo.status, jo.posted_at, jo.closing_at, jo.created_by,
	TRIM(u.first_name || ' ' || u.last_name),
	(SELECT COUNT(*) FROM job_applications ja WHERE ja.job_offer_id = jo.id)
FROM job_offers jo
JOIN users u ON u.id = jo.created_by`

type PostgresJobOfferRepository struct {
	db database.DB
}

func NewPostgresJobOfferRepository(db database.DB) *PostgresJobOfferRepository {
	return &PostgresJobOfferRepository{db: db}
}

func (r *PostgresJobOfferRepository) Create(ctx context.Context, o job.Offer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_offers (id, title, description, department, required_skills, min_years_experience,
			min_performance_score, preferred_certifications, status, posted_at, closing_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		o.ID, o.Title, o.Description, o.Department, o.RequiredSkills, o.MinYearsExperience,
		o.MinPerformanceScore, o.PreferredCertifications, string(o.Status), o.PostedAt, o.ClosingAt, o.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("insert job offer: %w", err)
	}
	return nil
}

func (r *PostgresJobOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Offer, error) {
	o, err := scanJobOffer(r.db.QueryRow(ctx, jobOfferSelect+` WHERE jo.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return job.Offer{}, ErrJobOfferNotFound
		}
		return job.Offer{}, err
	}
	return o, nil
}

func (r *PostgresJobOfferRepository) List(ctx context.Context) ([]job.Offer, error) {
	return r.list(ctx, jobOfferSelect+` ORDER BY jo.posted_at DESC`)
}

func (r *PostgresJobOfferRepository) ListEligible(ctx context.Context, avg decimal.Decimal) ([]job.Offer, error) {
	return r.list(ctx,
		jobOfferSelect+` WHERE jo.status = $1 AND jo.min_performance_score <= $2 ORDER BY jo.posted_at DESC`,
		string(job.StatusActive), avg,
	)
}

func (r *PostgresJobOfferRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) error {
	n, err := r.db.Exec(ctx, `UPDATE job_offers SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobOfferNotFound
	}
	return nil
}

func (r *PostgresJobOfferRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_offers WHERE status = $1`, string(job.StatusActive)).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobOfferRepository) list(ctx context.Context, query string, args ...any) ([]job.Offer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Offer, 0)
	for rows.Next() {
		o, err := scanJobOffer(rows)
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

func scanJobOffer(row database.Row) (job.Offer, error) {
	var o job.Offer
	var status string
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.Department, &o.RequiredSkills,
		&o.MinYearsExperience, &o.MinPerformanceScore, &o.PreferredCertifications,
		&status, &o.PostedAt, &o.ClosingAt, &o.CreatedByID,
		&o.CreatedByName, &o.ApplicationCount,
	)
	if err != nil {
		return job.Offer{}, err
	}
	o.Status = job.Status(status)
	return o, nil
}
