package repository

import (
	"context"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/review"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv review.Review) error
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]review.Review, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]review.Review, error)
	// AverageForEmployee returns the mean overall score and the number of reviews.
	AverageForEmployee(ctx context.Context, employeeID uuid.UUID) (decimal.Decimal, int, error)
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Create(ctx context.Context, rv review.Review) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO performance_reviews (id, employee_id, reviewer_id, period, reviewed_at,
			technical_skills, teamwork, leadership, communication, initiative, productivity,
			overall_score, strengths, areas_for_improvement, comments)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		rv.ID, rv.EmployeeID, rv.ReviewerID, rv.Period, rv.ReviewedAt,
		rv.Ratings.TechnicalSkills, rv.Ratings.Teamwork, rv.Ratings.Leadership,
		rv.Ratings.Communication, rv.Ratings.Initiative, rv.Ratings.Productivity,
		rv.OverallScore, rv.Strengths, rv.AreasForImprovement, rv.Comments,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

const reviewSelect = `
SELECT pr.id, pr.employee_id, TRIM(e.first_name || ' ' || e.last_name), e.email,
	pr.reviewer_id, TRIM(rv.first_name || ' ' || rv.last_name), pr.period, pr.reviewed_at,
	pr.technical_skills, pr.teamwork, pr.leadership, pr.communication, pr.initiative, pr.productivity,
	pr.overall_score, pr.strengths, pr.areas_for_improvement, pr.comments
FROM performance_reviews pr
JOIN users e ON e.id = pr.employee_id
JOIN users rv ON rv.id = pr.reviewer_id`

func (r *PostgresReviewRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]review.Review, error) {
	return r.list(ctx, reviewSelect+` WHERE pr.reviewer_id = $1 ORDER BY pr.reviewed_at DESC`, reviewerID)
}

// ListByEmployee returns the reviews an employee received, newest first.
func (r *PostgresReviewRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]review.Review, error) {
	return r.list(ctx, reviewSelect+` WHERE pr.employee_id = $1 ORDER BY pr.reviewed_at DESC`, employeeID)
}

func (r *PostgresReviewRepository) list(ctx context.Context, query string, args ...any) ([]review.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(
			&rv.ID, &rv.EmployeeID, &rv.EmployeeName, &rv.EmployeeEmail,
			&rv.ReviewerID, &rv.ReviewerName, &rv.Period, &rv.ReviewedAt,
			&rv.Ratings.TechnicalSkills, &rv.Ratings.Teamwork, &rv.Ratings.Leadership,
			&rv.Ratings.Communication, &rv.Ratings.Initiative, &rv.Ratings.Productivity,
			&rv.OverallScore, &rv.Strengths, &rv.AreasForImprovement, &rv.Comments,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReviewRepository) AverageForEmployee(ctx context.Context, employeeID uuid.UUID) (decimal.Decimal, int, error) {
	var avg decimal.NullDecimal
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT AVG(overall_score), COUNT(*) FROM performance_reviews WHERE employee_id = $1`,
		employeeID,
	).Scan(&avg, &n)
	if err != nil {
		return decimal.Zero, 0, err
	}
	if !avg.Valid {
		return decimal.Zero, 0, nil
	}
	return avg.Decimal, n, nil
}
