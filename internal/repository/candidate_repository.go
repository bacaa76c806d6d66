package repository

import (
	"context"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CandidateRepository assembles the read-only profiles the matching engine scores.
type CandidateRepository interface {
	ListProfiles(ctx context.Context) ([]matching.CandidateProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (matching.CandidateProfile, error)
}

const candidateSelect = `
SELECT u.id, TRIM(u.first_name || ' ' || u.last_name), u.email, u.department, u.position, u.hire_date,
	ARRAY(SELECT pr.overall_score::text FROM performance_reviews pr WHERE pr.employee_id = u.id ORDER BY pr.reviewed_at, pr.id),
	(SELECT COUNT(*) FROM achievements a WHERE a.user_id = u.id),
	(SELECT COUNT(*) FROM certificates c WHERE c.user_id = u.id)
FROM users u`

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) ListProfiles(ctx context.Context) ([]matching.CandidateProfile, error) {
	rows, err := r.db.Query(ctx,
		candidateSelect+` WHERE u.is_approved = TRUE AND u.role IN ($1, $2) ORDER BY u.id`,
		string(user.RoleEmployee), string(user.RoleSupervisor),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.CandidateProfile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) GetProfile(ctx context.Context, userID uuid.UUID) (matching.CandidateProfile, error) {
	p, err := scanCandidate(r.db.QueryRow(ctx, candidateSelect+` WHERE u.id = $1`, userID))
	if err != nil {
		if database.IsNoRows(err) {
			return matching.CandidateProfile{}, user.ErrNotFound
		}
		return matching.CandidateProfile{}, err
	}
	return p, nil
}

func scanCandidate(row database.Row) (matching.CandidateProfile, error) {
	var p matching.CandidateProfile
	var rawScores []string
	if err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.Department, &p.Position, &p.HireDate,
		&rawScores, &p.AchievementCount, &p.CertificateCount,
	); err != nil {
		return matching.CandidateProfile{}, err
	}

	p.ReviewScores = make([]decimal.Decimal, 0, len(rawScores))
	for _, s := range rawScores {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return matching.CandidateProfile{}, fmt.Errorf("candidate %s: review score %q: %w", p.ID, s, err)
		}
		p.ReviewScores = append(p.ReviewScores, d)
	}
	return p, nil
}
