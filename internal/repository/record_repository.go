package repository

import (
	"context"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/record"

	"github.com/google/uuid"
)

// RecordRepository stores the achievements and certificates employees log.
type RecordRepository interface {
	CreateAchievement(ctx context.Context, a record.Achievement) error
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]record.Achievement, error)
	CreateCertificate(ctx context.Context, c record.Certificate) error
	ListCertificates(ctx context.Context, userID uuid.UUID) ([]record.Certificate, error)
}

type PostgresRecordRepository struct {
	db database.DB
}

func NewPostgresRecordRepository(db database.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

func (r *PostgresRecordRepository) CreateAchievement(ctx context.Context, a record.Achievement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO achievements (id, user_id, title, description, category, achieved_at, impact_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.UserID, a.Title, a.Description, a.Category, a.AchievedAt, a.ImpactScore, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert achievement: %w", err)
	}
	return nil
}

func (r *PostgresRecordRepository) ListAchievements(ctx context.Context, userID uuid.UUID) ([]record.Achievement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, description, category, achieved_at, impact_score, created_at
		 FROM achievements WHERE user_id = $1 ORDER BY achieved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]record.Achievement, 0)
	for rows.Next() {
		var a record.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Category, &a.AchievedAt, &a.ImpactScore, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecordRepository) CreateCertificate(ctx context.Context, c record.Certificate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO certificates (id, user_id, name, issuing_organization, issued_at, expires_at, credential_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.UserID, c.Name, c.IssuingOrganization, c.IssuedAt, c.ExpiresAt, c.CredentialID, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert certificate: %w", err)
	}
	return nil
}

func (r *PostgresRecordRepository) ListCertificates(ctx context.Context, userID uuid.UUID) ([]record.Certificate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, issuing_organization, issued_at, expires_at, credential_id, created_at
		 FROM certificates WHERE user_id = $1 ORDER BY issued_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]record.Certificate, 0)
	for rows.Next() {
		var c record.Certificate
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization, &c.IssuedAt, &c.ExpiresAt, &c.CredentialID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
