package repository

import (
	"context"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, first_name, last_name, department, position,
	hire_date, is_approved, role, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, department, position, hire_date, is_approved, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Department, u.Position, u.HireDate, u.IsApproved, string(u.Role),
	)
	if err != nil {
		if database.IsUniqueViolation(err, "users_email_key") {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ListPending(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_approved = FALSE ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) Approve(ctx context.Context, id uuid.UUID, role user.Role) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET is_approved = TRUE, role = $2, updated_at = now() WHERE id = $1`,
		id, string(role),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_approved = FALSE`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresUserRepository) ListApproved(ctx context.Context, role user.Role) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE is_approved = TRUE AND role = $1
		 ORDER BY first_name, last_name, id`,
		string(role),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, u user.User) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, department = $4, position = $5, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.Department, u.Position,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Department, &u.Position,
		&u.HireDate, &u.IsApproved, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
