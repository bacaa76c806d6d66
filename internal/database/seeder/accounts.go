package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account is an approved login created ahead of the first HR approval.
type Account struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Department string
	Position   string
	Role       user.Role
	HireDate   time.Time
}

// AccountsSeeder inserts accounts that do not exist yet. Existing emails are
// left untouched, passwords included.
type AccountsSeeder struct {
	Accounts []Account
	Cost     int
}

func (AccountsSeeder) Name() string { return "accounts" }

func (s AccountsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "email", "password_hash", "first_name", "last_name", "hire_date", "is_approved", "role",
	); err != nil {
		return err
	}

	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, a := range s.Accounts {
		email := strings.ToLower(strings.TrimSpace(a.Email))
		if email == "" || a.Password == "" {
			return fmt.Errorf("account %q: email and password are required", a.Email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hire := a.HireDate
		if hire.IsZero() {
			hire = time.Now().UTC()
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, first_name, last_name, department, position, hire_date, is_approved, role)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, TRUE, $9)
			 ON CONFLICT (email) DO NOTHING`,
			uuid.New(), email, string(hash), a.FirstName, a.LastName, a.Department, a.Position, hire, string(a.Role),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
