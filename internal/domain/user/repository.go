package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListPending(ctx context.Context) ([]User, error)
	Approve(ctx context.Context, id uuid.UUID, role Role) error
	CountPending(ctx context.Context) (int, error)
	// ListApproved returns approved accounts holding role, ordered by name.
	ListApproved(ctx context.Context, role Role) ([]User, error)
	// UpdateProfile writes the name, department and position of u.
	UpdateProfile(ctx context.Context, u User) error
}
