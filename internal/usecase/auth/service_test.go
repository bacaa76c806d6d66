package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byEmail map[string]user.User
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]user.User{}} }

func (m *memUsers) Create(_ context.Context, u user.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) ListPending(context.Context) ([]user.User, error)     { return nil, nil }
func (m *memUsers) Approve(context.Context, uuid.UUID, user.Role) error { return nil }
func (m *memUsers) CountPending(context.Context) (int, error)           { return 0, nil }
func (m *memUsers) ListApproved(context.Context, user.Role) ([]user.User, error) {
	return nil, nil
}
func (m *memUsers) UpdateProfile(context.Context, user.User) error { return nil }

func newTestService(users user.Repository) *Service {
	s := NewService(users)
	s.cost = bcrypt.MinCost
	s.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestRegister(t *testing.T) {
	users := newMemUsers()
	s := newTestService(users)
	dept := "  Engineering "

	u, err := s.Register(context.Background(), RegisterInput{
		Email:      "  Ana.Torres@Example.com ",
		Password:   "correct-horse",
		FirstName:  "Ana",
		LastName:   "Torres",
		Department: &dept,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "ana.torres@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.IsApproved || u.Role != user.RoleNone {
		t.Fatalf("new account must be pending without role: %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if u.Department == nil || *u.Department != "Engineering" {
		t.Fatalf("department not trimmed: %v", u.Department)
	}
	if !u.HireDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("hire date should default to now, got %v", u.HireDate)
	}

	stored := users.byEmail["ana.torres@example.com"]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")) != nil {
		t.Fatal("stored hash does not match password")
	}

	_, err = s.Register(context.Background(), RegisterInput{
		Email: "ana.torres@example.com", Password: "another-pass", FirstName: "A", LastName: "T",
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	s := newTestService(newMemUsers())
	cases := []RegisterInput{
		{Email: "", Password: "long-enough", FirstName: "A", LastName: "B"},
		{Email: "not-an-email", Password: "long-enough", FirstName: "A", LastName: "B"},
		{Email: "a@b.com", Password: "short", FirstName: "A", LastName: "B"},
		{Email: "a@b.com", Password: "long-enough", FirstName: " ", LastName: "B"},
	}
	for i, in := range cases {
		if _, err := s.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestLogin(t *testing.T) {
	users := newMemUsers()
	s := newTestService(users)

	if _, err := s.Register(context.Background(), RegisterInput{
		Email: "sam@example.com", Password: "password-123", FirstName: "Sam", LastName: "Lee",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := s.Login(context.Background(), LoginInput{Email: "sam@example.com", Password: "password-123"}); !errors.Is(err, ErrAccountPending) {
		t.Fatalf("expected ErrAccountPending, got %v", err)
	}

	u := users.byEmail["sam@example.com"]
	u.IsApproved = true
	u.Role = user.RoleEmployee
	users.byEmail[u.Email] = u

	got, err := s.Login(context.Background(), LoginInput{Email: "SAM@example.com", Password: "password-123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Role != user.RoleEmployee || got.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := s.Login(context.Background(), LoginInput{Email: "sam@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "password-123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
