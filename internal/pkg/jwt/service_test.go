package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	s := newTestService(now)
	id := Identity{UserID: uuid.New(), Email: "hr@example.com", Role: "HR"}

	tok, err := s.GenerateAccessToken(id)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	c, err := s.ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.UserID != id.UserID || c.Email != id.Email || c.Role != "HR" {
		t.Fatalf("unexpected claims: %+v", c)
	}
	if c.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token, got %q", c.TokenType)
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	s := newTestService(time.Now())
	userID := uuid.New()

	refresh, err := s.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	if _, err := s.ValidateAccessToken(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh token accepted as access: %v", err)
	}
	c, err := s.ValidateRefreshToken(refresh)
	if err != nil || c.UserID != userID {
		t.Fatalf("refresh validate: claims=%+v err=%v", c, err)
	}

	access, err := s.GenerateAccessToken(Identity{UserID: userID})
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	if _, err := s.ValidateRefreshToken(access); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access token accepted as refresh: %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	issued := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	s := newTestService(issued)

	tok, err := s.GenerateAccessToken(Identity{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = func() time.Time { return issued.Add(time.Hour) }
	if _, err := s.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	s := newTestService(time.Now())
	other := NewHMACService("another-secret", "refresh-secret", time.Minute, time.Hour)

	tok, err := other.GenerateAccessToken(Identity{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := s.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestMissingSecret(t *testing.T) {
	s := NewHMACService("", "", time.Minute, time.Hour)
	if _, err := s.GenerateAccessToken(Identity{UserID: uuid.New()}); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
