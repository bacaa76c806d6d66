package record

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinImpactScore     = 1
	MaxImpactScore     = 10
	DefaultImpactScore = 5
)

type Achievement struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Category    string
	AchievedAt  time.Time
	ImpactScore int
	CreatedAt   time.Time
}

type Certificate struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	IssuingOrganization string
	IssuedAt            time.Time
	ExpiresAt           *time.Time
	CredentialID        *string
	CreatedAt           time.Time
}
