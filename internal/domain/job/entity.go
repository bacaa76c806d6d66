package job

import (
	"strings"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusClosed    Status = "Closed"
	StatusCancelled Status = "Cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, true
	case "closed":
		return StatusClosed, true
	case "cancelled":
		return StatusCancelled, true
	default:
		return "", false
	}
}

type Offer struct {
	ID                      uuid.UUID
	Title                   string
	Description             string
	Department              string
	RequiredSkills          string
	MinYearsExperience      int
	MinPerformanceScore     decimal.Decimal
	PreferredCertifications *string
	Status                  Status
	PostedAt                time.Time
	ClosingAt               *time.Time
	CreatedByID             uuid.UUID
	CreatedByName           string
	ApplicationCount        int
}

func (o Offer) IsActive() bool {
	return o.Status == StatusActive
}

// Opening projects the offer onto the fields the matching engine reads.
func (o Offer) Opening() matching.JobOpening {
	return matching.JobOpening{
		ID:                  o.ID,
		Title:               o.Title,
		Description:         o.Description,
		Department:          o.Department,
		MinYearsExperience:  o.MinYearsExperience,
		MinPerformanceScore: o.MinPerformanceScore,
	}
}
