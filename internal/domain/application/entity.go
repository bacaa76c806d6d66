package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending     Status = "Pending"
	StatusUnderReview Status = "UnderReview"
	StatusAccepted    Status = "Accepted"
	StatusRejected    Status = "Rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "underreview", "under_review":
		return StatusUnderReview, true
	case "accepted":
		return StatusAccepted, true
	case "rejected":
		return StatusRejected, true
	default:
		return "", false
	}
}

type Application struct {
	ID             uuid.UUID
	JobOfferID     uuid.UUID
	JobTitle       string
	ApplicantID    uuid.UUID
	ApplicantName  string
	ApplicantEmail string
	Department     *string
	Position       *string
	AppliedAt      time.Time
	Status         Status
	MatchScore     decimal.Decimal
	HRNotes        *string
}
