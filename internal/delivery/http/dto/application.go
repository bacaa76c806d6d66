package dto

import (
	"time"

	"talent-match/internal/domain/application"

	"github.com/google/uuid"
)

type UpdateApplicationStatusRequest struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	Status        string    `json:"status"`
	HRNotes       *string   `json:"hrNotes"`
}

type ApplicationResponse struct {
	ID             uuid.UUID `json:"id"`
	JobOfferID     uuid.UUID `json:"jobOfferId"`
	JobTitle       string    `json:"jobTitle"`
	ApplicantID    uuid.UUID `json:"applicantId"`
	ApplicantName  string    `json:"applicantName,omitempty"`
	ApplicantEmail string    `json:"applicantEmail,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Position       *string   `json:"position,omitempty"`
	AppliedDate    time.Time `json:"appliedDate"`
	Status         string    `json:"status"`
	MatchScore     float64   `json:"matchScore"`
	HRNotes        *string   `json:"hrNotes"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID,
		JobOfferID:     a.JobOfferID,
		JobTitle:       a.JobTitle,
		ApplicantID:    a.ApplicantID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		Department:     a.Department,
		Position:       a.Position,
		AppliedDate:    a.AppliedAt,
		Status:         string(a.Status),
		MatchScore:     a.MatchScore.Round(2).InexactFloat64(),
		HRNotes:        a.HRNotes,
	}
}

func NewApplicationResponses(in []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(in))
	for _, a := range in {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
