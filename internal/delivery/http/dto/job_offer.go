package dto

import (
	"time"

	"talent-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateJobOfferRequest struct {
	Title                   string          `json:"title"`
	Description             string          `json:"description"`
	Department              string          `json:"department"`
	RequiredSkills          string          `json:"requiredSkills"`
	MinYearsExperience      int             `json:"minYearsExperience"`
	MinPerformanceScore     decimal.Decimal `json:"minPerformanceScore"`
	PreferredCertifications *string         `json:"preferredCertifications"`
	ClosingDate             string          `json:"closingDate"`
}

type JobOfferResponse struct {
	ID                      uuid.UUID  `json:"id"`
	Title                   string     `json:"title"`
	Description             string     `json:"description"`
	Department              string     `json:"department"`
	RequiredSkills          string     `json:"requiredSkills"`
	MinYearsExperience      int        `json:"minYearsExperience"`
	MinPerformanceScore     float64    `json:"minPerformanceScore"`
	PreferredCertifications *string    `json:"preferredCertifications"`
	Status                  string     `json:"status"`
	PostedDate              time.Time  `json:"postedDate"`
	ClosingDate             *time.Time `json:"closingDate"`
	CreatedByName           string     `json:"createdByName,omitempty"`
	ApplicationCount        int        `json:"applicationCount"`
}

func NewJobOfferResponse(o job.Offer) JobOfferResponse {
	return JobOfferResponse{
		ID:                      o.ID,
		Title:                   o.Title,
		Description:             o.Description,
		Department:              o.Department,
		RequiredSkills:          o.RequiredSkills,
		MinYearsExperience:      o.MinYearsExperience,
		MinPerformanceScore:     o.MinPerformanceScore.InexactFloat64(),
		PreferredCertifications: o.PreferredCertifications,
		Status:                  string(o.Status),
		PostedDate:              o.PostedAt,
		ClosingDate:             o.ClosingAt,
		CreatedByName:           o.CreatedByName,
		ApplicationCount:        o.ApplicationCount,
	}
}

func NewJobOfferResponses(in []job.Offer) []JobOfferResponse {
	out := make([]JobOfferResponse, 0, len(in))
	for _, o := range in {
		out = append(out, NewJobOfferResponse(o))
	}
	return out
}
