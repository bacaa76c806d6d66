package dto

import (
	"time"

	"talent-match/internal/domain/record"

	"github.com/google/uuid"
)

type AddAchievementRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	AchievedDate string `json:"achievedDate"`
	ImpactScore  *int   `json:"impactScore"`
}

type AddCertificateRequest struct {
	Name                string  `json:"name"`
	IssuingOrganization string  `json:"issuingOrganization"`
	IssueDate           string  `json:"issueDate"`
	ExpirationDate      string  `json:"expirationDate"`
	CredentialID        *string `json:"credentialId"`
}

type AchievementResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	AchievedDate string    `json:"achievedDate"`
	ImpactScore  int       `json:"impactScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CertificateResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	IssuingOrganization string    `json:"issuingOrganization"`
	IssueDate           string    `json:"issueDate"`
	ExpirationDate      *string   `json:"expirationDate"`
	CredentialID        *string   `json:"credentialId"`
	CreatedAt           time.Time `json:"createdAt"`
}

func NewAchievementResponse(a record.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		AchievedDate: FormatDate(a.AchievedAt),
		ImpactScore:  a.ImpactScore,
		CreatedAt:    a.CreatedAt,
	}
}

func NewAchievementResponses(in []record.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(in))
	for _, a := range in {
		out = append(out, NewAchievementResponse(a))
	}
	return out
}

func NewCertificateResponse(c record.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:                  c.ID,
		Name:                c.Name,
		IssuingOrganization: c.IssuingOrganization,
		IssueDate:           FormatDate(c.IssuedAt),
		ExpirationDate:      FormatDatePtr(c.ExpiresAt),
		CredentialID:        c.CredentialID,
		CreatedAt:           c.CreatedAt,
	}
}

func NewCertificateResponses(in []record.Certificate) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(in))
	for _, c := range in {
		out = append(out, NewCertificateResponse(c))
	}
	return out
}
