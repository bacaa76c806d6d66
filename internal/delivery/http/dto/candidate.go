package dto

import (
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

// CandidateMatchResponse is one row of a ranked candidate list.
type CandidateMatchResponse struct {
	ID                      uuid.UUID `json:"id"`
	FullName                string    `json:"fullName"`
	Email                   string    `json:"email"`
	Department              *string   `json:"department"`
	Position                *string   `json:"position"`
	MatchScore              float64   `json:"matchScore"`
	AveragePerformanceScore float64   `json:"averagePerformanceScore"`
	YearsInCompany          int       `json:"yearsInCompany"`
	AchievementCount        int       `json:"achievementCount"`
	CertificationCount      int       `json:"certificationCount"`
}

func NewCandidateMatchResponse(r matching.MatchResult) CandidateMatchResponse {
	return CandidateMatchResponse{
		ID:                      r.ID,
		FullName:                r.FullName,
		Email:                   r.Email,
		Department:              r.Department,
		Position:                r.Position,
		MatchScore:              r.MatchScore.Round(2).InexactFloat64(),
		AveragePerformanceScore: r.AveragePerformanceScore.Round(2).InexactFloat64(),
		YearsInCompany:          r.YearsInCompany,
		AchievementCount:        r.AchievementCount,
		CertificationCount:      r.CertificationCount,
	}
}

// NewCandidateMatchResponses keeps the engine's order and never returns nil.
func NewCandidateMatchResponses(in []matching.MatchResult) []CandidateMatchResponse {
	out := make([]CandidateMatchResponse, 0, len(in))
	for _, r := range in {
		out = append(out, NewCandidateMatchResponse(r))
	}
	return out
}
