package dto

import (
	"time"

	"talent-match/internal/domain/review"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	EmployeeID          uuid.UUID `json:"employeeId"`
	Period              string    `json:"period"`
	TechnicalSkills     int       `json:"technicalSkills"`
	Teamwork            int       `json:"teamwork"`
	Leadership          int       `json:"leadership"`
	Communication       int       `json:"communication"`
	Initiative          int       `json:"initiative"`
	Productivity        int       `json:"productivity"`
	Strengths           *string   `json:"strengths"`
	AreasForImprovement *string   `json:"areasForImprovement"`
	Comments            *string   `json:"comments"`
}

func (r CreateReviewRequest) Ratings() review.Ratings {
	return review.Ratings{
		TechnicalSkills: r.TechnicalSkills,
		Teamwork:        r.Teamwork,
		Leadership:      r.Leadership,
		Communication:   r.Communication,
		Initiative:      r.Initiative,
		Productivity:    r.Productivity,
	}
}

type ReviewResponse struct {
	ID                  uuid.UUID `json:"id"`
	EmployeeID          uuid.UUID `json:"employeeId"`
	EmployeeName        string    `json:"employeeName,omitempty"`
	EmployeeEmail       string    `json:"employeeEmail,omitempty"`
	ReviewerID          uuid.UUID `json:"reviewerId"`
	ReviewerName        string    `json:"reviewerName,omitempty"`
	Period              string    `json:"period"`
	ReviewDate          time.Time `json:"reviewDate"`
	TechnicalSkills     int       `json:"technicalSkills"`
	Teamwork            int       `json:"teamwork"`
	Leadership          int       `json:"leadership"`
	Communication       int       `json:"communication"`
	Initiative          int       `json:"initiative"`
	Productivity        int       `json:"productivity"`
	OverallScore        float64   `json:"overallScore"`
	Strengths           *string   `json:"strengths"`
	AreasForImprovement *string   `json:"areasForImprovement"`
	Comments            *string   `json:"comments"`
}

func NewReviewResponse(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeName:        r.EmployeeName,
		EmployeeEmail:       r.EmployeeEmail,
		ReviewerID:          r.ReviewerID,
		ReviewerName:        r.ReviewerName,
		Period:              r.Period,
		ReviewDate:          r.ReviewedAt,
		TechnicalSkills:     r.Ratings.TechnicalSkills,
		Teamwork:            r.Ratings.Teamwork,
		Leadership:          r.Ratings.Leadership,
		Communication:       r.Ratings.Communication,
		Initiative:          r.Ratings.Initiative,
		Productivity:        r.Ratings.Productivity,
		OverallScore:        r.OverallScore.InexactFloat64(),
		Strengths:           r.Strengths,
		AreasForImprovement: r.AreasForImprovement,
		Comments:            r.Comments,
	}
}

func NewReviewResponses(in []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(in))
	for _, r := range in {
		out = append(out, NewReviewResponse(r))
	}
	return out
}
