package dto

import (
	"time"

	"talent-match/internal/domain/objective"

	"github.com/google/uuid"
)

type CreateObjectiveRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
}

type CommentObjectiveRequest struct {
	ObjectiveID          uuid.UUID `json:"objectiveId"`
	Comment              string    `json:"comment"`
	CompletionPercentage *int      `json:"completionPercentage"`
}

type ObjectiveProgressResponse struct {
	ID         uuid.UUID `json:"id"`
	UpdatedBy  string    `json:"updatedBy"`
	Notes      string    `json:"notes"`
	Percentage int       `json:"progressPercentage"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ObjectiveResponse struct {
	ID                   uuid.UUID `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	StartDate            time.Time `json:"startDate"`
	TargetDate           string    `json:"targetDate"`
	Status               string    `json:"status"`
	CompletionPercentage int       `json:"completionPercentage"`
	CreatedAt            time.Time `json:"createdAt"`
}

// EmployeeObjectiveResponse is the supervisor view with the owner and the
// latest progress note.
type EmployeeObjectiveResponse struct {
	ObjectiveResponse
	EmployeeID    uuid.UUID                  `json:"employeeId"`
	EmployeeName  string                     `json:"employeeName"`
	EmployeeEmail string                     `json:"employeeEmail"`
	ProgressCount int                        `json:"progressCount"`
	LastProgress  *ObjectiveProgressResponse `json:"lastProgress"`
}

type CommentObjectiveResponse struct {
	ProgressID           uuid.UUID `json:"progressId"`
	ObjectiveStatus      string    `json:"objectiveStatus"`
	CompletionPercentage int       `json:"completionPercentage"`
}

func NewObjectiveResponse(o objective.Objective) ObjectiveResponse {
	return ObjectiveResponse{
		ID:                   o.ID,
		Title:                o.Title,
		Description:          o.Description,
		StartDate:            o.StartAt,
		TargetDate:           FormatDate(o.TargetAt),
		Status:               string(o.Status),
		CompletionPercentage: o.CompletionPercentage,
		CreatedAt:            o.CreatedAt,
	}
}

func NewObjectiveResponses(in []objective.Objective) []ObjectiveResponse {
	out := make([]ObjectiveResponse, 0, len(in))
	for _, o := range in {
		out = append(out, NewObjectiveResponse(o))
	}
	return out
}

func NewEmployeeObjectiveResponses(in []objective.Objective) []EmployeeObjectiveResponse {
	out := make([]EmployeeObjectiveResponse, 0, len(in))
	for _, o := range in {
		r := EmployeeObjectiveResponse{
			ObjectiveResponse: NewObjectiveResponse(o),
			EmployeeID:        o.UserID,
			EmployeeName:      o.EmployeeName,
			EmployeeEmail:     o.EmployeeEmail,
			ProgressCount:     o.ProgressCount,
		}
		if p := o.LastProgress; p != nil {
			r.LastProgress = &ObjectiveProgressResponse{
				ID:         p.ID,
				UpdatedBy:  p.UpdatedBy,
				Notes:      p.Notes,
				Percentage: p.Percentage,
				UpdatedAt:  p.UpdatedAt,
			}
		}
		out = append(out, r)
	}
	return out
}
