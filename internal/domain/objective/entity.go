package objective

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

const (
	MinCompletion = 0
	MaxCompletion = 100

	// DefaultTermMonths sets the target date of objectives created without one.
	DefaultTermMonths = 1
)

var ErrCompletionOutOfRange = errors.New("completion percentage out of range")

type Objective struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Title                string
	Description          string
	StartAt              time.Time
	TargetAt             time.Time
	Status               Status
	CompletionPercentage int
	CreatedAt            time.Time

	// Populated by listings that join the owner and the progress log.
	EmployeeName  string
	EmployeeEmail string
	ProgressCount int
	LastProgress  *Progress
}

// Progress is one supervisor note on an objective.
type Progress struct {
	ID          uuid.UUID
	ObjectiveID uuid.UUID
	UpdatedByID uuid.UUID
	UpdatedBy   string
	Notes       string
	Percentage  int
	UpdatedAt   time.Time
}

// Apply moves the objective to the reported completion. Reaching 100
// completes it; any report on an objective that had not started puts it
// in progress.
func (o *Objective) Apply(percentage int) error {
	if percentage < MinCompletion || percentage > MaxCompletion {
		return ErrCompletionOutOfRange
	}
	o.CompletionPercentage = percentage
	switch {
	case percentage >= MaxCompletion:
		o.Status = StatusCompleted
	case o.Status == StatusNotStarted:
		o.Status = StatusInProgress
	}
	return nil
}
