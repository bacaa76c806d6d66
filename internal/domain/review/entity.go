package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinRating = 1
	MaxRating = 5

	overallPlaces = 2
)

var ErrRatingOutOfRange = errors.New("rating out of range")

type Ratings struct {
	TechnicalSkills int
	Teamwork        int
	Leadership      int
	Communication   int
	Initiative      int
	Productivity    int
}

func (r Ratings) values() []int {
	return []int{r.TechnicalSkills, r.Teamwork, r.Leadership, r.Communication, r.Initiative, r.Productivity}
}

func (r Ratings) Validate() error {
	for _, v := range r.values() {
		if v < MinRating || v > MaxRating {
			return ErrRatingOutOfRange
		}
	}
	return nil
}

// Overall is the mean of the six ratings, rounded to two places.
func (r Ratings) Overall() decimal.Decimal {
	vals := r.values()
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(vals)))).
		Round(overallPlaces)
}

type Review struct {
	ID                  uuid.UUID
	EmployeeID          uuid.UUID
	EmployeeName        string
	EmployeeEmail       string
	ReviewerID          uuid.UUID
	ReviewerName        string
	Period              string
	ReviewedAt          time.Time
	Ratings             Ratings
	OverallScore        decimal.Decimal
	Strengths           *string
	AreasForImprovement *string
	Comments            *string
}
