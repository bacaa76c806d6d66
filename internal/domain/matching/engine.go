package matching

import (
	"bytes"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PerformanceWeight   = 40
	TenureWeight        = 20
	AchievementWeight   = 20
	CertificationWeight = 20

	AchievementSaturation   = 5
	CertificationSaturation = 3

	MaxPerformanceScore = 5

	scorePlaces = 2
	daysPerYear = 365
	hoursPerDay = 24
)

var ErrInvalidOpening = errors.New("invalid job opening")

var (
	one      = decimal.NewFromInt(1)
	maxScore = decimal.NewFromInt(MaxPerformanceScore)
)

type CandidateProfile struct {
	ID               uuid.UUID
	FullName         string
	Email            string
	Department       *string
	Position         *string
	HireDate         time.Time
	ReviewScores     []decimal.Decimal
	AchievementCount int
	CertificateCount int
}

type JobOpening struct {
	ID                  uuid.UUID
	Title               string
	Description         string
	Department          string
	MinYearsExperience  int
	MinPerformanceScore decimal.Decimal
}

// Validate rejects openings the engine must never see. Callers run it
// before Rank; Rank itself treats a non-positive minimum as "no minimum".
func (o JobOpening) Validate() error {
	if o.MinYearsExperience < 0 {
		return ErrInvalidOpening
	}
	if o.MinPerformanceScore.IsNegative() || o.MinPerformanceScore.GreaterThan(maxScore) {
		return ErrInvalidOpening
	}
	return nil
}

// Breakdown is for display. Each part is rounded on its own, so the parts
// can differ from MatchScore by a cent; MatchScore rounds the exact sum.
type Breakdown struct {
	Performance   decimal.Decimal `json:"performance"`
	Tenure        decimal.Decimal `json:"tenure"`
	Achievement   decimal.Decimal `json:"achievement"`
	Certification decimal.Decimal `json:"certification"`
}

type MatchResult struct {
	ID                      uuid.UUID       `json:"id"`
	FullName                string          `json:"fullName"`
	Email                   string          `json:"email"`
	Department              *string         `json:"department"`
	Position                *string         `json:"position"`
	MatchScore              decimal.Decimal `json:"matchScore"`
	AveragePerformanceScore decimal.Decimal `json:"averagePerformanceScore"`
	YearsInCompany          int             `json:"yearsInCompany"`
	AchievementCount        int             `json:"achievementCount"`
	CertificationCount      int             `json:"certificationCount"`
	Breakdown               Breakdown       `json:"breakdown"`

	// MatchingSkills is reserved; nothing populates it yet.
	MatchingSkills []string `json:"matchingSkills,omitempty"`
}

// Rank scores every candidate against the opening and orders them by
// MatchScore descending, then by candidate id ascending.
func Rank(opening JobOpening, candidates []CandidateProfile, now time.Time) []MatchResult {
	out := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Score(opening, c, now))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if cmp := out[i].MatchScore.Cmp(out[j].MatchScore); cmp != 0 {
			return cmp > 0
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})

	return out
}

func Score(opening JobOpening, c CandidateProfile, now time.Time) MatchResult {
	avg := AveragePerformance(c.ReviewScores)
	years := TenureYears(c.HireDate, now)

	b := Breakdown{
		Performance:   performanceScore(avg, len(c.ReviewScores)),
		Tenure:        tenureScore(years, opening.MinYearsExperience),
		Achievement:   saturating(c.AchievementCount, AchievementSaturation, AchievementWeight),
		Certification: saturating(c.CertificateCount, CertificationSaturation, CertificationWeight),
	}

	total := b.Performance.Add(b.Tenure).Add(b.Achievement).Add(b.Certification)

	return MatchResult{
		ID:                      c.ID,
		FullName:                c.FullName,
		Email:                   c.Email,
		Department:              c.Department,
		Position:                c.Position,
		MatchScore:              total.Round(scorePlaces),
		AveragePerformanceScore: avg.Round(scorePlaces),
		YearsInCompany:          years,
		AchievementCount:        c.AchievementCount,
		CertificationCount:      c.CertificateCount,
		Breakdown: Breakdown{
			Performance:   b.Performance.Round(scorePlaces),
			Tenure:        b.Tenure.Round(scorePlaces),
			Achievement:   b.Achievement.Round(scorePlaces),
			Certification: b.Certification.Round(scorePlaces),
		},
	}
}

// AveragePerformance returns zero for a candidate without reviews.
func AveragePerformance(scores []decimal.Decimal) decimal.Decimal {
	if len(scores) == 0 {
		return decimal.Zero
	}
	return decimal.Avg(scores[0], scores[1:]...)
}

// TenureYears counts whole elapsed days and divides by 365. Hire dates in
// the future count as zero years.
func TenureYears(hireDate, now time.Time) int {
	days := int(now.Sub(hireDate).Hours() / hoursPerDay)
	if days <= 0 {
		return 0
	}
	return days / daysPerYear
}

func performanceScore(avg decimal.Decimal, reviews int) decimal.Decimal {
	if reviews == 0 {
		return decimal.Zero
	}
	return weighted(avg.Div(maxScore), PerformanceWeight)
}

func tenureScore(years, minYears int) decimal.Decimal {
	if minYears <= 0 {
		return decimal.NewFromInt(TenureWeight)
	}
	ratio := decimal.NewFromInt(int64(years)).Div(decimal.NewFromInt(int64(minYears)))
	return weighted(ratio, TenureWeight)
}

func saturating(count, saturation, weight int) decimal.Decimal {
	ratio := decimal.NewFromInt(int64(count)).Div(decimal.NewFromInt(int64(saturation)))
	return weighted(ratio, weight)
}

func weighted(ratio decimal.Decimal, weight int) decimal.Decimal {
	return clampRatio(ratio).Mul(decimal.NewFromInt(int64(weight)))
}

func clampRatio(r decimal.Decimal) decimal.Decimal {
	if r.IsNegative() {
		return decimal.Zero
	}
	if r.GreaterThan(one) {
		return one
	}
	return r
}
