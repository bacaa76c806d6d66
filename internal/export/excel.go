// Package export renders candidate rankings as Excel workbooks.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet    = "Summary"
	CandidatesSheet = "Ranked Candidates"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Sheet is one job offer's ranking.
type Sheet struct {
	JobTitle    string
	Department  string
	GeneratedAt time.Time
	Candidates  []matching.MatchResult
}

var candidateHeaders = []string{
	"Rank", "Name", "Email", "Department", "Position", "Match Score",
	"Avg Performance", "Years", "Achievements", "Certifications",
	"Performance pts", "Tenure pts", "Achievement pts", "Certification pts",
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// Workbook builds the two-sheet ranking workbook. The caller closes it.
func Workbook(s Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(CandidatesSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSummary(f, s); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeCandidates(f, s.Candidates); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("candidates sheet: %w", err)
	}
	return f, nil
}

// Write streams the workbook to w.
func Write(w io.Writer, s Sheet) error {
	f, err := Workbook(s)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// Save writes the workbook to path, appending .xlsx when missing, and returns the final path.
func Save(path string, s Sheet) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f, err := Workbook(s)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

// FileName is a download name for the ranking of a job.
func FileName(jobTitle string, at time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(jobTitle))
	slug = strings.Trim(strings.Join(strings.FieldsFunc(slug, func(r rune) bool { return r == '-' }), "-"), "-")
	if slug == "" {
		slug = "job"
	}
	return fmt.Sprintf("candidates-%s-%s.xlsx", slug, at.UTC().Format("20060102"))
}

func writeSummary(f *excelize.File, s Sheet) error {
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	_ = f.SetColWidth(SummarySheet, "A", "A", 24)
	_ = f.SetColWidth(SummarySheet, "B", "B", 40)

	if err := f.MergeCell(SummarySheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellValue(SummarySheet, "A1", "Candidate Ranking"); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", titleStyle); err != nil {
		return err
	}

	top := "-"
	if len(s.Candidates) > 0 {
		top = fmt.Sprintf("%s (%s)", s.Candidates[0].FullName, s.Candidates[0].MatchScore.StringFixed(2))
	}

	rows := [][2]any{
		{"Job Offer", s.JobTitle},
		{"Department", s.Department},
		{"Generated At", s.GeneratedAt.UTC().Format(time.RFC3339)},
		{"Candidates", len(s.Candidates)},
		{"Top Candidate", top},
	}
	for i, r := range rows {
		row := i + 3
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", row), r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", row), r[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle); err != nil {
			return err
		}
	}
	return nil
}

func writeCandidates(f *excelize.File, results []matching.MatchResult) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}

	tiers := make(map[string]int, 4)
	for name, color := range map[string]string{"excellent": "C6EFCE", "good": "FFEB9C", "fair": "FFC7CE", "poor": "FF9999"} {
		id, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Border: thinBorder,
		})
		if err != nil {
			return err
		}
		tiers[name] = id
	}

	_ = f.SetColWidth(CandidatesSheet, "A", "A", 8)
	_ = f.SetColWidth(CandidatesSheet, "B", "C", 28)
	_ = f.SetColWidth(CandidatesSheet, "D", "E", 18)
	_ = f.SetColWidth(CandidatesSheet, "F", "N", 14)

	for col, h := range candidateHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(CandidatesSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(CandidatesSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(candidateHeaders))
	if err != nil {
		return err
	}

	for i, r := range results {
		row := i + 2
		values := []any{
			i + 1,
			r.FullName,
			r.Email,
			deref(r.Department),
			deref(r.Position),
			r.MatchScore.InexactFloat64(),
			r.AveragePerformanceScore.InexactFloat64(),
			r.YearsInCompany,
			r.AchievementCount,
			r.CertificationCount,
			r.Breakdown.Performance.InexactFloat64(),
			r.Breakdown.Tenure.InexactFloat64(),
			r.Breakdown.Achievement.InexactFloat64(),
			r.Breakdown.Certification.InexactFloat64(),
		}
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(CandidatesSheet, start, &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(CandidatesSheet, start, fmt.Sprintf("%s%d", lastCol, row), tiers[Tier(r.MatchScore.InexactFloat64())]); err != nil {
			return err
		}
	}

	if len(results) > 0 {
		if err := f.SetPanes(CandidatesSheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}
	return nil
}

// Tier buckets a match score for colouring.
func Tier(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
