package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleSheet() Sheet {
	dept := "Engineering"
	return Sheet{
		JobTitle:    "Platform Lead",
		Department:  "Engineering",
		GeneratedAt: time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
		Candidates: []matching.MatchResult{
			{
				ID: uuid.New(), FullName: "Ana Torres", Email: "ana@example.com", Department: &dept,
				MatchScore: decimal.RequireFromString("92.5"), AveragePerformanceScore: decimal.RequireFromString("4.6"),
				YearsInCompany: 6, AchievementCount: 5, CertificationCount: 3,
			},
			{
				ID: uuid.New(), FullName: "Sam Lee", Email: "sam@example.com",
				MatchScore: decimal.RequireFromString("41"), YearsInCompany: 1,
			},
		},
	}
}

func TestWriteProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleSheet()); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(CandidatesSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Rank" || rows[0][5] != "Match Score" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Ana Torres" || rows[1][5] != "92.5" || rows[1][3] != "Engineering" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "2" || rows[2][1] != "Sam Lee" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}

	title, err := f.GetCellValue(SummarySheet, "B3")
	if err != nil || title != "Platform Lead" {
		t.Fatalf("summary job title: %q %v", title, err)
	}
	count, err := f.GetCellValue(SummarySheet, "B6")
	if err != nil || count != "2" {
		t.Fatalf("summary candidate count: %q %v", count, err)
	}
}

func TestSaveAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(filepath.Join(dir, "ranking"), sampleSheet())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Ext(path) != ".xlsx" {
		t.Fatalf("expected .xlsx, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestEmptyRanking(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Sheet{JobTitle: "Nobody Yet"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook bytes")
	}
}

func TestTierAndFileName(t *testing.T) {
	cases := map[float64]string{100: "excellent", 90: "excellent", 89.99: "good", 70: "good", 50: "fair", 49.99: "poor", 0: "poor"}
	for score, want := range cases {
		if got := Tier(score); got != want {
			t.Fatalf("Tier(%v) = %s, want %s", score, got, want)
		}
	}

	at := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if got := FileName("  Senior Go / Platform Engineer ", at); got != "candidates-senior-go-platform-engineer-20250630.xlsx" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := FileName("", at); got != "candidates-job-20250630.xlsx" {
		t.Fatalf("unexpected file name %q", got)
	}
}
