package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/domain/matching"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func sampleRanking() usecase.Ranking {
	return usecase.Ranking{
		JobOfferID:  uuid.New(),
		JobTitle:    "Platform Engineer",
		Department:  "Engineering",
		GeneratedAt: time.Date(2025, time.June, 30, 9, 0, 0, 0, time.UTC),
		Candidates: []matching.MatchResult{
			{
				ID:                      uuid.New(),
				FullName:                "Ana Torres",
				Email:                   "ana@example.com",
				MatchScore:              decimal.RequireFromString("91.5"),
				AveragePerformanceScore: decimal.RequireFromString("4.4"),
				YearsInCompany:          6,
				AchievementCount:        5,
				CertificationCount:      3,
			},
			{
				ID:         uuid.New(),
				FullName:   "Ben Ito",
				Email:      "ben@example.com",
				MatchScore: decimal.RequireFromString("42"),
			},
		},
	}
}

func TestWriteRankingTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRankingTable(&buf, sampleRanking()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Platform Engineer", "Ana Torres", "ben@example.com", "91.50", "42.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Ana Torres") > strings.Index(out, "Ben Ito") {
		t.Fatalf("expected ranking order to be preserved:\n%s", out)
	}
}

func TestWriteRankingTable_Empty(t *testing.T) {
	r := sampleRanking()
	r.Candidates = nil

	var buf bytes.Buffer
	if err := writeRankingTable(&buf, r); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(buf.String(), "No candidates found.") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestWriteJSON_MatchesAPIRows(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, dto.NewCandidateMatchResponses(sampleRanking().Candidates)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["matchScore"] != 91.5 {
		t.Fatalf("expected matchScore 91.5, got %v", rows[0]["matchScore"])
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"migrate", "seed", "rank", "export"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s command, got %v (%v)", name, cmd, err)
		}
	}
	if rankCmd.Flags().Lookup("job") == nil || exportCmd.Flags().Lookup("out") == nil {
		t.Fatalf("expected --job and --out flags")
	}
}
