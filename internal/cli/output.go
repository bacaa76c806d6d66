package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"talent-match/internal/export"
	"talent-match/internal/usecase"

	"github.com/olekukonko/tablewriter"
)

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writeRankingTable(w io.Writer, r usecase.Ranking) error {
	fmt.Fprintf(w, "%s (%s) ranked at %s\n", r.JobTitle, r.Department, r.GeneratedAt.Format("2006-01-02 15:04 MST"))

	if len(r.Candidates) == 0 {
		fmt.Fprintln(w, "No candidates found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Name", "Email", "Score", "Tier", "Avg Perf", "Years", "Achievements", "Certificates")
	for i, c := range r.Candidates {
		score := c.MatchScore.InexactFloat64()
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			c.FullName,
			c.Email,
			c.MatchScore.StringFixed(2),
			export.Tier(score),
			c.AveragePerformanceScore.StringFixed(2),
			strconv.Itoa(c.YearsInCompany),
			strconv.Itoa(c.AchievementCount),
			strconv.Itoa(c.CertificationCount),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
