package cli

import (
	"fmt"

	"talent-match/internal/export"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ranked candidates for a job offer to an Excel workbook",
	RunE:  runExport,
}

var (
	exportJob string
	exportOut string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportJob, "job", "", "job offer id (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: candidates-<title>-<date>.xlsx)")
	_ = exportCmd.MarkFlagRequired("job")
}

func runExport(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(exportJob)
	if err != nil {
		return fmt.Errorf("invalid --job: %w", err)
	}

	c, _, err := newContainer()
	if err != nil {
		return err
	}
	defer c.Close()

	ranking, err := c.Usecases.Matching.RecommendedCandidates(cmd.Context(), jobID)
	if err != nil {
		return fmt.Errorf("rank job %s: %w", jobID, err)
	}

	out := exportOut
	if out == "" {
		out = export.FileName(ranking.JobTitle, ranking.GeneratedAt)
	}

	path, err := export.Save(out, export.Sheet{
		JobTitle:    ranking.JobTitle,
		Department:  ranking.Department,
		GeneratedAt: ranking.GeneratedAt,
		Candidates:  ranking.Candidates,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d candidate(s) to %s\n", len(ranking.Candidates), path)
	return nil
}
