package cli

import (
	"fmt"

	"talent-match/internal/delivery/http/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the ranked candidates for a job offer",
	Long: `Rank every approved employee against a job offer.

Examples:
  talentctl rank --job 7d4f...           # table output
  talentctl rank --job 7d4f... --json    # same JSON rows as the HTTP API`,
	RunE: runRank,
}

var (
	rankJob  string
	rankJSON bool
	rankTop  int
)

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankJob, "job", "", "job offer id (required)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "print JSON instead of a table")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "only show the first N candidates")
	_ = rankCmd.MarkFlagRequired("job")
}

func runRank(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(rankJob)
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

	if rankTop > 0 && len(ranking.Candidates) > rankTop {
		ranking.Candidates = ranking.Candidates[:rankTop]
	}

	if rankJSON {
		return writeJSON(cmd.OutOrStdout(), dto.NewCandidateMatchResponses(ranking.Candidates))
	}
	return writeRankingTable(cmd.OutOrStdout(), ranking)
}
