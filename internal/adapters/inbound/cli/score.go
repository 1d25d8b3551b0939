package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/tui"
	"github.com/kridha-admin/stydev/internal/domain"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		saveToHist bool
		workers    int
		minScore   float64
	)

	cmd := &cobra.Command{
		Use:   "score REQUEST...",
		Short: "Score a garment on a body",
		Long: "Score one or more request files. Each YAML or JSON file holds a body, a garment " +
			"and an optional wearing context.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, func(rt *runtime) error {
				// 1. Read every request before scoring any
				requests := make([]domain.ScoreRequest, 0, len(args))
				for _, path := range args {
					req, err := rt.profiles.LoadFile(path)
					if err != nil {
						return err
					}
					requests = append(requests, req)
				}

				// 2. Score
				results, err := rt.scores.ScoreBatch(cmd.Context(), requests, workers)
				if err != nil {
					return fmt.Errorf("scoring failed: %w", err)
				}

				// 3. Record
				if saveToHist {
					revision := rt.registry.Snapshot().Revision()
					now := time.Now().Format(time.RFC3339)
					for i, r := range results {
						entry := domain.NewScoreEntry(now, requests[i].Garment.Title, revision, r)
						if err := rt.history.Save(entry); err != nil {
							return fmt.Errorf("saving history: %w", err)
						}
					}
				}

				// 4. Render
				var renderErr error
				if jsonOutput {
					if len(results) == 1 {
						renderErr = renderJSON(cmd, results[0])
					} else {
						renderErr = renderJSON(cmd, results)
					}
				} else {
					for i, r := range results {
						fmt.Fprint(cmd.OutOrStdout(), tui.RenderScore(r, requests[i].Garment.Title))
					}
				}
				if renderErr != nil {
					return renderErr
				}

				// 5. Gate
				for i, r := range results {
					if r.OverallScore < minScore {
						return fmt.Errorf("%s scored %.1f, below minimum %.1f", args[i], r.OverallScore, minScore)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&saveToHist, "history", false, "Append results to the score history")
	cmd.Flags().IntVar(&workers, "workers", 4, "Requests scored in parallel (0 = unbounded)")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Fail when any score is below this value")

	return cmd
}
