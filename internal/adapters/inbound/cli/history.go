package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/tui"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		last       int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past scoring runs saved with score --history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, func(rt *runtime) error {
				entries, err := rt.history.Load()
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				if last > 0 && len(entries) > last {
					entries = entries[len(entries)-last:]
				}
				if jsonOutput {
					return renderJSON(cmd, entries)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&last, "last", 0, "Show only the most recent N entries")
	return cmd
}
