package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/tui"
	"github.com/kridha-admin/stydev/internal/domain"
)

func newFabricCmd(opts *rootOptions) *cobra.Command {
	var (
		requestPath string
		ease        float64
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "fabric [NAME]",
		Short: "Resolve a named fabric and its cling risk",
		Long: "Without a name, list the known fabrics. With a name, show the resolved stretch, " +
			"weight and sheen, and the cling risk per body zone.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, func(rt *runtime) error {
				rs := rt.registry.Snapshot()
				if len(args) == 0 {
					names := rs.FabricNames()
					if jsonOutput {
						return renderJSON(cmd, names)
					}
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
					return nil
				}

				body := domain.DefaultBodyProfile()
				if requestPath != "" {
					req, err := rt.profiles.LoadFile(requestPath)
					if err != nil {
						return err
					}
					body = req.Body
				}

				report, err := rt.scores.AssessFabric(args[0], body, ease)
				if err != nil {
					return err
				}
				if jsonOutput {
					return renderJSON(cmd, report)
				}
				r := report.Resolved
				fmt.Fprintf(cmd.OutOrStdout(), "%s: stretch=%.1f%% gsm=%.0f sheen=%.2f drape=%.0f%% cling_base=%.2f\n",
					report.Name, r.TotalStretchPct, r.EffectiveGSM, r.SheenScore, r.DrapeCoefficient, r.ClingRiskBase)
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCling(report.Name, report.Cling))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&requestPath, "request", "", "Request file whose body to assess (default body otherwise)")
	cmd.Flags().Float64Var(&ease, "ease", -1, "Garment ease in inches; negative means the garment stretches to fit")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
