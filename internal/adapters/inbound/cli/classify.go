package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var (
		title      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "classify [REQUEST]",
		Short: "Show the garment category a request or title resolves to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && title == "" {
				return fmt.Errorf("provide a request file or --title")
			}
			return withRuntime(cmd, opts, func(rt *runtime) error {
				g := domain.DefaultGarmentProfile()
				if len(args) > 0 {
					req, err := rt.profiles.LoadFile(args[0])
					if err != nil {
						return err
					}
					g = req.Garment
				}
				if title != "" {
					g.Title = title
				}

				category := scoring.Classify(&g)
				if jsonOutput {
					return renderJSON(cmd, map[string]any{
						"title":    g.Title,
						"category": category,
						"layer":    scoring.IsLayerGarment(category),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), category)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Product title to classify")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
