package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/gitinfo"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/registry"
)

const defaultStorePath = ".stydev/rules.db"

func newRulesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and manage the rule corpus",
	}
	cmd.AddCommand(newRulesSummaryCmd(opts))
	cmd.AddCommand(newRulesImportCmd(opts))
	return cmd
}

func newRulesSummaryCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show what the rule registry loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, func(rt *runtime) error {
				rs := rt.registry.Snapshot()
				if jsonOutput {
					return renderJSON(cmd, map[string]any{
						"source":     rt.registry.Source().Name(),
						"revision":   rs.Revision(),
						"items":      rs.TotalItems(),
						"types":      rs.TypeCounts(),
						"confidence": rs.ConfidenceCount(),
						"fabrics":    len(rs.FabricNames()),
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n%s\n", rt.registry.Source().Name(), rs.Summary())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newRulesImportCmd(opts *rootOptions) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "import DIR",
		Short: "Copy a rules directory into the sqlite rule store",
		Long: "Validate every document in DIR and replace the contents of the sqlite store with it. " +
			"The store defaults to registry.sqlite_path, or .stydev/rules.db.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, func(rt *runtime) error {
				target := dest
				if target == "" {
					target = rt.cfg.Registry.SQLitePath
				}
				if target == "" {
					abs, err := filepath.Abs(filepath.Join(opts.projectPath, defaultStorePath))
					if err != nil {
						return fmt.Errorf("resolving store path: %w", err)
					}
					target = abs
				}

				corpus, err := registry.NewDirSource(args[0], gitinfo.New()).Load(cmd.Context())
				if err != nil {
					return fmt.Errorf("loading %s: %w", args[0], err)
				}
				if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
					return fmt.Errorf("creating store directory: %w", err)
				}
				if err := registry.Import(cmd.Context(), target, corpus); err != nil {
					return fmt.Errorf("importing rules: %w", err)
				}

				total := 0
				for _, items := range corpus.Items {
					total += len(items)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items (%d confidence entries) into %s\n",
					total, len(corpus.Confidence), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dest, "to", "", "Target sqlite file")
	return cmd
}
