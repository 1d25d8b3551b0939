package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/config"
	"github.com/kridha-admin/stydev/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		source string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .stydev.yaml configuration file",
		Long:  "Create a .stydev.yaml with the default registry, cache and history settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			switch source {
			case domain.RegistrySourceDir, domain.RegistrySourceSQLite:
			default:
				return fmt.Errorf("unknown registry source %q (valid: dir, sqlite)", source)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(source)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", domain.RegistrySourceDir, "Rule registry source (dir, sqlite)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .stydev.yaml")

	return cmd
}

func generateConfig(source string) string {
	cfg := domain.DefaultConfig()
	eng := domain.DefaultEngineConfig()

	registry := fmt.Sprintf("registry:\n  source: %s\n  dir: %s\n", source, cfg.Registry.Dir)
	if source == domain.RegistrySourceSQLite {
		registry += "  sqlite_path: " + defaultStorePath + "\n"
	}

	result := "# stydev configuration\n\n" + registry + "\n"
	result += fmt.Sprintf("cache:\n  enabled: %t\n  max_cost: %d\n  ttl: %s\n\n",
		cfg.Cache.Enabled, cfg.Cache.MaxCost, cfg.Cache.TTL)
	result += fmt.Sprintf("history:\n  path: %s\n\n", cfg.History.Path)
	result += fmt.Sprintf(`# engine:
#   weight_cap_fraction: %.2f
#   structured_penalty_reduction: %.2f
#   dominance_threshold: %.2f
#   goal_pass_threshold: %.2f
#   max_fixes: %d
#   apply_context_adjustments: false
`, eng.WeightCapFraction, eng.StructuredPenaltyReduction, eng.DominanceThreshold, eng.GoalPassThreshold, eng.MaxFixes)

	return result
}
