package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions are the persistent flags every command reads.
type rootOptions struct {
	projectPath string
	verbose     bool
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "stydev",
		Short: "Score how a garment will look on a specific body",
		Long: "stydev scores a garment against a body profile with a layered perceptual model: " +
			"fabric gates, principle scorers, goal verdicts and body-adjusted geometry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.projectPath, "path", ".", "Project directory holding .stydev.yaml and the rules corpus")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newScoreCmd(opts))
	cmd.AddCommand(newClassifyCmd(opts))
	cmd.AddCommand(newFabricCmd(opts))
	cmd.AddCommand(newRulesCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
