package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/kridha-admin/stydev/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the stydev MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the stydev MCP server (stdio)",
		Long: "Start the stydev MCP server using stdio transport. Agents can score garments, " +
			"classify titles, resolve fabrics and reload the rule corpus.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, opts, func(rt *runtime) error {
				deps := mcpadapter.Deps{
					Scores:   rt.scores,
					Registry: rt.registry,
					Profiles: rt.profiles,
					Logger:   rt.logger,
				}
				if rt.cache != nil {
					deps.Cache = rt.cache
				}
				s := mcpadapter.NewServer(deps)
				return server.ServeStdio(s)
			})
		},
	}
	return cmd
}
