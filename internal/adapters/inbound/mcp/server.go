package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/profiles"
	"github.com/kridha-admin/stydev/internal/application"
	"github.com/kridha-admin/stydev/internal/domain"
)

// Registry is the rule registry surface the tools need.
type Registry interface {
	Snapshot() *domain.RuleSet
	Source() domain.RuleSource
	Reload(ctx context.Context) error
}

// Clearer drops cached results once the rules they were scored with change.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Deps are the wired services the MCP tools call into. Cache may be nil.
type Deps struct {
	Scores   *application.ScoreService
	Registry Registry
	Profiles *profiles.Loader
	Cache    Clearer
	Logger   *slog.Logger
}

// NewServer creates an MCP server with all stydev tools and resources
// registered.
func NewServer(deps Deps) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	s := server.NewMCPServer(
		"stydev",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, deps)
	registerResources(s, deps)

	return s
}
