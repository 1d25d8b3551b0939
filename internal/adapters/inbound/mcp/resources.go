package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all stydev MCP resources on the given server.
func registerResources(s *server.MCPServer, deps Deps) {
	// 1. stydev://rules - rule corpus summary
	s.AddResource(
		mcplib.NewResource(
			"stydev://rules",
			"Rule Corpus",
			mcplib.WithResourceDescription("Source, revision and item counts of the active rule corpus"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(deps),
	)

	// 2. stydev://fabrics - known fabric names
	s.AddResource(
		mcplib.NewResource(
			"stydev://fabrics",
			"Fabrics",
			mcplib.WithResourceDescription("Names accepted by the fabric tool and the garment fabric_name field"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFabricsResource(deps),
	)

	// 3. stydev://fabrics/{name} - one fabric's table entry (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"stydev://fabrics/{name}",
			"Fabric",
			mcplib.WithTemplateDescription("Base weight, fiber, construction, finish, drape and stretch of a named fabric"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleFabricResource(deps),
	)
}

func handleRulesResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents("stydev://rules", summarize(deps.Registry))
	}
}

func handleFabricsResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents("stydev://fabrics", deps.Registry.Snapshot().FabricNames())
	}
}

func handleFabricResource(deps Deps) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		uri := request.Params.URI
		name := strings.TrimPrefix(uri, "stydev://fabrics/")
		spec, ok := deps.Registry.Snapshot().Fabric(name)
		if !ok {
			return nil, fmt.Errorf("unknown fabric %q", name)
		}
		return jsonContents(uri, spec)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
