package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
)

// registerTools registers all stydev MCP tools on the given server.
func registerTools(s *server.MCPServer, deps Deps) {
	// 1. stydev_score
	s.AddTool(
		mcplib.NewTool("stydev_score",
			mcplib.WithDescription("Score a garment on a body. Returns the full result with principle scores, goal verdicts, fixes and the reasoning chain."),
			mcplib.WithObject("request",
				mcplib.Required(),
				mcplib.Description("Request with body, garment and optional context objects, or the same document as a YAML/JSON string"),
			),
		),
		handleScore(deps),
	)

	// 2. stydev_classify
	s.AddTool(
		mcplib.NewTool("stydev_classify",
			mcplib.WithDescription("Classify a product title into a garment category"),
			mcplib.WithString("title",
				mcplib.Required(),
				mcplib.Description("Product title, e.g. \"Cropped Denim Jacket\""),
			),
		),
		handleClassify(),
	)

	// 3. stydev_fabric
	s.AddTool(
		mcplib.NewTool("stydev_fabric",
			mcplib.WithDescription("Resolve a named fabric and assess cling risk per body zone"),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Fabric name, e.g. ponte or silk_charmeuse")),
			mcplib.WithNumber("ease", mcplib.Description("Garment ease in inches; negative means the garment stretches to fit (default -1)")),
			mcplib.WithObject("body", mcplib.Description("Body measurements; the reference body when omitted")),
		),
		handleFabric(deps),
	)

	// 4. stydev_rules_summary
	s.AddTool(
		mcplib.NewTool("stydev_rules_summary",
			mcplib.WithDescription("Describe the loaded rule corpus: source, revision and item counts"),
		),
		handleRulesSummary(deps),
	)

	// 5. stydev_rules_reload
	s.AddTool(
		mcplib.NewTool("stydev_rules_reload",
			mcplib.WithDescription("Reload the rule corpus from its source. The previous rules stay active if loading fails."),
		),
		handleRulesReload(deps),
	)
}

func handleScore(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, ok := request.GetArguments()["request"]
		if !ok || raw == nil {
			return errorResult("required argument \"request\" not found"), nil
		}
		doc, err := documentBytes(raw)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		req, err := deps.Profiles.Decode(doc)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		result, err := deps.Scores.Score(ctx, req)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleClassify() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		title, err := request.RequireString("title")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		g := domain.DefaultGarmentProfile()
		g.Title = title
		category := scoring.Classify(&g)
		return jsonResult(map[string]any{
			"title":    title,
			"category": category,
			"layer":    scoring.IsLayerGarment(category),
		})
	}
}

func handleFabric(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		ease := request.GetFloat("ease", -1)

		body := domain.DefaultBodyProfile()
		if raw, ok := request.GetArguments()["body"]; ok && raw != nil {
			doc, err := json.Marshal(map[string]any{"body": raw})
			if err != nil {
				return errorResult(fmt.Sprintf("encoding body: %v", err)), nil
			}
			req, err := deps.Profiles.Decode(doc)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			body = req.Body
		}

		report, err := deps.Scores.AssessFabric(name, body, ease)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(report)
	}
}

func handleRulesSummary(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(summarize(deps.Registry))
	}
}

func handleRulesReload(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		if err := deps.Registry.Reload(ctx); err != nil {
			return errorResult(fmt.Sprintf("reload failed: %v", err)), nil
		}
		if deps.Cache != nil {
			if err := deps.Cache.Clear(ctx); err != nil {
				deps.Logger.Warn("clearing result cache failed", "error", err)
			}
		}
		return jsonResult(summarize(deps.Registry))
	}
}

// RulesSummary describes the active rule snapshot.
type RulesSummary struct {
	Source     string         `json:"source"`
	Revision   string         `json:"revision"`
	Items      int            `json:"items"`
	Types      map[string]int `json:"types"`
	Confidence int            `json:"confidence"`
	Fabrics    int            `json:"fabrics"`
}

func summarize(reg Registry) RulesSummary {
	rs := reg.Snapshot()
	return RulesSummary{
		Source:     reg.Source().Name(),
		Revision:   rs.Revision(),
		Items:      rs.TotalItems(),
		Types:      rs.TypeCounts(),
		Confidence: rs.ConfidenceCount(),
		Fabrics:    len(rs.FabricNames()),
	}
}

// documentBytes accepts a request either as an object or as document text.
func documentBytes(raw any) ([]byte, error) {
	if s, ok := raw.(string); ok {
		return []byte(s), nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return data, nil
}

// jsonResult marshals v to indented JSON and wraps it in a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
