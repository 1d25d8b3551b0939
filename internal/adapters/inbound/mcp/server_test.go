package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/mock/gomock"

	mcpadapter "github.com/kridha-admin/stydev/internal/adapters/inbound/mcp"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/profiles"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/registry"
	"github.com/kridha-admin/stydev/internal/application"
	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, src domain.RuleSource) *server.MCPServer {
	t.Helper()
	reg := registry.New(src, nil)
	return mcpadapter.NewServer(mcpadapter.Deps{
		Scores:   application.NewScoreService(reg, domain.DefaultEngineConfig(), nil, nil),
		Registry: reg,
		Profiles: profiles.New(nil),
	})
}

func quietSource(t *testing.T) *mocks.MockRuleSource {
	src := mocks.NewMockRuleSource(gomock.NewController(t))
	src.EXPECT().Name().Return("mock").AnyTimes()
	return src
}

func makeReq(args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected TextContent")
	return tc.Text
}

func call(t *testing.T, s *server.MCPServer, tool string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	st, ok := s.ListTools()[tool]
	require.True(t, ok, "tool %q should be registered", tool)
	result, err := st.Handler(context.Background(), makeReq(args))
	require.NoError(t, err)
	return result
}

func TestNewServer_RegistersTools(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	tools := s.ListTools()
	expected := []string{
		"stydev_score",
		"stydev_classify",
		"stydev_fabric",
		"stydev_rules_summary",
		"stydev_rules_reload",
	}
	for _, name := range expected {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expected))
}

func TestScoreTool_ObjectRequest(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_score", map[string]any{
		"request": map[string]any{
			"body":    map[string]any{"height": 64, "bust": 36, "waist": 28, "hip": 38},
			"garment": map[string]any{"title": "Black Wrap Dress", "color_lightness": 0.1},
		},
	})
	require.False(t, result.IsError, resultText(t, result))

	var out domain.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, domain.CategoryDress, out.Category)
	assert.GreaterOrEqual(t, out.OverallScore, 0.0)
	assert.LessOrEqual(t, out.OverallScore, 10.0)
	assert.NotEmpty(t, out.ReasoningChain)
}

func TestScoreTool_YAMLString(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_score", map[string]any{
		"request": "garment:\n  title: Wide-Leg Trousers\n",
	})
	require.False(t, result.IsError, resultText(t, result))
	assert.Contains(t, resultText(t, result), `"category": "bottom_pants"`)
}

func TestScoreTool_InvalidRequest(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_score", map[string]any{
		"request": map[string]any{"body": map[string]any{"height": 120}},
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "body.height")
}

func TestScoreTool_MissingRequest(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_score", map[string]any{})
	assert.True(t, result.IsError)
}

func TestClassifyTool(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_classify", map[string]any{"title": "Cropped Denim Jacket"})
	require.False(t, result.IsError)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "jacket", out["category"])
	assert.Equal(t, true, out["layer"])
}

func TestClassifyTool_MissingTitle(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_classify", map[string]any{})
	assert.True(t, result.IsError)
}

func TestFabricTool(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_fabric", map[string]any{"name": "Ponte", "ease": 2.0})
	require.False(t, result.IsError, resultText(t, result))

	var out application.FabricReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "ponte", out.Name)
	assert.Equal(t, 2.0, out.Ease)
	assert.Contains(t, out.Cling, "waist")
}

func TestFabricTool_Unknown(t *testing.T) {
	s := newTestServer(t, quietSource(t))

	result := call(t, s, "stydev_fabric", map[string]any{"name": "unobtainium"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unobtainium")
}

func TestRulesReloadTool(t *testing.T) {
	src := quietSource(t)
	src.EXPECT().Load(gomock.Any()).Return(&domain.RuleCorpus{
		Items:    map[string][]domain.RuleItem{"principles": {{"principle_id": "P_001"}}},
		Revision: "abc123",
	}, nil)
	s := newTestServer(t, src)

	result := call(t, s, "stydev_rules_reload", nil)
	require.False(t, result.IsError, resultText(t, result))

	var out mcpadapter.RulesSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "mock", out.Source)
	assert.Equal(t, "abc123", out.Revision)
	assert.Equal(t, 1, out.Items)

	summary := call(t, s, "stydev_rules_summary", nil)
	assert.Contains(t, resultText(t, summary), `"revision": "abc123"`)
}

func TestRulesReloadTool_KeepsPreviousOnFailure(t *testing.T) {
	src := quietSource(t)
	src.EXPECT().Load(gomock.Any()).Return(nil, errors.New("disk gone"))
	s := newTestServer(t, src)

	result := call(t, s, "stydev_rules_reload", nil)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "disk gone")

	summary := call(t, s, "stydev_rules_summary", nil)
	assert.False(t, summary.IsError)
}

type countingCache struct{ cleared int }

func (c *countingCache) Clear(context.Context) error {
	c.cleared++
	return nil
}

func TestRulesReloadTool_ClearsCache(t *testing.T) {
	src := quietSource(t)
	src.EXPECT().Load(gomock.Any()).Return(&domain.RuleCorpus{
		Items: map[string][]domain.RuleItem{"rules": {{"rule_id": "R_001"}}},
	}, nil)
	reg := registry.New(src, nil)
	cache := &countingCache{}
	s := mcpadapter.NewServer(mcpadapter.Deps{
		Scores:   application.NewScoreService(reg, domain.DefaultEngineConfig(), nil, nil),
		Registry: reg,
		Profiles: profiles.New(nil),
		Cache:    cache,
	})

	result := call(t, s, "stydev_rules_reload", nil)
	require.False(t, result.IsError, resultText(t, result))
	assert.Equal(t, 1, cache.cleared)
}
