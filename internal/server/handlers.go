package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/atspi-inspect/internal/inspect"
	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/prompt"
	"github.com/mj1618/atspi-inspect/internal/resolve"
	"gopkg.in/yaml.v3"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")

	s.busMu.Lock()
	defer s.busMu.Unlock()

	apps, err := resolve.New(s.bus, nil, s.logger).Candidates(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	apps = model.FilterApplications(apps, name)
	if apps == nil {
		apps = []model.Application{}
	}
	return mcp.NewToolResultText(toText(apps)), nil
}

func (s *Server) handleInspect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := stringParam(params, "query", "")
	opts := inspect.Options{
		Tree:     boolParam(params, "print_tree", false),
		Flat:     boolParam(params, "flat", false),
		MaxDepth: intParam(params, "max_depth", 0),
		Roles:    splitList(stringParam(params, "roles", "")),
	}
	if opts.MaxDepth < 0 {
		return mcp.NewToolResultError("max_depth must be >= 0"), nil
	}
	// No one can answer prompts over MCP
	prompter := prompt.Always(boolParam(params, "accept_partial", false))

	s.busMu.Lock()
	defer s.busMu.Unlock()

	reports, err := inspect.Applications(ctx, s.bus, prompter, query, opts, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(reports) == 0 {
		return mcp.NewToolResultError("no application selected: " + query), nil
	}
	return mcp.NewToolResultText(toText(reports)), nil
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// intParam accepts JSON numbers, which decode as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
