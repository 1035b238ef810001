// Package mcpserver exposes the tool catalog as an MCP server over stdio,
// so MCP-speaking agent frameworks can call the toolkit directly.
package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/internal/runtime"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
)

// Server adapts the tool registry to the MCP protocol.
type Server struct {
	rt     *runtime.Runtime
	mcp    *server.MCPServer
	logger *logrus.Logger
}

// NewServer registers every catalog tool with an MCP server instance.
func NewServer(rt *runtime.Runtime, version string) (*Server, error) {
	s := &Server{
		rt:     rt,
		logger: rt.Logger,
		mcp: server.NewMCPServer(
			rt.Config.Agent.Name,
			version,
			server.WithToolCapabilities(true),
		),
	}

	for _, t := range rt.Registry.All() {
		schemaJSON, err := json.Marshal(t.Parameters.JSONSchema())
		if err != nil {
			return nil, err
		}
		s.mcp.AddTool(
			mcp.NewToolWithRawSchema(t.Name, t.Description, schemaJSON),
			s.handlerFor(t),
		)
	}
	return s, nil
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.logger.Infof("Serving %d tools over MCP stdio", len(s.rt.Registry.All()))
	return server.ServeStdio(s.mcp)
}

func (s *Server) handlerFor(t *tool.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := s.rt.Executor.Execute(ctx, t, s.rt.Context, s.rt.Client, req.GetArguments())

		// The pipeline never errors outward; vetoes and failures are data.
		payload := map[string]any{
			"humanMessage": result.HumanMessage,
		}
		if result.IsBytes() {
			payload["bytes"] = base64.StdEncoding.EncodeToString(result.Bytes)
		}
		if result.Raw != nil {
			payload["raw"] = result.Raw
		}
		if result.IsBlocked() {
			payload["blockedBy"] = result.BlockedBy
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
