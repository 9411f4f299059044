package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
)

// NewServer creates an MCP server with every tool and resource registered
// against a.
func NewServer(name string, a *Adapter) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		common.GetVersion(),
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)
	a.Register(s)
	return s
}

// Register adds the tool and resource catalogs to s.
func (a *Adapter) Register(s *server.MCPServer) {
	for _, tool := range Tools() {
		s.AddTool(tool, a.toolHandler())
	}
	for _, res := range Resources() {
		s.AddResource(res, a.resourceHandler(res))
	}
}

// toolHandler never returns a protocol error; failures are text results.
func (a *Adapter) toolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return a.CallTool(ctx, request.Params.Name, request.GetArguments()), nil
	}
}

func (a *Adapter) resourceHandler(res mcp.Resource) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := a.ReadResource(ctx, request.Params.URI)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: res.MIMEType,
				Text:     text,
			},
		}, nil
	}
}
