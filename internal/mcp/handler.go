package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *server.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler creates a stateless streamable HTTP handler for s.
func NewHandler(s *server.MCPServer, logger *common.Logger) *Handler {
	logger.Info().Int("tools", len(Tools())).Int("resources", len(Resources())).Msg("MCP handler initialized")
	return &Handler{
		streamable: server.NewStreamableHTTPServer(s, server.WithStateLess(true)),
		logger:     logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
