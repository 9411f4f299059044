package handlers

import (
	"net/http"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	name   string
	logger *common.Logger
}

// NewHealthHandler creates a new health handler reporting the server name.
func NewHealthHandler(name string, logger *common.Logger) *HealthHandler {
	return &HealthHandler{name: name, logger: logger}
}

// ServeHTTP handles GET /api/health. It does not contact the upstream API;
// the intigriti://api/status resource does that.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"server": h.name,
	})
}
