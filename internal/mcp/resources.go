package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
)

// Resource URIs.
const (
	StatusResourceURI    = "intigriti://api/status"
	EndpointsResourceURI = "intigriti://api/endpoints"
)

// ErrUnknownResource is returned by ReadResource for URIs not in Resources.
var ErrUnknownResource = errors.New("unknown resource")

// Resources returns the static resource catalog.
func Resources() []mcp.Resource {
	return []mcp.Resource{
		mcp.NewResource(StatusResourceURI, "API Status",
			mcp.WithResourceDescription("Check API connectivity and authentication status"),
			mcp.WithMIMEType("text/plain"),
		),
		mcp.NewResource(EndpointsResourceURI, "Available Endpoints",
			mcp.WithResourceDescription("List of all available API endpoints based on OpenAPI spec"),
			mcp.WithMIMEType("application/json"),
		),
	}
}

// endpointCatalog is served by the endpoints resource. Field order is the
// output order.
type endpointCatalog struct {
	Programs          string `json:"programs"`
	ProgramDetails    string `json:"program_details"`
	ProgramActivities string `json:"program_activities"`
	ProgramDomains    string `json:"program_domains"`
	ProgramRules      string `json:"program_rules"`
}

var endpoints = endpointCatalog{
	Programs:          "GET /v1/programs - Get all programs you have access to",
	ProgramDetails:    "GET /v1/programs/{programId} - Get program details",
	ProgramActivities: "GET /v1/programs/activities - Get all program activities",
	ProgramDomains:    "GET /v1/programs/{programId}/domains/{versionId} - Get program domains",
	ProgramRules:      "GET /v1/programs/{programId}/rules-of-engagements/{versionId} - Get rules of engagement",
}

// ReadResource renders the resource at uri. Status probe failures are part
// of the rendered text, not the returned error.
func (a *Adapter) ReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case StatusResourceURI:
		return a.probeStatus(ctx), nil
	case EndpointsResourceURI:
		return formatJSON(endpoints)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownResource, uri)
	}
}

// probeStatus fetches a single program to confirm the token works.
func (a *Adapter) probeStatus(ctx context.Context) string {
	client, err := a.apiClient()
	if err != nil {
		return statusFailed(err)
	}

	out, err := client.GetPrograms(ctx, intigriti.ProgramsQuery{Limit: 1})
	if err != nil {
		a.logger.Warn().Str("error", err.Error()).Msg("status probe failed")
		return statusFailed(err)
	}

	var count any = "Unknown"
	if page, ok := out.(map[string]any); ok {
		if n, ok := page["maxCount"]; ok && n != nil {
			count = n
		}
	}
	return fmt.Sprintf("✅ API Connected\nTotal programs accessible: %v", count)
}

func statusFailed(err error) string {
	return fmt.Sprintf("❌ API Connection Failed\nError: %v", err)
}
