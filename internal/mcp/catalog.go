package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	ToolGetPrograms                 = "get_programs"
	ToolGetProgramDetails           = "get_program_details"
	ToolGetProgramActivities        = "get_program_activities"
	ToolGetProgramDomains           = "get_program_domains"
	ToolGetProgramRulesOfEngagement = "get_program_rules_of_engagement"
	ToolCallCustomEndpoint          = "call_custom_endpoint"
)

// customEndpointMethods is advisory; call_custom_endpoint forwards any method.
var customEndpointMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// Tools returns the static tool catalog in a fixed order.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        ToolGetPrograms,
			Description: "Get all programs you have access to with optional filtering",
			InputSchema: objectSchema(map[string]any{
				"status_id": integerProp("Filter by program status ID"),
				"type_id":   integerProp("Filter by program type ID"),
				"following": booleanProp("Filter by programs you're following"),
				"limit":     limitProp("Number of programs per page (max 500)"),
				"offset":    offsetProp(),
			}),
		},
		{
			Name:        ToolGetProgramDetails,
			Description: "Get detailed information about a specific bug bounty program",
			InputSchema: objectSchema(map[string]any{
				"program_id": stringProp("The unique identifier (GUID) of the program"),
			}, "program_id"),
		},
		{
			Name:        ToolGetProgramActivities,
			Description: "Get all program activities with optional filtering",
			InputSchema: objectSchema(map[string]any{
				"created_since": integerProp("Unix timestamp to filter activities created since this time"),
				"following":     booleanProp("Filter by programs you're following"),
				"limit":         limitProp("Number of activities per page (max 500)"),
				"offset":        offsetProp(),
			}),
		},
		{
			Name:        ToolGetProgramDomains,
			Description: "Get program domains/scope for a specific version",
			InputSchema: objectSchema(map[string]any{
				"program_id": stringProp("The unique identifier (GUID) of the program"),
				"version_id": stringProp("The unique identifier (GUID) of the domains version"),
			}, "program_id", "version_id"),
		},
		{
			Name:        ToolGetProgramRulesOfEngagement,
			Description: "Get program rules of engagement for a specific version",
			InputSchema: objectSchema(map[string]any{
				"program_id": stringProp("The unique identifier (GUID) of the program"),
				"version_id": stringProp("The unique identifier (GUID) of the rules version"),
			}, "program_id", "version_id"),
		},
		{
			Name:        ToolCallCustomEndpoint,
			Description: "Call a custom API endpoint (useful for new beta endpoints)",
			InputSchema: objectSchema(map[string]any{
				"method": map[string]any{
					"type":        "string",
					"description": "HTTP method",
					"enum":        customEndpointMethods,
				},
				"endpoint":  stringProp("API endpoint path (e.g., 'v1/programs/new-endpoint')"),
				"params":    objectProp("Query parameters as key-value pairs"),
				"json_data": objectProp("JSON body data for POST/PUT requests"),
			}, "method", "endpoint"),
		},
	}
}

func objectSchema(props map[string]any, required ...string) mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func integerProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func booleanProp(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func objectProp(description string) map[string]any {
	return map[string]any{"type": "object", "description": description}
}

func limitProp(description string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": description,
		"default":     20,
		"maximum":     500,
		"minimum":     0,
	}
}

func offsetProp() map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Offset for pagination",
		"default":     0,
		"minimum":     0,
	}
}
