// Package mcp exposes the Intigriti Researcher API as MCP tools and resources.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
)

// ClientFactory builds the API client on first use.
type ClientFactory func() (*intigriti.Client, error)

// Options configures an Adapter.
type Options struct {
	// ValidateArguments rejects calls whose arguments do not match the
	// tool's input schema before any request is made.
	ValidateArguments bool
}

// toolFunc runs one tool against the API client.
type toolFunc func(ctx context.Context, c *intigriti.Client, args arguments) (any, error)

// Adapter dispatches tool calls and resource reads to one shared API client.
// The client is built lazily on the first call that needs it and reused for
// the life of the process.
type Adapter struct {
	newClient ClientFactory
	logger    *common.Logger
	tools     map[string]toolFunc
	validator *argumentValidator

	mu     sync.Mutex
	client *intigriti.Client
}

// NewAdapter creates an Adapter. No client is built until a call needs one.
func NewAdapter(newClient ClientFactory, logger *common.Logger, opts Options) (*Adapter, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	a := &Adapter{
		newClient: newClient,
		logger:    logger,
		tools: map[string]toolFunc{
			ToolGetPrograms:                 getPrograms,
			ToolGetProgramDetails:           getProgramDetails,
			ToolGetProgramActivities:        getProgramActivities,
			ToolGetProgramDomains:           getProgramDomains,
			ToolGetProgramRulesOfEngagement: getProgramRulesOfEngagement,
			ToolCallCustomEndpoint:          callCustomEndpoint,
		},
	}
	if opts.ValidateArguments {
		v, err := newArgumentValidator(Tools())
		if err != nil {
			return nil, err
		}
		a.validator = v
	}
	return a, nil
}

// apiClient returns the shared client, building it under the lock if needed.
// A failed build is not remembered, so the next call tries again.
func (a *Adapter) apiClient() (*intigriti.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}
	c, err := a.newClient()
	if err != nil {
		return nil, err
	}
	a.client = c
	a.logger.Info().Str("base_url", c.BaseURL()).Msg("api client created")
	return c, nil
}

// Close releases the client's connection pool if one was built.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		a.client.Close()
		a.client = nil
		a.logger.Info().Msg("api client closed")
	}
}

// CallTool runs the named tool and renders every outcome, including
// failures, as a text result.
func (a *Adapter) CallTool(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	logger := a.logger.WithCorrelationId(uuid.New().String())
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("tool", name).Str("panic", fmt.Sprint(r)).Msg("tool call panicked")
			result = errorResult("Error: internal error")
		}
	}()

	client, err := a.apiClient()
	if err != nil {
		logger.Error().Str("tool", name).Str("error", err.Error()).Msg("api client configuration failed")
		return errorResult(fmt.Sprintf("Configuration error: %v", err))
	}

	fn, ok := a.tools[name]
	if !ok {
		logger.Warn().Str("tool", name).Msg("unknown tool")
		return errorResult(fmt.Sprintf("Unknown tool: %s", name))
	}

	if a.validator != nil {
		if err := a.validator.validate(name, args); err != nil {
			logger.Warn().Str("tool", name).Str("error", err.Error()).Msg("tool arguments rejected")
			return errorResult(fmt.Sprintf("Error: %v", err))
		}
	}

	logger.Debug().Str("tool", name).Msg("tool call")

	out, err := fn(ctx, client, arguments(args))
	if err != nil {
		var apiErr *intigriti.APIError
		if errors.As(err, &apiErr) {
			logger.Warn().Str("tool", name).Str("error", err.Error()).Int64("duration_ms", time.Since(start).Milliseconds()).Msg("tool call api error")
			return errorResult(fmt.Sprintf("API error: %v", apiErr))
		}
		logger.Error().Str("tool", name).Str("error", err.Error()).Int64("duration_ms", time.Since(start).Milliseconds()).Msg("tool call error")
		return errorResult(fmt.Sprintf("Error: %v", err))
	}

	text, err := formatJSON(out)
	if err != nil {
		logger.Error().Str("tool", name).Str("error", err.Error()).Msg("failed to format tool result")
		return errorResult(fmt.Sprintf("Error: %v", err))
	}

	logger.Info().Str("tool", name).Int64("duration_ms", time.Since(start).Milliseconds()).Msg("tool call complete")
	return mcp.NewToolResultText(text)
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(message)},
		IsError: true,
	}
}
