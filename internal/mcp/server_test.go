package mcp

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpc sends one JSON-RPC request to s and returns the raw result.
func rpc(t *testing.T, s *server.MCPServer, method string, params any) json.RawMessage {
	t.Helper()

	paramsJSON, err := json.Marshal(params)
	require.NoError(t, err)

	msg := json.RawMessage(fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":%q,"params":%s}`, method, paramsJSON))
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcp.JSONRPCResponse)
	require.True(t, ok, "expected JSONRPCResponse, got %T", result)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	return raw
}

type textBlocks struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func TestServer_ListTools(t *testing.T) {
	api := newAPIStub(t, replyJSON(`{}`))
	s := NewServer("intigriti-researcher", newTestAdapter(t, api.factory(), Options{}))

	var got mcp.ListToolsResult
	require.NoError(t, json.Unmarshal(rpc(t, s, "tools/list", map[string]any{}), &got))

	names := map[string]bool{}
	for _, tool := range got.Tools {
		names[tool.Name] = true
	}
	assert.Len(t, names, 6)
	for _, tool := range Tools() {
		assert.True(t, names[tool.Name], "missing %s", tool.Name)
	}
}

func TestServer_CallTool(t *testing.T) {
	api := newAPIStub(t, replyJSON(`{"maxCount":3,"records":[]}`))
	s := NewServer("intigriti-researcher", newTestAdapter(t, api.factory(), Options{}))

	var got textBlocks
	raw := rpc(t, s, "tools/call", map[string]any{
		"name":      ToolGetPrograms,
		"arguments": map[string]any{"limit": 5},
	})
	require.NoError(t, json.Unmarshal(raw, &got))

	require.Len(t, got.Content, 1)
	assert.Equal(t, "text", got.Content[0].Type)
	assert.False(t, got.IsError)
	assert.JSONEq(t, `{"maxCount":3,"records":[]}`, got.Content[0].Text)
	assert.Equal(t, "5", api.lastURL().Query().Get("limit"))
}

func TestServer_CallToolFailureIsTextResult(t *testing.T) {
	api := newAPIStub(t, replyJSON(`{}`))
	s := NewServer("intigriti-researcher", newTestAdapter(t, api.factory(), Options{}))

	var got textBlocks
	raw := rpc(t, s, "tools/call", map[string]any{
		"name":      ToolGetProgramDetails,
		"arguments": map[string]any{},
	})
	require.NoError(t, json.Unmarshal(raw, &got))

	require.Len(t, got.Content, 1)
	assert.True(t, got.IsError)
	assert.Equal(t, `Error: missing required argument "program_id"`, got.Content[0].Text)
}

func TestServer_ReadResources(t *testing.T) {
	api := newAPIStub(t, replyJSON(`{"maxCount":7}`))
	s := NewServer("intigriti-researcher", newTestAdapter(t, api.factory(), Options{}))

	var list mcp.ListResourcesResult
	require.NoError(t, json.Unmarshal(rpc(t, s, "resources/list", map[string]any{}), &list))
	require.Len(t, list.Resources, 2)

	var read struct {
		Contents []struct {
			URI      string `json:"uri"`
			MIMEType string `json:"mimeType"`
			Text     string `json:"text"`
		} `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(rpc(t, s, "resources/read", map[string]any{"uri": StatusResourceURI}), &read))
	require.Len(t, read.Contents, 1)
	assert.Equal(t, StatusResourceURI, read.Contents[0].URI)
	assert.Equal(t, "text/plain", read.Contents[0].MIMEType)
	assert.Equal(t, "✅ API Connected\nTotal programs accessible: 7", read.Contents[0].Text)
}
