package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/intigriti-mcp/internal/config"
	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
	"github.com/bobmcallan/intigriti-mcp/internal/mcp"
)

func TestNew_UsesConfiguredClient(t *testing.T) {
	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"maxCount":9}`))
	}))
	t.Cleanup(api.Close)

	cfg := config.NewDefaultConfig()
	cfg.Intigriti.BaseURL = api.URL
	cfg.Intigriti.APIToken = "from-config"

	application, err := New(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { application.Close() })

	require.NotNil(t, application.MCPServer)
	require.NotNil(t, application.MCPHandler)

	text, err := application.Adapter.ReadResource(t.Context(), mcp.StatusResourceURI)
	require.NoError(t, err)
	assert.Equal(t, "✅ API Connected\nTotal programs accessible: 9", text)
	assert.Equal(t, "Bearer from-config", gotAuth)
}

func TestNew_MissingTokenDoesNotFailStartup(t *testing.T) {
	t.Setenv(intigriti.TokenEnvVar, "")

	application, err := New(config.NewDefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { application.Close() })

	result := application.Adapter.CallTool(t.Context(), mcp.ToolGetPrograms, nil)
	assert.True(t, result.IsError)
}

func TestClose_Repeatable(t *testing.T) {
	application, err := New(config.NewDefaultConfig(), nil)
	require.NoError(t, err)

	assert.NoError(t, application.Close())
	assert.NoError(t, application.Close())
}
