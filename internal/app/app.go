package app

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
	"github.com/bobmcallan/intigriti-mcp/internal/config"
	"github.com/bobmcallan/intigriti-mcp/internal/handlers"
	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
	"github.com/bobmcallan/intigriti-mcp/internal/mcp"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Adapter   *mcp.Adapter
	MCPServer *server.MCPServer

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	MCPHandler     *mcp.Handler
}

// New initializes the application with all dependencies. The API client is
// not built here, so a missing token surfaces on the first tool call.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	return NewWithFactory(cfg, logger, clientFactory(cfg, logger))
}

// NewWithFactory is New with a caller-supplied API client factory.
func NewWithFactory(cfg *config.Config, logger *common.Logger, factory mcp.ClientFactory) (*App, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	adapter, err := mcp.NewAdapter(factory, logger, mcp.Options{
		ValidateArguments: cfg.Tools.ValidateArguments,
	})
	if err != nil {
		return nil, err
	}
	a.Adapter = adapter
	a.MCPServer = mcp.NewServer(cfg.Server.Name, adapter)

	a.initHandlers()

	logger.Info().
		Str("name", cfg.Server.Name).
		Str("base_url", cfg.Intigriti.BaseURL).
		Bool("validate_arguments", cfg.Tools.ValidateArguments).
		Msg("application initialization complete")

	return a, nil
}

func clientFactory(cfg *config.Config, logger *common.Logger) mcp.ClientFactory {
	return func() (*intigriti.Client, error) {
		return intigriti.New(intigriti.Options{
			BaseURL: cfg.Intigriti.BaseURL,
			Token:   cfg.Intigriti.APIToken,
			Logger:  logger,
		})
	}
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Config.Server.Name, a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.MCPHandler = mcp.NewHandler(a.MCPServer, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close releases the API client. Safe to call more than once.
func (a *App) Close() error {
	a.Adapter.Close()
	return nil
}
