package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/intigriti-mcp/internal/app"
	"github.com/bobmcallan/intigriti-mcp/internal/common"
	"github.com/bobmcallan/intigriti-mcp/internal/config"
	"github.com/bobmcallan/intigriti-mcp/internal/server"
)

const shutdownTimeout = 10 * time.Second

type options struct {
	configFiles []string
	stdio       bool
	port        int
	host        string
	showVersion bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("intigriti-mcp", pflag.ContinueOnError)
	fs.StringArrayVarP(&opts.configFiles, "config", "c", nil, "Configuration file path (can be specified multiple times)")
	fs.BoolVar(&opts.stdio, "stdio", false, "Serve MCP over stdin/stdout instead of HTTP")
	fs.IntVarP(&opts.port, "port", "p", 0, "HTTP port (overrides config)")
	fs.StringVar(&opts.host, "host", "", "HTTP host (overrides config)")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	common.LoadVersionFromFile()

	if opts.showVersion {
		fmt.Printf("intigriti-mcp version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified.
	if len(opts.configFiles) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				opts.configFiles = append(opts.configFiles, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(opts.configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// CLI flags take priority over files and env.
	config.ApplyFlagOverrides(cfg, opts.port, opts.host)

	logger := common.NewLoggerFromConfig(cfg.Logging)

	logger.Info().
		Str("version", common.GetFullVersion()).
		Bool("stdio", opts.stdio).
		Str("config_files", fmt.Sprintf("%v", opts.configFiles)).
		Msg("configuration loaded")

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to initialize application")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.stdio {
		err = runStdio(ctx, application, os.Stdin, os.Stdout)
	} else {
		err = runHTTP(ctx, application)
	}

	// Release the API client before exiting.
	if cerr := application.Close(); cerr != nil {
		logger.Error().Str("error", cerr.Error()).Msg("application shutdown failed")
	}

	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}

// runStdio serves MCP on in/out until the client disconnects or ctx is
// cancelled.
func runStdio(ctx context.Context, application *app.App, in io.Reader, out io.Writer) error {
	application.Logger.Info().Str("name", application.Config.Server.Name).Msg("serving MCP over stdio")

	stdio := mcpserver.NewStdioServer(application.MCPServer)
	err := stdio.Listen(ctx, in, out)
	if ctx.Err() != nil {
		application.Logger.Info().Msg("shutdown signal received")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runHTTP serves the streamable HTTP transport until ctx is cancelled, then
// shuts it down gracefully.
func runHTTP(ctx context.Context, application *app.App) error {
	srv := server.New(application)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		application.Logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried before the working directory.
func configSearchPaths() []string {
	candidates := []string{
		"intigriti-mcp.toml",
		"config/intigriti-mcp.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "intigriti-mcp.toml"),
		filepath.Join(binDir, "config", "intigriti-mcp.toml"),
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
