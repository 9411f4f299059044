package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/intigriti-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig         `toml:"server"`
	Intigriti IntigritiConfig      `toml:"intigriti"`
	Tools     ToolsConfig          `toml:"tools"`
	Logging   common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings. Host and Port only apply to the
// streamable HTTP transport.
type ServerConfig struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// IntigritiConfig contains settings for the outbound Researcher API client.
// An empty APIToken defers to the INTIGRITI_API_TOKEN environment variable
// when the client is constructed.
type IntigritiConfig struct {
	BaseURL  string `toml:"base_url"`
	APIToken string `toml:"api_token"`
}

// ToolsConfig controls tool dispatch.
type ToolsConfig struct {
	// ValidateArguments checks call arguments against each tool's input
	// schema before dispatch.
	ValidateArguments bool `toml:"validate_arguments"`
}

// Address returns the host:port the HTTP transport listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadFromFiles loads configuration with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies INTIGRITI_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if baseURL := os.Getenv("INTIGRITI_BASE_URL"); baseURL != "" {
		config.Intigriti.BaseURL = baseURL
	}
	if port := os.Getenv("INTIGRITI_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("INTIGRITI_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if level := os.Getenv("INTIGRITI_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
