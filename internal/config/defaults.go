package config

import (
	"github.com/bobmcallan/intigriti-mcp/internal/common"
	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "intigriti-researcher",
			Host: "localhost",
			Port: 4250,
		},
		Intigriti: IntigritiConfig{
			BaseURL: intigriti.DefaultBaseURL,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/intigriti-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
