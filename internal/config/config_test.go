package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4250 {
		t.Errorf("expected default port 4250, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	if cfg.Intigriti.BaseURL != intigriti.DefaultBaseURL {
		t.Errorf("expected default base URL %s, got %s", intigriti.DefaultBaseURL, cfg.Intigriti.BaseURL)
	}
	if cfg.Intigriti.APIToken != "" {
		t.Error("expected no default API token")
	}
	if cfg.Tools.ValidateArguments {
		t.Error("expected argument validation off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 4250 {
		t.Errorf("expected default port 4250, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
name = "intigriti-test"
port = 9090
host = "0.0.0.0"

[intigriti]
base_url = "https://staging.example.com/researcher/"
api_token = "file-token"

[tools]
validate_arguments = true

[logging]
level = "debug"
outputs = ["console", "file"]
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Name != "intigriti-test" {
		t.Errorf("expected name intigriti-test, got %s", cfg.Server.Name)
	}
	if cfg.Address() != "0.0.0.0:9090" {
		t.Errorf("expected address 0.0.0.0:9090, got %s", cfg.Address())
	}
	if cfg.Intigriti.BaseURL != "https://staging.example.com/researcher/" {
		t.Errorf("unexpected base URL %s", cfg.Intigriti.BaseURL)
	}
	if cfg.Intigriti.APIToken != "file-token" {
		t.Errorf("expected api token from file, got %q", cfg.Intigriti.APIToken)
	}
	if !cfg.Tools.ValidateArguments {
		t.Error("expected validate_arguments=true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if len(cfg.Logging.Outputs) != 2 {
		t.Errorf("expected 2 outputs, got %v", cfg.Logging.Outputs)
	}
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "base.toml")
	second := filepath.Join(dir, "override.toml")
	os.WriteFile(first, []byte("[server]\nport = 1111\nhost = \"127.0.0.1\"\n"), 0644)
	os.WriteFile(second, []byte("[server]\nport = 2222\n"), 0644)

	cfg, err := LoadFromFiles(first, second)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Server.Port != 2222 {
		t.Errorf("expected port 2222, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host from first file, got %s", cfg.Server.Host)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[server\nport = "), 0644)

	if _, err := LoadFromFiles(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	t.Setenv("INTIGRITI_BASE_URL", "http://localhost:9999/")
	t.Setenv("INTIGRITI_MCP_PORT", "7000")
	t.Setenv("INTIGRITI_MCP_HOST", "0.0.0.0")
	t.Setenv("INTIGRITI_LOG_LEVEL", "warn")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Intigriti.BaseURL != "http://localhost:9999/" {
		t.Errorf("expected env base URL, got %s", cfg.Intigriti.BaseURL)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("INTIGRITI_MCP_PORT", "not-a-number")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Server.Port != 4250 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 8080, "example.internal")
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "example.internal" {
		t.Errorf("expected host example.internal, got %s", cfg.Server.Host)
	}

	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 8080 || cfg.Server.Host != "example.internal" {
		t.Error("zero-value flags must not override config")
	}
}
