package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/execkit/echo"
	"github.com/kbukum/execkit/logger"
)

func TestSettingsApplyDefaults(t *testing.T) {
	t.Run("empty settings get tool defaults", func(t *testing.T) {
		s := Settings{}
		s.ApplyDefaults()
		if s.Name != "execkit" {
			t.Errorf("expected name 'execkit', got %q", s.Name)
		}
		if s.Version == "" {
			t.Error("expected version default to be set")
		}
		if s.Echo.Color != "auto" {
			t.Errorf("expected echo color 'auto', got %q", s.Echo.Color)
		}
		if s.Logging.Level != "info" {
			t.Errorf("expected logging level 'info', got %q", s.Logging.Level)
		}
	})

	t.Run("debug raises log level", func(t *testing.T) {
		s := Settings{Debug: true}
		s.ApplyDefaults()
		if s.Logging.Level != "debug" {
			t.Errorf("expected logging level 'debug', got %q", s.Logging.Level)
		}
	})

	t.Run("tool name propagates into logging", func(t *testing.T) {
		s := Settings{Name: "mytool"}
		s.ApplyDefaults()
		if s.Logging.ToolName != "mytool" {
			t.Errorf("expected logging tool name 'mytool', got %q", s.Logging.ToolName)
		}
	})
}

func TestSettingsValidate(t *testing.T) {
	logOK := logger.Config{Level: "info", Format: "console"}
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
		errMsg  string
	}{
		{"valid", Settings{Name: "tool", Logging: logOK, Echo: EchoSettings{Color: "auto"}}, false, ""},
		{"valid always", Settings{Name: "tool", Logging: logOK, Echo: EchoSettings{Color: "always"}}, false, ""},
		{"missing name", Settings{Logging: logOK, Echo: EchoSettings{Color: "auto"}}, true, "name"},
		{"invalid color", Settings{Name: "tool", Logging: logOK, Echo: EchoSettings{Color: "rainbow"}}, true, "echo.color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSettingsValidateBadLogging(t *testing.T) {
	s := Settings{Name: "tool", Echo: EchoSettings{Color: "auto"}}
	s.Logging.Level = "shouty"
	s.Logging.Format = "console"
	err := s.Validate()
	if err == nil {
		t.Fatal("expected error for invalid logging level")
	}
	if !strings.Contains(err.Error(), "logging") {
		t.Errorf("expected error to mention logging, got %q", err.Error())
	}
}

func TestEchoSettingsStyle(t *testing.T) {
	always := EchoSettings{Color: "always"}
	if !always.Style().Color {
		t.Error("expected color forced on for 'always'")
	}

	never := EchoSettings{Color: "never"}
	if never.Style().Color {
		t.Error("expected color forced off for 'never'")
	}
}

func TestSettingsApply(t *testing.T) {
	t.Setenv(echo.EnvNoEcho, "")
	os.Unsetenv(echo.EnvNoEcho)

	s := Settings{Name: "apply-test", Echo: EchoSettings{Disabled: true}}
	if err := s.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if os.Getenv(echo.EnvNoEcho) == "" {
		t.Error("expected NO_ECHO to be set when echo is disabled")
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: test-tool
version: "1.0.0"
debug: true
echo:
  color: never
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg Settings
	err := LoadConfig("test-tool", &cfg, WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "test-tool" {
		t.Errorf("expected name 'test-tool', got %q", cfg.Name)
	}
	if cfg.Echo.Color != "never" {
		t.Errorf("expected echo color 'never', got %q", cfg.Echo.Color)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected logging level 'warn', got %q", cfg.Logging.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg Settings
	// With no config file found, LoadConfig should still succeed (just empty config)
	err := LoadConfig("nonexistent-tool", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./.mytool.yml": true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("mytool", LoaderConfig{})
	if files.ConfigFile != "./.mytool.yml" {
		t.Errorf("expected config file at ./.mytool.yml, got %q", files.ConfigFile)
	}
}

func TestResolverPrefersProjectLocal(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config.yml":  true,
		"./.mytool.yml": true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("mytool", LoaderConfig{})
	if files.ConfigFile != "./.mytool.yml" {
		t.Errorf("expected dotfile to win, got %q", files.ConfigFile)
	}
}

func TestResolverFindsEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		".env.mytool": true,
		".env":        true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("mytool", LoaderConfig{})
	if files.EnvFile != ".env.mytool" {
		t.Errorf("expected tool-specific env file to win, got %q", files.EnvFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool   { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
func (m *mockFS) Getwd() (string, error)    { return "/mock", nil }

func TestWithFileSystemOption(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
}

func TestWithConfigFileOption(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
}

func TestWithEnvFileOption(t *testing.T) {
	var lc LoaderConfig
	WithEnvFile("/path/to/.env")(&lc)
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"DEBUG", []string{"debug"}},
		{"LOGGING_LEVEL", []string{"logging_level", "logging.level"}},
		{"ECHO_COLOR", []string{"echo_color", "echo.color"}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := generateEnvKeyVariants(tc.key)
			for _, want := range tc.want {
				found := false
				for _, g := range got {
					if g == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected variant %q in %v", want, got)
				}
			}
		})
	}
}
