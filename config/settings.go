package config

import (
	"fmt"
	"os"

	"github.com/kbukum/execkit/echo"
	"github.com/kbukum/execkit/logger"
	"github.com/kbukum/execkit/util"
	"github.com/kbukum/execkit/validation"
	"github.com/kbukum/execkit/version"
)

// Settings contains the configuration fields an execkit-based tool needs.
// Tools extend this by embedding it in their own config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    Workspace       string `yaml:"workspace" mapstructure:"workspace"`
//	}
type Settings struct {
	Name    string        `yaml:"name" mapstructure:"name"`
	Version string        `yaml:"version" mapstructure:"version"`
	Debug   bool          `yaml:"debug" mapstructure:"debug"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Echo    EchoSettings  `yaml:"echo" mapstructure:"echo"`
}

// EchoSettings controls command-line echoing of executed pipelines.
type EchoSettings struct {
	Disabled bool   `yaml:"disabled" mapstructure:"disabled"`
	Color    string `yaml:"color" mapstructure:"color" validate:"omitempty,oneof=auto always never"`
}

// Style resolves the echo settings into a concrete display style.
// "auto" (or empty) defers to terminal detection.
func (e *EchoSettings) Style() echo.Style {
	st := echo.CommandStyle()
	switch e.Color {
	case "always":
		st.Color = true
	case "never":
		st.Color = false
	}
	return st
}

// GetSettings returns the base Settings.
// When embedded in a larger config struct, this method is promoted
// so the embedding struct automatically satisfies loader expectations.
func (s *Settings) GetSettings() *Settings {
	return s
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call s.Settings.ApplyDefaults() first.
func (s *Settings) ApplyDefaults() {
	s.Name = util.Coalesce(s.Name, "execkit")
	s.Version = util.Coalesce(s.Version, version.Version)
	s.Echo.Color = util.Coalesce(s.Echo.Color, "auto")
	if s.Debug {
		s.Logging.Level = "debug"
	}
	// Propagate tool name into logging so Init() uses the right tag.
	if s.Logging.ToolName == "" {
		s.Logging.ToolName = s.Name
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call s.Settings.Validate() first.
func (s *Settings) Validate() error {
	v := validation.New()
	v.Required("name", s.Name)
	v.OneOf("echo.color", s.Echo.Color, []string{"auto", "always", "never"})
	if err := s.Logging.Validate(); err != nil {
		v.AddError("logging", err.Error())
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Apply installs the settings process-wide: it initializes the global
// logger and, when echoing is disabled, sets NO_ECHO so process and
// fsutil operations stay quiet.
func (s *Settings) Apply() error {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	logger.Init(s.Logging)
	if s.Echo.Disabled {
		if err := os.Setenv(echo.EnvNoEcho, "1"); err != nil {
			return fmt.Errorf("failed to disable echo: %w", err)
		}
	}
	return nil
}
