package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-" yaml:"-"`
	Target   TargetConfig   `toml:"target" yaml:"target"`
	Commands CommandsConfig `toml:"commands" yaml:"commands"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// TargetConfig holds settings from the [target] section.
type TargetConfig struct {
	Name string `toml:"name" yaml:"name"` // Application to restart
}

// CommandsConfig holds command template overrides from the [commands] section.
// Empty fields fall back to the platform defaults.
type CommandsConfig struct {
	Terminate string `toml:"terminate,omitempty" yaml:"terminate,omitempty"` // e.g. "killall {name}"
	Launch    string `toml:"launch,omitempty" yaml:"launch,omitempty"`       // e.g. "open -a {name}"
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			Name: DefaultTargetName,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	TargetName string
	Terminate  string
	Launch     string
	LogLevel   string
}

// RenderConfigTemplate renders the configuration file template for cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		TargetName: cfg.Target.Name,
		Terminate:  cfg.Commands.Terminate,
		Launch:     cfg.Commands.Launch,
		LogLevel:   cfg.Log.Level,
	}
	if data.TargetName == "" {
		data.TargetName = DefaultTargetName
	}
	if data.LogLevel == "" {
		data.LogLevel = DefaultLogLevel
	}

	tmpl, err := template.New("config").
		Delims("<<", ">>").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
