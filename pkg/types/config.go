// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how an extraction result is printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config holds the CLI settings resolved from flags, environment and the
// optional config file.
type Config struct {
	// Output selects the report format: text, json, or yaml (default text).
	Output OutputFormat `json:"output" yaml:"output" mapstructure:"output"`

	// LogLevel is a zerolog level name (default "info").
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
