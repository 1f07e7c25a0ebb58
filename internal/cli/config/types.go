// Package config provides configuration management for the datapeek CLI.
//
// Configuration is merged from four layers with the usual precedence:
// command-line flags > DATAPEEK_* environment variables > a datapeek.yaml
// file > built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Dataset is the default dataset path used when the report command is
	// invoked without an argument.
	Dataset string `koanf:"dataset" yaml:"dataset"`
	// Table names the table to load from SQLite sources.
	Table string `koanf:"table" yaml:"table"`
	// Justify aligns numeric columns in rendered tables: left, center, right.
	Justify string `koanf:"justify" yaml:"justify"`
	// MaxUnique caps how many distinct values a frequency listing may show.
	MaxUnique int `koanf:"max_unique" yaml:"max_unique"`
	// StrongThreshold is the |r| cutoff for reporting a correlation pair.
	StrongThreshold float64 `koanf:"strong_threshold" yaml:"strong_threshold"`
	// PauseOnExit reprints the interactive exit prompt after the report.
	PauseOnExit bool `koanf:"pause_on_exit" yaml:"pause_on_exit"`
	NoColor     bool `koanf:"no_color" yaml:"no_color"`
	Verbose     bool `koanf:"verbose" yaml:"verbose"`
}

// Default configuration values.
const (
	DefaultJustify         = "right"
	DefaultMaxUnique       = 10
	DefaultStrongThreshold = 0.5
)
