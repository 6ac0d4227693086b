// Package config provides configuration types and defaults for beadmatch.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
)

// Config holds all configuration options for beadmatch.
type Config struct {
	Catalog   string       `mapstructure:"catalog" yaml:"catalog"`
	Debug     bool         `mapstructure:"debug" yaml:"debug"`
	LogFile   string       `mapstructure:"log_file" yaml:"log_file"`
	LogFormat string       `mapstructure:"log_format" yaml:"log_format"`
	Search    SearchConfig `mapstructure:"search" yaml:"search"`
	Sprite    SpriteConfig `mapstructure:"sprite" yaml:"sprite"`
	UI        UIConfig     `mapstructure:"ui" yaml:"ui"`
}

// SearchConfig controls nearest-match search.
type SearchConfig struct {
	// TopN is how many candidates a brand conversion lists.
	TopN int `mapstructure:"top_n" yaml:"top_n"`
	// TieBreak is "last" (the last equally-close bead wins) or "first".
	TieBreak string `mapstructure:"tie_break" yaml:"tie_break"`
	// Cache memoizes nearest-match results for the session.
	Cache bool `mapstructure:"cache" yaml:"cache"`
}

// SpriteConfig controls sprite cost estimation.
type SpriteConfig struct {
	MaxColors      int `mapstructure:"max_colors" yaml:"max_colors"`
	AlphaThreshold int `mapstructure:"alpha_threshold" yaml:"alpha_threshold"`
}

// UIConfig holds output options.
type UIConfig struct {
	Swatches     bool `mapstructure:"swatches" yaml:"swatches"`
	MaxNameWidth int  `mapstructure:"max_name_width" yaml:"max_name_width"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		LogFormat: "text",
		Search: SearchConfig{
			TopN:     3,
			TieBreak: string(domain.TieBreakLast),
			Cache:    true,
		},
		Sprite: SpriteConfig{
			MaxColors:      500,
			AlphaThreshold: 255,
		},
		UI: UIConfig{
			Swatches:     true,
			MaxNameWidth: 28,
		},
	}
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if c.Search.TopN < 1 {
		return fmt.Errorf("search.top_n: must be at least 1, got %d", c.Search.TopN)
	}
	if _, err := domain.ParseTieBreak(c.Search.TieBreak); err != nil {
		return fmt.Errorf("search.tie_break: %w", err)
	}
	if c.Sprite.MaxColors < 1 {
		return fmt.Errorf("sprite.max_colors: must be at least 1, got %d", c.Sprite.MaxColors)
	}
	if c.Sprite.AlphaThreshold < 0 || c.Sprite.AlphaThreshold > 255 {
		return fmt.Errorf("sprite.alpha_threshold: must be within 0-255, got %d", c.Sprite.AlphaThreshold)
	}
	if c.UI.MaxNameWidth < 0 {
		return fmt.Errorf("ui.max_name_width: must not be negative, got %d", c.UI.MaxNameWidth)
	}
	switch c.LogFormat {
	case "", "text", "logfmt", "json":
	default:
		return fmt.Errorf("log_format: unknown format %q", c.LogFormat)
	}
	return nil
}

// LogLevel returns "debug" when debugging is enabled and "error" otherwise.
func (c Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return "error"
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# beadmatch configuration

# Path to the bead catalog CSV (default: data/beads.csv next to this file,
# then in the current directory)
# catalog: /path/to/beads.csv

# Verbose logging (also enabled by --debug or BEADMATCH_DEBUG=1)
debug: false
# log_file: /tmp/beadmatch.log
log_format: text  # text, logfmt or json

search:
  top_n: 3          # candidates listed by a brand conversion
  tie_break: last   # last: the last equally-close bead wins; first: the first
  cache: true       # remember nearest matches for the session

sprite:
  max_colors: 500       # images with more distinct colors are rejected
  alpha_threshold: 255  # pixels less opaque than this are not counted

ui:
  swatches: true      # show a color swatch next to each bead
  max_name_width: 28  # truncate long bead names (0 = fit the terminal)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
