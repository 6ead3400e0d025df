// Package config loads the hillclimb command configuration from YAML.
//
// Example file:
//
//	input: testdata/sample.txt
//	mode: nearest
//	maxClimb: 1
//	logLevel: info
//	render: ascii
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidMode indicates an unknown query mode.
	ErrInvalidMode = errors.New("config: mode must be one of direct, nearest")
	// ErrInvalidRender indicates an unknown render format.
	ErrInvalidRender = errors.New("config: render must be one of none, ascii, dot")
	// ErrInvalidMaxClimb indicates a negative climb limit.
	ErrInvalidMaxClimb = errors.New("config: maxClimb must be non-negative")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Query modes.
const (
	ModeDirect  = "direct"
	ModeNearest = "nearest"
)

// Render formats.
const (
	RenderNone  = "none"
	RenderASCII = "ascii"
	RenderDOT   = "dot"
)

// LogLevels lists the accepted logLevel values, lowest first.
var LogLevels = []string{"trace", "debug", "info", "warning", "error", "critical"}

// Config is the full command configuration.
type Config struct {
	// Input is the path of the height map file; "-" reads stdin.
	Input string `json:"input,omitempty"`
	// Mode is the query to run: direct or nearest.
	Mode string `json:"mode,omitempty"`
	// MaxClimb is the largest legal height gain of one step.
	MaxClimb int `json:"maxClimb"`
	// LogLevel is one of LogLevels.
	LogLevel string `json:"logLevel,omitempty"`
	// Render selects an optional drawing of the route.
	Render string `json:"render,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:     ModeDirect,
		MaxClimb: elevation.DefaultMaxClimb,
		LogLevel: "warning",
		Render:   RenderNone,
	}
}

// Load reads path and overlays its values onto Default. The result is
// validated before it is returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML (or JSON) data onto Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeDirect, ModeNearest:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	switch c.Render {
	case RenderNone, RenderASCII, RenderDOT:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRender, c.Render)
	}
	if c.MaxClimb < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxClimb, c.MaxClimb)
	}
	for _, l := range LogLevels {
		if c.LogLevel == l {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
