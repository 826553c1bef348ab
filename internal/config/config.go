// Package config provides configuration management for sparkcalc.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"sparkcalc/sparkos/calc"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration.
type Config struct {
	Calculator CalculatorConfig `toml:"calculator"`
	Display    DisplayConfig    `toml:"display"`
	Logging    LoggingConfig    `toml:"logging"`
}

// CalculatorConfig contains engine settings.
type CalculatorConfig struct {
	HistoryLimit     int  `toml:"history_limit"`
	// ErrorResetMS is the error display time; 0 selects the engine default.
	ErrorResetMS     int  `toml:"error_reset_ms"`
	KeepResetOnInput bool `toml:"keep_reset_on_input"`
}

// DisplayConfig contains framebuffer and window settings.
type DisplayConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Scale  int `toml:"scale"`
	TPS    int `toml:"tps"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // "text" or "json"
	TimeFormat string `toml:"time_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			HistoryLimit: calc.DefaultHistoryLimit,
			ErrorResetMS: int(calc.DefaultErrorResetDelay / time.Millisecond),
		},
		Display: DisplayConfig{
			Width:  320,
			Height: 320,
			Scale:  2,
			TPS:    60,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			TimeFormat: "15:04:05.000",
		},
	}
}

// Load reads configuration from a TOML file over the defaults. A missing file yields the
// defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Calculator.HistoryLimit < 1:
		return fmt.Errorf("%w: calculator.history_limit must be at least 1, got %d", ErrInvalid, c.Calculator.HistoryLimit)
	case c.Calculator.ErrorResetMS < 0:
		return fmt.Errorf("%w: calculator.error_reset_ms must not be negative, got %d", ErrInvalid, c.Calculator.ErrorResetMS)
	case c.Display.Width < 64 || c.Display.Height < 64:
		return fmt.Errorf("%w: display must be at least 64x64, got %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	case c.Display.Scale < 1:
		return fmt.Errorf("%w: display.scale must be at least 1, got %d", ErrInvalid, c.Display.Scale)
	case c.Display.TPS < 1:
		return fmt.Errorf("%w: display.tps must be at least 1, got %d", ErrInvalid, c.Display.TPS)
	}
	if !validLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q is not one of %s", ErrInvalid, c.Logging.Level, strings.Join(logLevels, ", "))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

func validLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// EngineOptions converts the calculator section to engine options.
func (c *Config) EngineOptions() calc.Options {
	opts := calc.DefaultOptions()
	opts.HistoryLimit = c.Calculator.HistoryLimit
	opts.ErrorResetDelay = time.Duration(c.Calculator.ErrorResetMS) * time.Millisecond
	opts.KeepResetOnInput = c.Calculator.KeepResetOnInput
	return opts
}
