// Package config provides TOML and YAML configuration for powerline-prompt.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Every field has a default, so an
// empty or missing file is valid.
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Prompt  PromptConfig  `toml:"prompt" yaml:"prompt"`
	VCS     VCSConfig     `toml:"vcs" yaml:"vcs"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// PromptConfig controls what the prompt shows and how. TimeFormat is a Go
// time layout.
type PromptConfig struct {
	Mode           string `toml:"mode" yaml:"mode"`
	Shell          string `toml:"shell" yaml:"shell"`
	MaxDepth       int    `toml:"max_depth" yaml:"max_depth"`
	TimeFormat     string `toml:"time_format" yaml:"time_format"`
	ShowTime       bool   `toml:"show_time" yaml:"show_time"`
	ShowVirtualEnv bool   `toml:"show_virtualenv" yaml:"show_virtualenv"`
	Width          Width  `toml:"width" yaml:"width"`
}

// VCSConfig selects which version-control systems are probed.
type VCSConfig struct {
	Git     bool     `toml:"git" yaml:"git"`
	SVN     bool     `toml:"svn" yaml:"svn"`
	Hg      bool     `toml:"hg" yaml:"hg"`
	Timeout Duration `toml:"timeout" yaml:"timeout"` // per command, 0 = none
}

// ThemeConfig picks a built-in theme or a TOML theme file.
type ThemeConfig struct {
	Name string `toml:"name" yaml:"name"`
	File string `toml:"file" yaml:"file"`
}

// ModeAuto picks the glyph set from the detected terminal.
const ModeAuto = "auto"

// Duration is a time.Duration written as "500ms" or "2s" in config files.
// Empty means zero.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler, which the TOML
// decoder uses.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := parseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: duration must be a string like %q", "500ms")
	}
	return d.UnmarshalText([]byte(n.Value))
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("config: duration %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("config: duration %q is negative", s)
	}
	return v, nil
}

// WidthAuto asks for the terminal width to be detected.
const WidthAuto = "auto"

// Width is a column count or "auto". Config files may write it as either
// an integer or a string.
type Width string

// UnmarshalTOML implements toml.Unmarshaler.
func (w *Width) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		*w = Width(strconv.FormatInt(x, 10))
	case string:
		*w = Width(x)
	default:
		return fmt.Errorf("config: width must be a number or %q, got %T", WidthAuto, v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Width) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: width must be a number or %q", WidthAuto)
	}
	*w = Width(n.Value)
	return nil
}

// Validate checks the fields that have a fixed set of values.
func (c *Config) Validate() error {
	switch c.Prompt.Mode {
	case "compatible", "patched", ModeAuto:
	default:
		return fmt.Errorf("config: prompt.mode %q must be compatible, patched or auto", c.Prompt.Mode)
	}
	switch strings.ToLower(c.Prompt.Shell) {
	case "bash", "zsh", "bare", "auto":
	default:
		return fmt.Errorf("config: prompt.shell %q must be bash, zsh, bare or auto", c.Prompt.Shell)
	}
	if _, _, err := ParseWidth(string(c.Prompt.Width)); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.General.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseWidth interprets a width setting. auto is true for "auto"; an empty
// string means 0, i.e. no padding.
func ParseWidth(s string) (cols int, auto bool, err error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, false, nil
	case WidthAuto:
		return 0, true, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("config: width %q must be a number or %q", s, WidthAuto)
	}
	return n, false, nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", s, err)
	}
	return lvl, nil
}
