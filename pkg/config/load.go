package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

// Format is a config file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// appName is the directory name under the XDG config home.
const appName = "powerline-prompt"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/powerline-prompt/config.{toml,yaml,yml}
//  2. ~/.config/powerline-prompt/config.{toml,yaml,yml}
//
// If no file exists, returns DefaultConfig() with env overrides applied.
// The path of the file used is returned, or "" when none was found.
func Load(e env.Lookup) (*Config, string, error) {
	for _, p := range configSearchPaths(e) {
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFromFile(p, e)
			return cfg, p, err
		}
	}
	return FromEnv(e), "", nil
}

// FromEnv returns DefaultConfig with the POWERLINE_PROMPT_* overrides
// applied.
func FromEnv(e env.Lookup) *Config {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg, e)
	return cfg
}

// LoadFromFile reads configuration from a specific file path. The syntax
// is chosen by extension; anything other than .yaml/.yml is TOML.
func LoadFromFile(path string, e env.Lookup) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FromEnv(e), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := LoadFromReader(bytes.NewReader(data), FormatForPath(path), e)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration in the given format from r.
func LoadFromReader(r io.Reader, format Format, e env.Lookup) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg, e)
	return cfg, nil
}

// FormatForPath picks the syntax from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "warn",
		},
		Prompt: PromptConfig{
			Mode:           "patched",
			Shell:          "bash",
			MaxDepth:       4,
			TimeFormat:     "Mon 02 15:04:05",
			ShowTime:       true,
			ShowVirtualEnv: true,
			Width:          "0",
		},
		VCS: VCSConfig{
			Git: true,
			SVN: true,
			Hg:  true,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config, e env.Lookup) {
	if v := env.Get(e, "POWERLINE_PROMPT_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := env.Get(e, "POWERLINE_PROMPT_MODE"); v != "" {
		cfg.Prompt.Mode = v
	}
	if v := env.Get(e, "POWERLINE_PROMPT_SHELL"); v != "" {
		cfg.Prompt.Shell = v
	}
	if v := env.Get(e, "POWERLINE_PROMPT_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths(e env.Lookup) []string {
	home := env.Get(e, "HOME")
	var dirs []string

	xdg := xdgConfigHome(e, home)
	dirs = append(dirs, filepath.Join(xdg, appName))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		dirs = append(dirs, filepath.Join(defaultXDG, appName))
	}

	var paths []string
	for _, d := range dirs {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			paths = append(paths, filepath.Join(d, name))
		}
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(e env.Lookup, home string) string {
	if v := env.Get(e, "XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
