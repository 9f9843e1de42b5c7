package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "patched", cfg.Prompt.Mode)
	assert.Equal(t, "bash", cfg.Prompt.Shell)
	assert.Equal(t, 4, cfg.Prompt.MaxDepth)
	assert.True(t, cfg.VCS.Git && cfg.VCS.SVN && cfg.VCS.Hg)
}

func TestLoadTOML(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
[general]
log_level = "debug"

[prompt]
mode = "compatible"
max_depth = 3
width = 120
show_time = false

[vcs]
svn = false
timeout = "2s"

[theme]
name = "solarized"
`), FormatTOML, env.Map{})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "compatible", cfg.Prompt.Mode)
	assert.Equal(t, 3, cfg.Prompt.MaxDepth)
	assert.Equal(t, Width("120"), cfg.Prompt.Width)
	assert.False(t, cfg.Prompt.ShowTime)
	assert.True(t, cfg.Prompt.ShowVirtualEnv)
	assert.False(t, cfg.VCS.SVN)
	assert.True(t, cfg.VCS.Git)
	assert.Equal(t, 2*time.Second, cfg.VCS.Timeout.Duration)
	assert.Equal(t, "solarized", cfg.Theme.Name)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
prompt:
  shell: zsh
  width: auto
vcs:
  hg: false
  timeout: 500ms
`), FormatYAML, env.Map{})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "zsh", cfg.Prompt.Shell)
	assert.Equal(t, Width(WidthAuto), cfg.Prompt.Width)
	assert.False(t, cfg.VCS.Hg)
	assert.Equal(t, 500*time.Millisecond, cfg.VCS.Timeout.Duration)
	assert.Equal(t, "patched", cfg.Prompt.Mode)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""), FormatYAML, env.Map{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
[theme]
name = "solarized"
`), FormatTOML, env.Map{
		"POWERLINE_PROMPT_THEME": "mono",
		"POWERLINE_PROMPT_MODE":  "compatible",
		"POWERLINE_PROMPT_SHELL": "zsh",
	})
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme.Name)
	assert.Equal(t, "compatible", cfg.Prompt.Mode)
	assert.Equal(t, "zsh", cfg.Prompt.Shell)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[vcs]\ntimeout = \"-1s\"\n"), FormatTOML, env.Map{})
	assert.Error(t, err)

	_, err = LoadFromReader(strings.NewReader("[prompt]\nwidth = true\n"), FormatTOML, env.Map{})
	assert.Error(t, err)

	_, err = LoadFromReader(strings.NewReader("prompt: [\n"), FormatYAML, env.Map{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Prompt.Mode = "fancy" }},
		{"shell", func(c *Config) { c.Prompt.Shell = "fish" }},
		{"width", func(c *Config) { c.Prompt.Width = "wide" }},
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAcceptsAuto(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prompt.Mode = ModeAuto
	cfg.Prompt.Shell = "auto"
	cfg.Prompt.Width = WidthAuto
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	cfg := FromEnv(env.Map{"POWERLINE_PROMPT_THEME": "mono", "POWERLINE_PROMPT_LOG_LEVEL": "debug"})
	assert.Equal(t, "mono", cfg.Theme.Name)
	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "patched", cfg.Prompt.Mode)
}

func TestParseWidth(t *testing.T) {
	n, auto, err := ParseWidth("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.False(t, auto)

	_, auto, err = ParseWidth("auto")
	require.NoError(t, err)
	assert.True(t, auto)

	n, _, err = ParseWidth(" 132 ")
	require.NoError(t, err)
	assert.Equal(t, 132, n)

	n, _, err = ParseWidth("-4")
	require.NoError(t, err)
	assert.Equal(t, -4, n)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadSearchPaths(t *testing.T) {
	home := t.TempDir()
	xdg := filepath.Join(home, "xdg")
	e := env.Map{"HOME": home, "XDG_CONFIG_HOME": xdg}

	cfg, path, err := Load(e)
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, DefaultConfig(), cfg)

	// The fallback ~/.config location is used when XDG has nothing.
	fallback := filepath.Join(home, ".config", appName, "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(fallback), 0o755))
	require.NoError(t, os.WriteFile(fallback, []byte("theme:\n  name: mono\n"), 0o644))

	cfg, path, err = Load(e)
	require.NoError(t, err)
	assert.Equal(t, fallback, path)
	assert.Equal(t, "mono", cfg.Theme.Name)

	// XDG wins over the fallback.
	primary := filepath.Join(xdg, appName, "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(primary), 0o755))
	require.NoError(t, os.WriteFile(primary, []byte("[theme]\nname = \"solarized\"\n"), 0o644))

	cfg, path, err = Load(e)
	require.NoError(t, err)
	assert.Equal(t, primary, path)
	assert.Equal(t, "solarized", cfg.Theme.Name)
}

func TestLoadFromFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"), env.Map{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("/x/config.YAML"))
	assert.Equal(t, FormatYAML, FormatForPath("c.yml"))
	assert.Equal(t, FormatTOML, FormatForPath("c.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("config"))
}
