package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/vcs"
)

// noVCS reports every command as missing.
type noVCS struct{}

func (noVCS) Run(context.Context, string, string, ...string) (vcs.Result, error) {
	return vcs.Result{}, errors.New("not installed")
}

type harness struct {
	cwd    string
	env    env.Map
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cwd := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.Mkdir(cwd, 0o755))
	t.Chdir(cwd)
	return &harness{
		cwd: cwd,
		env: env.Map{
			"HOME":            t.TempDir(),
			"XDG_CONFIG_HOME": t.TempDir(),
			"NO_COLOR":        "1",
		},
	}
}

func (h *harness) run(args ...string) error {
	app := newApp(deps{
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		Env:    h.env,
		Runner: noVCS{},
	})
	return app.Run(append([]string{"powerline-prompt"}, args...))
}

func TestRunPromptPlain(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--mode", "compatible", "--shell", "bare", "0"))

	out := h.stdout.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " project ")
	assert.Contains(t, lines[0], "▶")
	assert.Equal(t, " $ ▶", lines[1])
	assert.Empty(t, h.stderr.String())
}

func TestRunPromptCwdOnlyAndExtra(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--mode", "compatible", "--shell", "bare", "--cwd-only", "--extra", "dev", "--chroot", "1"))

	line := strings.SplitN(h.stdout.String(), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(line, " project "), line)
	assert.Contains(t, line, " dev ")
	assert.Contains(t, line, " CHROOT ")
}

func TestRunPromptWidth(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--mode", "compatible", "--shell", "bare", "--width", "120"))

	line := strings.SplitN(h.stdout.String(), "\n", 2)[0]
	assert.Equal(t, 120, len([]rune(line)))
}

func TestRunPromptConfigPrecedence(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(h.env["XDG_CONFIG_HOME"], "powerline-prompt")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[prompt]
mode = "compatible"
shell = "bare"
show_time = false
`), 0o644))

	require.NoError(t, h.run())
	assert.Contains(t, h.stdout.String(), "▶")

	h.stdout.Reset()
	h.env["POWERLINE_PROMPT_MODE"] = "patched"
	require.NoError(t, h.run())
	assert.Contains(t, h.stdout.String(), "\ue0b0")

	h.stdout.Reset()
	require.NoError(t, h.run("--mode", "compatible"))
	assert.Contains(t, h.stdout.String(), "▶")
}

func TestRunPromptBrokenConfigFallsBack(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[prompt\n"), 0o644))

	require.NoError(t, h.run("--config", path, "--shell", "bare"))
	assert.Contains(t, h.stdout.String(), " project ")
	assert.Contains(t, h.stderr.String(), "config ignored")
}

func TestRunPromptModeAuto(t *testing.T) {
	h := newHarness(t)
	h.env["TERM"] = "xterm-kitty"
	require.NoError(t, h.run("--mode", "auto", "--shell", "bare"))
	assert.Contains(t, h.stdout.String(), "\ue0b0")

	h.stdout.Reset()
	h.env["TERM"] = "xterm-256color"
	require.NoError(t, h.run("--mode", "auto", "--shell", "bare"))
	assert.Contains(t, h.stdout.String(), "▶")
}

func TestRunPromptColors(t *testing.T) {
	h := newHarness(t)
	delete(h.env, "NO_COLOR")
	require.NoError(t, h.run("--shell", "zsh", "1"))
	assert.Contains(t, h.stdout.String(), "%{\x1b[38;5;")
	assert.NotContains(t, h.stderr.String(), "unbalanced")
}

func TestRunPromptBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"mode", []string{"--mode", "fancy"}},
		{"shell", []string{"--shell", "fish"}},
		{"width", []string{"--width", "wide"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			assert.Error(t, h.run(tt.args...))
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestThemesCommand(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("themes"))
	out := h.stdout.String()
	for _, name := range []string{"default", "mono", "solarized"} {
		assert.Contains(t, out, name)
	}
}

func TestNoColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, noColor(&buf, env.Map{"NO_COLOR": "1"}))
	assert.True(t, noColor(&buf, env.Map{"CLICOLOR": "0"}))
	assert.False(t, noColor(&buf, env.Map{"CLICOLOR": "0", "CLICOLOR_FORCE": "1"}))
	assert.False(t, noColor(&buf, env.Map{}))
}

func TestRunPromptUnknownThemeFallsBack(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--shell", "bare", "--theme", "no-such-theme"))
	assert.Contains(t, h.stdout.String(), " project ")
	assert.Contains(t, h.stderr.String(), "unknown theme")
}
