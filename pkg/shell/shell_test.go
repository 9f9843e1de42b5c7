package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]ShellType{
		"bash": Bash,
		"ZSH":  Zsh,
		"bare": Bare,
		"auto": Auto,
		"":     Auto,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("fish")
	assert.Error(t, err)
}

func TestFormatter(t *testing.T) {
	assert.Equal(t, `\[\e[0m\]`, Bash.Formatter()("[0m"))
	assert.Equal(t, "%{\x1b[0m%}", Zsh.Formatter()("[0m"))
	assert.Equal(t, "\x1b[38;5;25m", Bare.Formatter().Fg(25))
	assert.Equal(t, "\x1b[0m", ShellType("tcsh").Formatter()("[0m"))
}

func TestRootIndicator(t *testing.T) {
	assert.Equal(t, ` \$ `, Bash.RootIndicator())
	assert.Equal(t, " $ ", Zsh.RootIndicator())
	assert.Equal(t, " $ ", Bare.RootIndicator())
}

func TestDetect(t *testing.T) {
	fails := func() (string, error) { return "", errors.New("no parent") }
	named := func(n string) ParentName {
		return func() (string, error) { return n, nil }
	}

	tests := []struct {
		name   string
		env    env.Map
		parent ParentName
		want   ShellType
	}{
		{"parent wins", env.Map{"SHELL": "/bin/bash"}, named("zsh"), Zsh},
		{"login shell dash", env.Map{}, named("-bash"), Bash},
		{"unknown parent uses SHELL", env.Map{"SHELL": "/usr/bin/zsh"}, named("tmux"), Zsh},
		{"parent error uses SHELL", env.Map{"SHELL": "/usr/local/bin/zsh"}, fails, Zsh},
		{"nothing known", env.Map{"SHELL": "/usr/bin/fish"}, nil, Bash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.env, tt.parent))
		})
	}
}

func TestCheckWrapping(t *testing.T) {
	tests := []struct {
		name    string
		shell   ShellType
		prompt  string
		wantErr bool
	}{
		{"bash balanced", Bash, `\[\e[0m\] ~ \[\e[38;5;250m\]`, false},
		{"bash unclosed", Bash, `\[\e[0m ~`, true},
		{"bash unmatched close", Bash, `~ \]`, true},
		{"bash nested", Bash, `\[\[\]\]`, true},
		{"zsh balanced", Zsh, "%{\x1b[0m%} ~ ", false},
		{"zsh unclosed", Zsh, "%{\x1b[0m ~", true},
		{"bare has no markers", Bare, `\[`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shell.CheckWrapping(tt.prompt)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatterOutputIsBalanced(t *testing.T) {
	for _, sh := range []ShellType{Bash, Zsh} {
		f := sh.Formatter()
		out := f.Fg(250) + " x " + f.Bg(240) + f.Reset()
		assert.NoError(t, sh.CheckWrapping(out), sh)
	}
}
