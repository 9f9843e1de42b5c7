package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  env.Map
		want Terminal
	}{
		{"ghostty program", env.Map{"TERM_PROGRAM": "ghostty"}, Ghostty},
		{"iterm program", env.Map{"TERM_PROGRAM": "iTerm.app"}, ITerm2},
		{"kitty term", env.Map{"TERM": "xterm-kitty"}, Kitty},
		{"alacritty term", env.Map{"TERM": "alacritty-direct"}, Alacritty},
		{"screen needs STY", env.Map{"TERM": "screen-256color", "STY": "1.pts"}, Screen},
		{"screen term alone", env.Map{"TERM": "screen-256color"}, Generic},
		{"kitty window", env.Map{"KITTY_WINDOW_ID": "1"}, Kitty},
		{"wezterm executable", env.Map{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}, WezTerm},
		{"tilix", env.Map{"VTE_VERSION": "7000", "TILIX_ID": "x"}, Tilix},
		{"gnome", env.Map{"VTE_VERSION": "7000"}, GNOME},
		{"emacs", env.Map{"INSIDE_EMACS": "vterm"}, Emacs},
		{"tmux", env.Map{"TMUX": "/tmp/tmux-1000/default,1,0"}, Tmux},
		{"inner terminal beats tmux", env.Map{"TMUX": "x", "KITTY_WINDOW_ID": "1"}, Kitty},
		{"iterm over ssh", env.Map{"LC_TERMINAL": "iTerm2"}, ITerm2},
		{"nothing", env.Map{}, Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.env))
		})
	}
}

func TestDrawsPowerlineGlyphs(t *testing.T) {
	assert.True(t, Kitty.DrawsPowerlineGlyphs())
	assert.True(t, Ghostty.DrawsPowerlineGlyphs())
	assert.False(t, GNOME.DrawsPowerlineGlyphs())
	assert.False(t, Generic.DrawsPowerlineGlyphs())
}

func TestTerminalString(t *testing.T) {
	assert.Equal(t, "gnome-terminal", GNOME.String())
	assert.Equal(t, "unknown", Terminal(99).String())
}
