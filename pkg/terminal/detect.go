// Package terminal identifies the terminal emulator and its width, which
// the prompt uses to pick a glyph set and to pad the right-aligned row.
//
// Only environment variables are consulted. The prompt's output is
// captured by the shell, so there is no one to answer an escape-sequence
// query.
package terminal

import (
	"strings"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

// Terminal identifies a terminal emulator or multiplexer.
type Terminal int

const (
	Generic Terminal = iota
	Ghostty
	Kitty
	WezTerm
	ITerm2
	Alacritty
	VSCode
	Tilix
	GNOME
	Emacs
	Tmux
	Screen
)

var tmNames = map[Terminal]string{
	Generic:   "generic",
	Ghostty:   "ghostty",
	Kitty:     "kitty",
	WezTerm:   "wezterm",
	ITerm2:    "iterm2",
	Alacritty: "alacritty",
	VSCode:    "vscode",
	Tilix:     "tilix",
	GNOME:     "gnome-terminal",
	Emacs:     "emacs",
	Tmux:      "tmux",
	Screen:    "screen",
}

func (t Terminal) String() string {
	if name, ok := tmNames[t]; ok {
		return name
	}
	return "unknown"
}

// DrawsPowerlineGlyphs reports whether the terminal renders the powerline
// private-use separators itself, so they display without a patched font.
func (t Terminal) DrawsPowerlineGlyphs() bool {
	switch t {
	case Ghostty, Kitty, WezTerm:
		return true
	default:
		return false
	}
}

// tmRule maps one environment signal to a terminal. requires, when set,
// must also be present for the rule to apply.
type tmRule struct {
	key      string
	match    func(v string) bool
	requires string
	term     Terminal
}

func tmAny(string) bool { return true }

func tmEqualFold(want string) func(string) bool {
	return func(v string) bool { return strings.EqualFold(v, want) }
}

func tmPrefix(p string) func(string) bool {
	return func(v string) bool { return strings.HasPrefix(v, p) }
}

// tmRules are tried in order. TERM_PROGRAM is the most reliable signal;
// multiplexers come late so the terminal they run in wins when it is
// known.
var tmRules = []tmRule{
	{key: "TERM_PROGRAM", match: tmEqualFold("ghostty"), term: Ghostty},
	{key: "TERM_PROGRAM", match: tmEqualFold("kitty"), term: Kitty},
	{key: "TERM_PROGRAM", match: tmEqualFold("wezterm"), term: WezTerm},
	{key: "TERM_PROGRAM", match: tmEqualFold("iterm.app"), term: ITerm2},
	{key: "TERM_PROGRAM", match: tmEqualFold("vscode"), term: VSCode},
	{key: "TERM_PROGRAM", match: tmEqualFold("alacritty"), term: Alacritty},
	{key: "TERM_PROGRAM", match: tmEqualFold("tmux"), term: Tmux},

	{key: "TERM", match: tmEqualFold("xterm-ghostty"), term: Ghostty},
	{key: "TERM", match: tmEqualFold("xterm-kitty"), term: Kitty},
	{key: "TERM", match: tmPrefix("alacritty"), term: Alacritty},
	{key: "TERM", match: tmPrefix("screen"), requires: "STY", term: Screen},

	{key: "KITTY_WINDOW_ID", match: tmAny, term: Kitty},
	{key: "ITERM_SESSION_ID", match: tmAny, term: ITerm2},
	{key: "WEZTERM_EXECUTABLE", match: tmAny, term: WezTerm},

	{key: "VTE_VERSION", match: tmAny, requires: "TILIX_ID", term: Tilix},
	{key: "VTE_VERSION", match: tmAny, term: GNOME},

	{key: "INSIDE_EMACS", match: tmAny, term: Emacs},

	{key: "TMUX", match: tmAny, term: Tmux},
	{key: "STY", match: tmAny, term: Screen},

	{key: "LC_TERMINAL", match: tmEqualFold("iTerm2"), term: ITerm2},
}

// Detect identifies the terminal from the environment. Generic is returned
// when nothing matches.
func Detect(e env.Lookup) Terminal {
	for _, r := range tmRules {
		v := env.Get(e, r.key)
		if v == "" || !r.match(v) {
			continue
		}
		if r.requires != "" && env.Get(e, r.requires) == "" {
			continue
		}
		return r.term
	}
	return Generic
}
