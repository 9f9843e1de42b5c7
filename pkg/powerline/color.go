package powerline

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Color is an xterm 256-color palette index.
type Color uint8

// Formatter wraps a raw ANSI parameter string such as "[0m" in the
// non-printing escape form expected by the target shell.
type Formatter func(raw string) string

// Template returns a Formatter that substitutes the raw sequence into a
// printf-style template containing a single %s verb.
func Template(tmpl string) Formatter {
	return func(raw string) string {
		return fmt.Sprintf(tmpl, raw)
	}
}

// NoColor is a Formatter that drops every escape sequence.
func NoColor(string) string { return "" }

// Fg returns the escape that sets the foreground to c.
func (f Formatter) Fg(c Color) string {
	return f("[" + termenv.ANSI256Color(c).Sequence(false) + "m")
}

// Bg returns the escape that sets the background to c.
func (f Formatter) Bg(c Color) string {
	return f("[" + termenv.ANSI256Color(c).Sequence(true) + "m")
}

// Reset returns the escape that clears all attributes.
func (f Formatter) Reset() string {
	return f("[0m")
}

// VisibleWidth counts the runes of s left after stripping ANSI escapes. It
// only understands raw ESC sequences, so it is meaningful for output drawn
// with the bare formatter.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(ansi.Strip(s))
}
