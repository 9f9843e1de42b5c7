package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

// Width returns the terminal width in columns. It tries, in order:
//  1. the window size of stdout, stderr or stdin, whichever is a terminal
//     (prompts are usually captured with $(...), so stdout rarely is)
//  2. the COLUMNS environment variable
//  3. 0, meaning unknown
func Width(e env.Lookup) int {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			continue
		}
		if cols := colsFromFd(fd); cols > 0 {
			return cols
		}
	}
	return envInt(e, "COLUMNS", 0)
}

// envInt reads an integer from the named environment variable. Returns
// the fallback value if the variable is unset, empty, or not a valid
// positive integer.
func envInt(e env.Lookup, name string, fallback int) int {
	v := env.Get(e, name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
