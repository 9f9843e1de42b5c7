//go:build !unix

package terminal

import "github.com/charmbracelet/x/term"

// colsFromFd asks the console for its width. Returns 0 on failure.
func colsFromFd(fd uintptr) int {
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
