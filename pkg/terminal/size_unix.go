//go:build unix

package terminal

import "golang.org/x/sys/unix"

// colsFromFd queries the column count via the TIOCGWINSZ ioctl. Returns 0
// on failure.
func colsFromFd(fd uintptr) int {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
