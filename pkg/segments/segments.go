// Package segments turns environment, working directory and repository
// state into prompt segments. Every builder takes a Prompt and returns a new
// one; nothing is shared between calls.
package segments

import (
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/shell"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/theme"
)

// DefaultTimeLayout renders as e.g. "Tue 15 09:41:07".
const DefaultTimeLayout = "Mon 02 15:04:05"

// DefaultMaxDepth is how many path components are shown before the middle
// of the path is collapsed.
const DefaultMaxDepth = 4

// Builder holds what the segment builders read. The zero value is not
// usable; fill at least Symbols and Theme.
type Builder struct {
	Env        env.Lookup
	Theme      theme.Theme
	Symbols    powerline.Symbols
	Shell      shell.ShellType
	Now        func() time.Time
	TimeLayout string
	MaxDepth   int
	Logger     *slog.Logger
}

func (b Builder) log() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b.Logger
}

// pad surrounds text with the single spaces every segment carries.
func pad(text string) string {
	return " " + text + " "
}
