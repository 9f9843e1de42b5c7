// Package prompt assembles the full prompt for one invocation: it runs the
// segment builders in display order, asks the VCS detector about the
// working directory and lays the rows out to the terminal width.
package prompt

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/segments"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/vcs"
)

// Detector reports the repository state of a directory.
type Detector interface {
	Detect(ctx context.Context, dir string) (vcs.Status, bool)
}

// Options are the per-invocation inputs.
type Options struct {
	// Cwd is the directory shown in the prompt. RepoDir is where the
	// repository is probed; empty means Cwd. They differ when Cwd has
	// vanished and the process moved to an ancestor.
	Cwd     string
	RepoDir string

	CwdOnly   bool
	Extra     string
	Chroot    bool
	PrevError string
	Width     int

	ShowVirtualEnv bool
	ShowTime       bool
}

// Renderer builds and draws prompts.
type Renderer struct {
	Builder   segments.Builder
	Detector  Detector // nil disables repository segments
	Formatter powerline.Formatter
	Logger    *slog.Logger
}

// Build runs every segment builder and returns the populated rows.
func (r Renderer) Build(ctx context.Context, opts Options) powerline.Prompt {
	b := r.Builder
	var p powerline.Prompt

	if opts.ShowVirtualEnv {
		p = b.VirtualEnv(p)
	}
	p = b.Cwd(p, opts.Cwd, opts.CwdOnly)
	if opts.ShowTime {
		p = b.Time(p)
	}
	p = b.Extra(p, opts.Extra, opts.Chroot)
	p = b.Chroot(p, opts.Chroot)

	if r.Detector != nil {
		dir := opts.RepoDir
		if dir == "" {
			dir = opts.Cwd
		}
		if st, ok := r.Detector.Detect(ctx, dir); ok {
			r.log().Debug("repository detected", "system", st.System, "label", st.Label, "dirty", st.Dirty)
			p = b.Repo(p, st)
		}
	}

	return b.Indicator(p, opts.PrevError)
}

// Render builds the prompt and draws it at opts.Width.
func (r Renderer) Render(ctx context.Context, opts Options) string {
	p := r.Build(ctx, opts)
	f := r.Formatter
	if f == nil {
		f = powerline.NoColor
	}
	out := powerline.Draw(p, f, opts.Width)
	first, _, _ := strings.Cut(out, "\n")
	r.log().Debug("layout",
		"left", p.Left.Len(), "right", p.Right.Len(),
		"occupied", p.Occupied(), "width", opts.Width, "padding", p.Padding(opts.Width),
		"drawn", powerline.VisibleWidth(first))
	return out
}

func (r Renderer) log() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
