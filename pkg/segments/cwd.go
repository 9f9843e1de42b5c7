package segments

import (
	"slices"
	"strings"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
)

// Ellipsis replaces the collapsed middle of a long path.
const Ellipsis = "…"

// SplitPath shortens cwd for display: a leading home directory becomes "~",
// one leading "/" is dropped, and paths with more than maxDepth components
// keep the first two, an ellipsis and the components from index
// 2-maxDepth on, counted from the end when negative. With maxDepth <= 2 that
// tail overlaps the head.
func SplitPath(cwd, home string, maxDepth int) []string {
	if home != "" && strings.HasPrefix(cwd, home) {
		cwd = "~" + cwd[len(home):]
	}
	cwd = strings.TrimPrefix(cwd, "/")

	names := strings.Split(cwd, "/")
	if len(names) > maxDepth {
		head := names[:min(2, len(names))]
		tail := names[pyIndex(2-maxDepth, len(names)):]

		collapsed := make([]string, 0, len(head)+1+len(tail))
		collapsed = append(collapsed, head...)
		collapsed = append(collapsed, Ellipsis)
		collapsed = append(collapsed, tail...)
		names = collapsed
	}
	return names
}

// pyIndex resolves a possibly negative slice start against length n, the
// way a negative index counts from the end of a sequence.
func pyIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// Cwd appends the working directory to the left row. Every component but
// the last gets the path colors and a thin separator, except the one just
// before the last, whose thick separator leads into the current-directory
// block. cwdOnly shows just the last component.
func (b Builder) Cwd(p powerline.Prompt, cwd string, cwdOnly bool) powerline.Prompt {
	if cwd == "" {
		cwd = env.Get(b.Env, "PWD")
	}
	maxDepth := b.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	names := SplitPath(cwd, env.Get(b.Env, "HOME"), maxDepth)
	if slices.Contains(names, Ellipsis) {
		b.log().Debug("path collapsed", "cwd", cwd, "max_depth", maxDepth, "shown", len(names))
	}
	th := b.Theme

	if !cwdOnly {
		for i, name := range names[:len(names)-1] {
			sep := b.Symbols.SeparatorThin
			sepFg := th.SeparatorFg
			if i == len(names)-2 {
				sep = b.Symbols.Separator
				sepFg = th.PathBg
			}
			p = p.AppendLeft(powerline.NewSegment(pad(name), th.PathFg, th.PathBg, sep,
				powerline.WithSeparatorColor(sepFg)))
		}
	}

	last := names[len(names)-1]
	return p.AppendLeft(powerline.NewSegment(pad(last), th.CwdFg, th.CwdBg, b.Symbols.Separator))
}
