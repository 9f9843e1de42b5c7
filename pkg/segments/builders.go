package segments

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/vcs"
)

// ChrootLabel is the text of the chroot marker segment.
const ChrootLabel = "CHROOT"

// VirtualEnv shows the name of the active Python virtualenv, if any.
func (b Builder) VirtualEnv(p powerline.Prompt) powerline.Prompt {
	if !envSet(b.Env, "VIRTUAL_ENV") {
		return p
	}
	name := filepath.Base(env.Get(b.Env, "VIRTUAL_ENV"))
	th := b.Theme
	return p.AppendRight(powerline.NewSegment(pad(name), th.VirtualEnvFg, th.VirtualEnvBg,
		b.Symbols.SeparatorRight, powerline.Right()))
}

// Time shows the current time.
func (b Builder) Time(p powerline.Prompt) powerline.Prompt {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	layout := b.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	th := b.Theme
	return p.AppendRight(powerline.NewSegment(pad(now().Format(layout)), th.TimeFg, th.TimeBg,
		b.Symbols.SeparatorRight, powerline.Right()))
}

// Extra shows a free-text annotation. In chroot mode it is joined to the
// chroot marker by a thin separator.
func (b Builder) Extra(p powerline.Prompt, text string, chroot bool) powerline.Prompt {
	if text == "" {
		return p
	}
	th := b.Theme
	sep, sepFg := b.Symbols.SeparatorRight, th.ExtraBg
	if chroot {
		sep, sepFg = b.Symbols.SeparatorRightThin, th.ExtraSepFg
	}
	return p.AppendRight(powerline.NewSegment(pad(text), th.ExtraFg, th.ExtraBg, sep,
		powerline.WithSeparatorColor(sepFg), powerline.Right()))
}

// Chroot marks a prompt running inside a chroot.
func (b Builder) Chroot(p powerline.Prompt, chroot bool) powerline.Prompt {
	if !chroot {
		return p
	}
	th := b.Theme
	return p.AppendRight(powerline.NewSegment(pad(ChrootLabel), th.ExtraFg, th.ExtraBg,
		b.Symbols.SeparatorRight, powerline.WithSeparatorColor(th.ExtraBg), powerline.Right()))
}

// Repo shows a detected repository. git and Mercurial go to the right row,
// colored by dirtiness; Subversion shows its change count on the left row
// and only when there are changes.
func (b Builder) Repo(p powerline.Prompt, st vcs.Status) powerline.Prompt {
	th := b.Theme
	switch st.System {
	case vcs.Git, vcs.Mercurial:
		fg, bg := th.RepoCleanFg, th.RepoCleanBg
		if st.Dirty {
			fg, bg = th.RepoDirtyFg, th.RepoDirtyBg
		}
		return p.AppendRight(powerline.NewSegment(pad(st.Label), fg, bg,
			b.Symbols.SeparatorRight, powerline.Right()))
	case vcs.Subversion:
		if st.Changes <= 0 {
			return p
		}
		return p.AppendLeft(powerline.NewSegment(pad(strconv.Itoa(st.Changes)), th.SVNChangesFg, th.SVNChangesBg,
			b.Symbols.Separator))
	default:
		return p
	}
}

// Indicator appends the prompt character, colored by whether the previous
// command succeeded. A value that is not an integer counts as a failure.
func (b Builder) Indicator(p powerline.Prompt, prevError string) powerline.Prompt {
	th := b.Theme
	fg, bg := th.CmdPassedFg, th.CmdPassedBg
	if !Passed(prevError) {
		fg, bg = th.CmdFailedFg, th.CmdFailedBg
		if _, err := strconv.Atoi(strings.TrimSpace(prevError)); err != nil {
			b.log().Debug("previous exit status is not a number", "value", prevError)
		}
	}
	return p.AppendDown(powerline.NewSegment(b.Shell.RootIndicator(), fg, bg, b.Symbols.Separator))
}

// Passed reports whether prevError is a zero exit status. An empty value
// means no status was given and counts as success.
func Passed(prevError string) bool {
	prevError = strings.TrimSpace(prevError)
	if prevError == "" {
		return true
	}
	n, err := strconv.Atoi(prevError)
	return err == nil && n == 0
}

// envSet reports whether key is present in e.
func envSet(e env.Lookup, key string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Lookup(key)
	return ok
}
