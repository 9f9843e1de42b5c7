package vcs

import (
	"bufio"
	"context"
	"log/slog"
	"strings"
)

// HgState classifies the lines of `hg status`.
type HgState struct {
	Modified  bool
	Untracked bool
	Missing   bool
}

// Dirty reports whether any change was seen.
func (s HgState) Dirty() bool {
	return s.Modified || s.Untracked || s.Missing
}

// ParseHgStatus reads `hg status` output: "?" marks untracked files, "!"
// missing ones, and any other non-blank line a modification.
func ParseHgStatus(out string) HgState {
	var st HgState
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch line[0] {
		case '?':
			st.Untracked = true
		case '!':
			st.Missing = true
		default:
			st.Modified = true
		}
	}
	return st
}

// NewHgStatus combines a branch name and parsed status into a Status.
func NewHgStatus(branch string, st HgState) Status {
	var extra string
	if st.Untracked {
		extra += "+"
	}
	if st.Missing {
		extra += "!"
	}

	s := Status{
		System: Mercurial,
		Branch: branch,
		Label:  branch,
		Dirty:  st.Dirty(),
	}
	if extra != "" {
		s.Badges = []string{" " + extra}
		s.Label += " " + extra
	}
	return s
}

// HgDetector probes for a Mercurial repository.
type HgDetector struct {
	Runner Runner
	Logger *slog.Logger
}

// System implements Detector.
func (d HgDetector) System() System { return Mercurial }

// Detect implements Detector.
func (d HgDetector) Detect(ctx context.Context, dir string) (Status, bool) {
	res, err := d.Runner.Run(ctx, dir, "hg", "branch")
	if err != nil {
		logger(d.Logger).Debug("hg branch failed", "dir", dir, "err", err)
		return Status{}, false
	}
	branch := strings.TrimRight(res.Stdout, " \t\r\n")
	if branch == "" {
		return Status{}, false
	}

	res, err = d.Runner.Run(ctx, dir, "hg", "status")
	if err != nil {
		logger(d.Logger).Debug("hg status failed", "dir", dir, "err", err)
		return Status{}, false
	}
	return NewHgStatus(branch, ParseHgStatus(res.Stdout)), true
}
