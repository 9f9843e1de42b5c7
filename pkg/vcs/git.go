package vcs

import (
	"bufio"
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

const (
	gitCleanPhrase     = "nothing to commit"
	gitUntrackedHeader = "Untracked files"
)

var gitOriginRegex = regexp.MustCompile(`Your branch is (ahead|behind).*?(\d+) comm`)

// GitState is what `git status` says about the work tree.
type GitState struct {
	Pending     bool
	Untracked   bool
	AheadBehind *AheadBehind
}

// ParseGitBranch finds the current branch in `git branch` output, i.e. the
// text after the "* " marker. ok is false when there is no marked line.
func ParseGitBranch(out string) (branch string, ok bool) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if name, found := strings.CutPrefix(line, "* "); found {
			name = strings.TrimSpace(name)
			return name, name != ""
		}
	}
	return "", false
}

// ParseGitStatus reads long-format `git status` output. The tree counts as
// having pending changes unless git says there is nothing to commit, so
// empty output is reported as pending.
func ParseGitStatus(out string) GitState {
	st := GitState{Pending: true}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if m := gitOriginRegex.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[2])
			if err == nil {
				dir := Ahead
				if m[1] == "behind" {
					dir = Behind
				}
				st.AheadBehind = &AheadBehind{Count: n, Direction: dir}
			}
		}
		if strings.Contains(line, gitCleanPhrase) {
			st.Pending = false
		}
		if strings.Contains(line, gitUntrackedHeader) {
			st.Untracked = true
		}
	}
	return st
}

// NewGitStatus combines a branch name and parsed status into a Status.
func NewGitStatus(branch string, st GitState) Status {
	var badges []string
	if st.AheadBehind != nil {
		badges = append(badges, st.AheadBehind.Badge())
	}
	if st.Untracked {
		badges = append(badges, " +")
	}
	return Status{
		System:      Git,
		Branch:      branch,
		Label:       branch + strings.Join(badges, ""),
		Dirty:       st.Pending,
		Badges:      badges,
		AheadBehind: st.AheadBehind,
	}
}

// GitDetector probes for a git work tree.
type GitDetector struct {
	Runner Runner
	Logger *slog.Logger
}

// System implements Detector.
func (d GitDetector) System() System { return Git }

// Detect implements Detector.
func (d GitDetector) Detect(ctx context.Context, dir string) (Status, bool) {
	res, err := d.Runner.Run(ctx, dir, "git", "branch")
	if err != nil {
		logger(d.Logger).Debug("git branch failed", "dir", dir, "err", err)
		return Status{}, false
	}
	branch, ok := ParseGitBranch(res.Stdout)
	if !ok {
		return Status{}, false
	}

	res, err = d.Runner.Run(ctx, dir, "git", "status")
	if err != nil {
		logger(d.Logger).Debug("git status failed", "dir", dir, "err", err)
		return Status{}, false
	}
	return NewGitStatus(branch, ParseGitStatus(res.Stdout)), true
}
