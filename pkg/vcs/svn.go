package vcs

import (
	"bufio"
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// svnChangeCodes are the first-column codes of `svn status` that count as a
// change: Added, Conflicted, Deleted, Ignored, Modified, Replaced and
// eXternal.
const svnChangeCodes = "ACDIMRX"

// ParseSVNStatus counts the changed items in `svn status` output.
func ParseSVNStatus(out string) int {
	n := 0
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if line != "" && strings.IndexByte(svnChangeCodes, line[0]) >= 0 {
			n++
		}
	}
	return n
}

// NewSVNStatus builds the Status for a working copy with n changes.
func NewSVNStatus(n int) Status {
	label := strconv.Itoa(n)
	return Status{
		System:  Subversion,
		Branch:  label,
		Label:   label,
		Dirty:   n > 0,
		Changes: n,
	}
}

// SVNDetector probes for a Subversion working copy. Anything on stderr
// means svn does not consider dir a working copy.
type SVNDetector struct {
	Runner Runner
	Logger *slog.Logger
}

// System implements Detector.
func (d SVNDetector) System() System { return Subversion }

// Detect implements Detector.
func (d SVNDetector) Detect(ctx context.Context, dir string) (Status, bool) {
	res, err := d.Runner.Run(ctx, dir, "svn", "status")
	if err != nil {
		logger(d.Logger).Debug("svn status failed", "dir", dir, "err", err)
		return Status{}, false
	}
	if strings.TrimSpace(res.Stderr) != "" {
		return Status{}, false
	}
	return NewSVNStatus(ParseSVNStatus(res.Stdout)), true
}
