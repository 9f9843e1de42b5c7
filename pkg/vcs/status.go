// Package vcs detects the version-control system of a working directory and
// summarizes its state for the prompt. git, Subversion and Mercurial are
// probed in that order and the first one present wins.
package vcs

import "strconv"

// System identifies a version-control system.
type System int

const (
	None System = iota
	Git
	Subversion
	Mercurial
)

var systemNames = [...]string{
	None:       "none",
	Git:        "git",
	Subversion: "svn",
	Mercurial:  "hg",
}

// String returns the command name of the system.
func (s System) String() string {
	if int(s) < len(systemNames) {
		return systemNames[s]
	}
	return "unknown"
}

// Direction says whether the local branch is ahead of or behind upstream.
type Direction int

const (
	Ahead Direction = iota + 1
	Behind
)

// Glyph returns the arrow drawn after the commit count.
func (d Direction) Glyph() string {
	switch d {
	case Ahead:
		return "⇡"
	case Behind:
		return "⇣"
	default:
		return ""
	}
}

// AheadBehind is the distance between the local branch and its upstream.
type AheadBehind struct {
	Count     int
	Direction Direction
}

// Badge renders the distance as " 3⇡".
func (ab AheadBehind) Badge() string {
	return " " + strconv.Itoa(ab.Count) + ab.Direction.Glyph()
}

// Status is the summary of one detected repository.
type Status struct {
	System System

	// Branch is the bare branch name (git, hg) or change count (svn).
	Branch string
	// Label is Branch with all badges appended, ready for display.
	Label string
	Dirty bool
	// Badges are the suffixes appended to Branch, in display order.
	Badges []string

	AheadBehind *AheadBehind // git only
	Changes     int          // svn only
}

// Detected reports whether s came from a repository.
func (s Status) Detected() bool { return s.System != None }
