package vcs

import (
	"context"
	"io"
	"log/slog"
)

// Detector probes dir for one version-control system. It never fails:
// anything that goes wrong means the system is not there.
type Detector interface {
	System() System
	Detect(ctx context.Context, dir string) (Status, bool)
}

// Chain tries detectors in order and stops at the first one that reports a
// repository. Later detectors are not run at all.
type Chain struct {
	detectors []Detector
	log       *slog.Logger
}

// Systems lists the probed systems in priority order.
func (c Chain) Systems() []System {
	out := make([]System, 0, len(c.detectors))
	for _, d := range c.detectors {
		out = append(out, d.System())
	}
	return out
}

// Detect returns the status from the first detector that finds a repository.
func (c Chain) Detect(ctx context.Context, dir string) (Status, bool) {
	for _, d := range c.detectors {
		if st, ok := d.Detect(ctx, dir); ok {
			return st, true
		}
		logger(c.log).Debug("repository not detected", "system", d.System(), "dir", dir)
	}
	return Status{}, false
}

// Enabled selects which systems a default chain probes.
type Enabled struct {
	Git        bool
	Subversion bool
	Mercurial  bool
}

// AllEnabled probes every supported system.
var AllEnabled = Enabled{Git: true, Subversion: true, Mercurial: true}

// NewChain returns the enabled detectors in priority order: git, then
// Subversion, then Mercurial.
func NewChain(r Runner, log *slog.Logger, en Enabled) Chain {
	c := Chain{log: log}
	if en.Git {
		c.detectors = append(c.detectors, GitDetector{Runner: r, Logger: log})
	}
	if en.Subversion {
		c.detectors = append(c.detectors, SVNDetector{Runner: r, Logger: log})
	}
	if en.Mercurial {
		c.detectors = append(c.detectors, HgDetector{Runner: r, Logger: log})
	}
	return c
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger
	}
	return l
}
