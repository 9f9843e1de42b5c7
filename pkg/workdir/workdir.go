// Package workdir finds a usable working directory when the one the shell
// reports has been removed underneath it, e.g. after checking out a branch
// that does not contain it.
package workdir

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

// ErrInvalid is returned when neither the directory nor any of its
// ancestors can be entered.
var ErrInvalid = errors.New("workdir: current directory is invalid")

// Resolver recovers from a vanished working directory.
type Resolver struct {
	Getwd  func() (string, error)
	Chdir  func(string) error
	IsDir  func(string) bool
	Env    env.Lookup
	Logger *slog.Logger
}

// NewResolver returns a Resolver backed by the real filesystem.
func NewResolver(e env.Lookup, logger *slog.Logger) Resolver {
	return Resolver{
		Getwd: os.Getwd,
		Chdir: os.Chdir,
		IsDir: func(p string) bool {
			fi, err := os.Stat(p)
			return err == nil && fi.IsDir()
		},
		Env:    e,
		Logger: logger,
	}
}

// Location is the outcome of Resolve.
type Location struct {
	// Display is where the shell thinks the user is. It is shown in the
	// prompt even when it no longer exists.
	Display string
	// Dir is the process working directory after recovery. Commands that
	// need a real directory run here.
	Dir string
}

// Resolve finds the directory to show and the directory to work in. When
// the process directory is gone it moves into the nearest existing
// ancestor of $PWD so that later commands can run, but still displays
// $PWD: that is where the shell thinks the user is.
func (r Resolver) Resolve() (Location, error) {
	if cwd, err := r.Getwd(); err == nil {
		return Location{Display: cwd, Dir: cwd}, nil
	}

	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cwd := env.Get(r.Env, "PWD")
	if cwd == "" {
		log.Warn("Your current directory is invalid.")
		return Location{}, ErrInvalid
	}

	up, ok := r.nearestAncestor(cwd)
	if !ok {
		log.Warn("Your current directory is invalid.", "pwd", cwd)
		return Location{}, ErrInvalid
	}
	if err := r.Chdir(up); err != nil {
		log.Warn("Your current directory is invalid.", "pwd", cwd, "err", err)
		return Location{}, fmt.Errorf("%w: chdir %s: %v", ErrInvalid, up, err)
	}
	log.Warn("Your current directory is invalid. Lowest valid directory: "+up, "pwd", cwd)
	return Location{Display: cwd, Dir: up}, nil
}

// nearestAncestor walks up from dir until it finds a directory that exists.
func (r Resolver) nearestAncestor(dir string) (string, bool) {
	p := filepath.Clean(dir)
	for {
		if r.IsDir(p) {
			return p, true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", false
		}
		p = parent
	}
}
