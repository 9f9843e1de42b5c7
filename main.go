// powerline-prompt renders a powerline-style shell prompt.
//
// It prints two lines: the first holds the working directory on the left
// and virtualenv, clock and repository status on the right, padded to the
// terminal width; the second holds the prompt character, colored by the
// previous command's exit status.
//
// Usage:
//
//	powerline-prompt [flags] [PREV_ERROR]
//	powerline-prompt themes
//
// A bash setup looks like:
//
//	PS1='$(powerline-prompt --width auto $?)'
package main

import (
	"fmt"
	"io"
	"os"

	urfavecli "github.com/urfave/cli/v2"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/shell"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/vcs"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// deps are the process-level collaborators. Tests replace them.
type deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    env.Lookup
	Runner vcs.Runner
	Parent shell.ParentName
}

func main() {
	app := newApp(deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Env:    env.OS{},
		Parent: shell.ProcessParentName,
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp(d deps) *urfavecli.App {
	return &urfavecli.App{
		Name:      "powerline-prompt",
		Usage:     "Render a powerline-style shell prompt",
		ArgsUsage: "[PREV_ERROR]",
		Version:   fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Writer:    d.Stdout,
		ErrWriter: d.Stderr,
		Flags:     globalFlags(),
		Commands: []*urfavecli.Command{
			themesCommand(),
		},
		HideHelpCommand: true,
		Action: func(c *urfavecli.Context) error {
			return runPrompt(c, d)
		},
	}
}
