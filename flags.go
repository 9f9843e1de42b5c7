package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns the prompt flags. Flags that are not set leave the
// config file and POWERLINE_PROMPT_* values in place.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:  "cwd-only",
			Usage: "Show only the last component of the working directory",
		},
		&urfavecli.StringFlag{
			Name:  "mode",
			Usage: "Separator glyphs: compatible, patched or auto",
		},
		&urfavecli.StringFlag{
			Name:  "shell",
			Usage: "Escape style for the target shell: bash, zsh, bare or auto",
		},
		&urfavecli.StringFlag{
			Name:  "extra",
			Usage: "Free text shown in its own segment",
		},
		&urfavecli.StringFlag{
			Name:  "width",
			Usage: "Pad the first line to this many columns, or auto",
		},
		&urfavecli.StringFlag{
			Name:  "chroot",
			Value: "0",
			Usage: "Set to 1 to show the CHROOT segment",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Built-in theme name",
		},
		&urfavecli.StringFlag{
			Name:  "theme-file",
			Usage: "Path to a TOML theme file",
		},
		&urfavecli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
		&urfavecli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging on stderr",
		},
	}
}
