package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	urfavecli "github.com/urfave/cli/v2"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/theme"
)

func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List built-in themes with a color preview",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:  "file",
				Usage: "Preview a TOML theme file instead",
			},
		},
		Action: func(c *urfavecli.Context) error {
			r := lipgloss.NewRenderer(c.App.Writer)
			if path := c.String("file"); path != "" {
				t, err := theme.LoadFromFile(path)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, themeSwatch(r, t))
				return err
			}
			var b strings.Builder
			for _, name := range theme.Names() {
				t, _ := theme.Lookup(name)
				b.WriteString(themeSwatch(r, t))
				b.WriteByte('\n')
			}
			_, err := fmt.Fprint(c.App.Writer, b.String())
			return err
		},
	}
}

// themeSwatch renders one line: the theme name followed by a sample block
// per segment kind.
func themeSwatch(r *lipgloss.Renderer, t theme.Theme) string {
	block := func(label string, fg, bg powerline.Color) string {
		return r.NewStyle().
			Foreground(lipgloss.Color(strconv.Itoa(int(fg)))).
			Background(lipgloss.Color(strconv.Itoa(int(bg)))).
			Padding(0, 1).
			Render(label)
	}
	name := r.NewStyle().Bold(true).Width(12).Render(t.Name)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		name,
		block("path", t.PathFg, t.PathBg),
		block("cwd", t.CwdFg, t.CwdBg),
		block("time", t.TimeFg, t.TimeBg),
		block("clean", t.RepoCleanFg, t.RepoCleanBg),
		block("dirty", t.RepoDirtyFg, t.RepoDirtyBg),
		block("ok", t.CmdPassedFg, t.CmdPassedBg),
		block("fail", t.CmdFailedFg, t.CmdFailedBg),
	)
}
