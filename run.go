package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"
	urfavecli "github.com/urfave/cli/v2"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/config"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/prompt"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/segments"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/shell"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/terminal"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/theme"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/vcs"
	"gitlab.com/tinyland/lab/powerline-prompt/pkg/workdir"
)

// runPrompt is the default action: render one prompt and write it to
// stdout in a single call.
func runPrompt(c *urfavecli.Context, d deps) error {
	cfg, cfgPath, cfgErr := loadConfig(c, d.Env)
	applyFlags(cfg, c)

	logger := newLogger(d.Stderr, cfg, c.Bool("verbose"))
	if cfgErr != nil {
		logger.Warn("config ignored, using defaults", "path", cfgPath, "err", cfgErr)
	} else if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}

	loc, err := workdir.NewResolver(d.Env, logger).Resolve()
	if err != nil {
		return err
	}

	mode := resolveMode(cfg.Prompt.Mode, d.Env, logger)
	symbols, err := powerline.SymbolsFor(mode)
	if err != nil {
		return err
	}

	sh, err := shell.Parse(cfg.Prompt.Shell)
	if err != nil {
		return err
	}
	if sh == shell.Auto {
		sh = shell.Detect(d.Env, d.Parent)
		logger.Debug("shell detected", "shell", sh)
	}

	cols, auto, err := config.ParseWidth(string(cfg.Prompt.Width))
	if err != nil {
		return err
	}
	if auto {
		cols = terminal.Width(d.Env)
		logger.Debug("terminal width detected", "cols", cols)
	}

	formatter := sh.Formatter()
	if noColor(d.Stdout, d.Env) {
		formatter = powerline.NoColor
	}

	runner := d.Runner
	if runner == nil {
		runner = vcs.ExecRunner{Timeout: cfg.VCS.Timeout.Duration}
	}

	r := prompt.Renderer{
		Builder: segments.Builder{
			Env:        d.Env,
			Theme:      resolveTheme(cfg.Theme, logger),
			Symbols:    symbols,
			Shell:      sh,
			Now:        time.Now,
			TimeLayout: cfg.Prompt.TimeFormat,
			MaxDepth:   cfg.Prompt.MaxDepth,
			Logger:     logger,
		},
		Detector: vcs.NewChain(runner, logger, vcs.Enabled{
			Git:        cfg.VCS.Git,
			Subversion: cfg.VCS.SVN,
			Mercurial:  cfg.VCS.Hg,
		}),
		Formatter: formatter,
		Logger:    logger,
	}

	prevError := c.Args().First()
	if prevError == "" {
		prevError = "0"
	}

	out := r.Render(c.Context, prompt.Options{
		Cwd:            loc.Display,
		RepoDir:        loc.Dir,
		CwdOnly:        c.Bool("cwd-only"),
		Extra:          c.String("extra"),
		Chroot:         c.String("chroot") == "1",
		PrevError:      prevError,
		Width:          cols,
		ShowVirtualEnv: cfg.Prompt.ShowVirtualEnv,
		ShowTime:       cfg.Prompt.ShowTime,
	})
	if err := sh.CheckWrapping(out); err != nil {
		logger.Warn("prompt escapes unbalanced", "shell", sh, "err", err)
	}
	_, err = io.WriteString(d.Stdout, out)
	return err
}

// loadConfig reads --config or the default search path. A broken file
// never breaks the prompt: defaults are returned together with the error.
func loadConfig(c *urfavecli.Context, e env.Lookup) (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path = c.String("config")
		err  error
	)
	if path != "" {
		cfg, err = config.LoadFromFile(path, e)
	} else {
		cfg, path, err = config.Load(e)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return config.DefaultConfig(), path, err
	}
	return cfg, path, nil
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config, c *urfavecli.Context) {
	if c.IsSet("mode") {
		cfg.Prompt.Mode = c.String("mode")
	}
	if c.IsSet("shell") {
		cfg.Prompt.Shell = c.String("shell")
	}
	if c.IsSet("width") {
		cfg.Prompt.Width = config.Width(c.String("width"))
	}
	if c.IsSet("theme") {
		cfg.Theme.Name = c.String("theme")
		cfg.Theme.File = ""
	}
	if c.IsSet("theme-file") {
		cfg.Theme.File = c.String("theme-file")
	}
}

func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level, err := config.ParseLogLevel(cfg.General.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveMode turns "auto" into a concrete glyph set: terminals that draw
// the powerline separators themselves get the patched set.
func resolveMode(mode string, e env.Lookup, logger *slog.Logger) powerline.Mode {
	if mode != config.ModeAuto {
		return powerline.Mode(mode)
	}
	term := terminal.Detect(e)
	logger.Debug("terminal detected", "terminal", term.String())
	if term.DrawsPowerlineGlyphs() {
		return powerline.ModePatched
	}
	return powerline.ModeCompatible
}

// resolveTheme prefers a theme file, then a registered name, then the
// default palette.
func resolveTheme(tc config.ThemeConfig, logger *slog.Logger) theme.Theme {
	if tc.File != "" {
		t, err := theme.LoadFromFile(tc.File)
		if err == nil {
			return t
		}
		logger.Warn("theme file ignored", "path", tc.File, "err", err)
	}
	if _, ok := theme.Lookup(tc.Name); !ok {
		logger.Warn("unknown theme, using default", "theme", tc.Name)
	}
	return theme.Get(tc.Name)
}

// noColor reports whether NO_COLOR or CLICOLOR=0 asks for plain output.
func noColor(w io.Writer, e env.Lookup) bool {
	out := termenv.NewOutput(w, termenv.WithEnvironment(termEnviron{e}))
	return out.EnvNoColor()
}

// termEnviron adapts env.Lookup to termenv.Environ.
type termEnviron struct {
	e env.Lookup
}

func (t termEnviron) Getenv(key string) string { return env.Get(t.e, key) }

func (t termEnviron) Environ() []string {
	var out []string
	for _, k := range []string{"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "TERM", "COLORTERM"} {
		if v := env.Get(t.e, k); v != "" {
			out = append(out, k+"="+v)
		}
	}
	return out
}
