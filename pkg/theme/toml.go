package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name       string      `toml:"name"`
	Path       thTOMLPath  `toml:"path"`
	Cwd        thTOMLPair  `toml:"cwd"`
	Time       thTOMLPair  `toml:"time"`
	Extra      thTOMLExtra `toml:"extra"`
	Repo       thTOMLRepo  `toml:"repo"`
	Cmd        thTOMLCmd   `toml:"cmd"`
	SVN        thTOMLPair  `toml:"svn"`
	VirtualEnv thTOMLPair  `toml:"virtualenv"`
}

type thTOMLPair struct {
	Fg int `toml:"fg"`
	Bg int `toml:"bg"`
}

type thTOMLPath struct {
	Fg        int `toml:"fg"`
	Bg        int `toml:"bg"`
	Separator int `toml:"separator"`
}

type thTOMLExtra struct {
	Fg        int `toml:"fg"`
	Bg        int `toml:"bg"`
	Separator int `toml:"separator"`
}

type thTOMLRepo struct {
	CleanFg int `toml:"clean_fg"`
	CleanBg int `toml:"clean_bg"`
	DirtyFg int `toml:"dirty_fg"`
	DirtyBg int `toml:"dirty_bg"`
}

type thTOMLCmd struct {
	PassedFg int `toml:"passed_fg"`
	PassedBg int `toml:"passed_bg"`
	FailedFg int `toml:"failed_fg"`
	FailedBg int `toml:"failed_bg"`
}

// LoadFromFile reads a TOML theme file.
func LoadFromFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}

// LoadFromTOML parses a TOML theme definition. Colors the file leaves out
// keep their value from the default theme.
func LoadFromTOML(data []byte) (Theme, error) {
	tt := thToTOML(Default())
	tt.Name = ""
	if _, err := toml.Decode(string(data), &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing required field %q", "name")
	}
	if err := thValidate(tt); err != nil {
		return Theme{}, err
	}
	return thFromTOML(tt), nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(thToTOML(t)); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidate checks that every color is a valid 256-color index.
func thValidate(tt thTOMLTheme) error {
	fields := []struct {
		name  string
		value int
	}{
		{"path.fg", tt.Path.Fg},
		{"path.bg", tt.Path.Bg},
		{"path.separator", tt.Path.Separator},
		{"cwd.fg", tt.Cwd.Fg},
		{"cwd.bg", tt.Cwd.Bg},
		{"time.fg", tt.Time.Fg},
		{"time.bg", tt.Time.Bg},
		{"extra.fg", tt.Extra.Fg},
		{"extra.bg", tt.Extra.Bg},
		{"extra.separator", tt.Extra.Separator},
		{"repo.clean_fg", tt.Repo.CleanFg},
		{"repo.clean_bg", tt.Repo.CleanBg},
		{"repo.dirty_fg", tt.Repo.DirtyFg},
		{"repo.dirty_bg", tt.Repo.DirtyBg},
		{"cmd.passed_fg", tt.Cmd.PassedFg},
		{"cmd.passed_bg", tt.Cmd.PassedBg},
		{"cmd.failed_fg", tt.Cmd.FailedFg},
		{"cmd.failed_bg", tt.Cmd.FailedBg},
		{"svn.fg", tt.SVN.Fg},
		{"svn.bg", tt.SVN.Bg},
		{"virtualenv.fg", tt.VirtualEnv.Fg},
		{"virtualenv.bg", tt.VirtualEnv.Bg},
	}
	for _, f := range fields {
		if f.value < 0 || f.value > 255 {
			return fmt.Errorf("theme: invalid color %d for field %q (expected 0-255)", f.value, f.name)
		}
	}
	return nil
}

func thToTOML(t Theme) thTOMLTheme {
	return thTOMLTheme{
		Name:  t.Name,
		Path:  thTOMLPath{Fg: int(t.PathFg), Bg: int(t.PathBg), Separator: int(t.SeparatorFg)},
		Cwd:   thTOMLPair{Fg: int(t.CwdFg), Bg: int(t.CwdBg)},
		Time:  thTOMLPair{Fg: int(t.TimeFg), Bg: int(t.TimeBg)},
		Extra: thTOMLExtra{Fg: int(t.ExtraFg), Bg: int(t.ExtraBg), Separator: int(t.ExtraSepFg)},
		Repo: thTOMLRepo{
			CleanFg: int(t.RepoCleanFg),
			CleanBg: int(t.RepoCleanBg),
			DirtyFg: int(t.RepoDirtyFg),
			DirtyBg: int(t.RepoDirtyBg),
		},
		Cmd: thTOMLCmd{
			PassedFg: int(t.CmdPassedFg),
			PassedBg: int(t.CmdPassedBg),
			FailedFg: int(t.CmdFailedFg),
			FailedBg: int(t.CmdFailedBg),
		},
		SVN:        thTOMLPair{Fg: int(t.SVNChangesFg), Bg: int(t.SVNChangesBg)},
		VirtualEnv: thTOMLPair{Fg: int(t.VirtualEnvFg), Bg: int(t.VirtualEnvBg)},
	}
}

// thFromTOML converts a validated TOML theme; every value is in 0-255.
func thFromTOML(tt thTOMLTheme) Theme {
	c := func(v int) powerline.Color { return powerline.Color(v) }
	return Theme{
		Name: tt.Name,

		PathFg:      c(tt.Path.Fg),
		PathBg:      c(tt.Path.Bg),
		SeparatorFg: c(tt.Path.Separator),

		CwdFg: c(tt.Cwd.Fg),
		CwdBg: c(tt.Cwd.Bg),

		TimeFg: c(tt.Time.Fg),
		TimeBg: c(tt.Time.Bg),

		ExtraFg:    c(tt.Extra.Fg),
		ExtraBg:    c(tt.Extra.Bg),
		ExtraSepFg: c(tt.Extra.Separator),

		RepoCleanFg: c(tt.Repo.CleanFg),
		RepoCleanBg: c(tt.Repo.CleanBg),
		RepoDirtyFg: c(tt.Repo.DirtyFg),
		RepoDirtyBg: c(tt.Repo.DirtyBg),

		CmdPassedFg: c(tt.Cmd.PassedFg),
		CmdPassedBg: c(tt.Cmd.PassedBg),
		CmdFailedFg: c(tt.Cmd.FailedFg),
		CmdFailedBg: c(tt.Cmd.FailedBg),

		SVNChangesFg: c(tt.SVN.Fg),
		SVNChangesBg: c(tt.SVN.Bg),

		VirtualEnvFg: c(tt.VirtualEnv.Fg),
		VirtualEnvBg: c(tt.VirtualEnv.Bg),
	}
}
