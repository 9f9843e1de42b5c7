// Package theme holds the color palettes used by the prompt segments. All
// colors are xterm 256-color indices.
package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
)

// Theme is a complete prompt palette.
type Theme struct {
	Name string

	// Path segments leading up to the current directory.
	PathFg      powerline.Color
	PathBg      powerline.Color
	SeparatorFg powerline.Color // thin separators between path segments

	// Current directory.
	CwdFg powerline.Color
	CwdBg powerline.Color

	TimeFg powerline.Color
	TimeBg powerline.Color

	ExtraFg    powerline.Color
	ExtraBg    powerline.Color
	ExtraSepFg powerline.Color // thin separator used in chroot mode

	RepoCleanFg powerline.Color
	RepoCleanBg powerline.Color
	RepoDirtyFg powerline.Color
	RepoDirtyBg powerline.Color

	CmdPassedFg powerline.Color
	CmdPassedBg powerline.Color
	CmdFailedFg powerline.Color
	CmdFailedBg powerline.Color

	SVNChangesFg powerline.Color
	SVNChangesBg powerline.Color

	VirtualEnvFg powerline.Color
	VirtualEnvBg powerline.Color
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Lookup returns the named theme.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return Default()
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds t to the registry under its lowercase name, replacing any
// theme of the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
