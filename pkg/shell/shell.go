// Package shell knows how each supported shell wants non-printing escape
// sequences wrapped inside a prompt string.
package shell

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/powerline"
)

// ShellType names a target shell.
type ShellType string

const (
	Bash ShellType = "bash"
	Zsh  ShellType = "zsh"
	Bare ShellType = "bare"

	// Auto is not a shell; it asks Detect to pick one.
	Auto ShellType = "auto"
)

// shTemplates wrap a raw sequence like "[0m" so the shell does not count
// it towards the prompt width. bash expands \e itself; zsh needs the ESC
// byte.
var shTemplates = map[ShellType]string{
	Bash: `\[\e%s\]`,
	Zsh:  "%%{\x1b%s%%}",
	Bare: "\x1b%s",
}

// shRootIndicators are the prompt characters drawn on the second line.
var shRootIndicators = map[ShellType]string{
	Bash: ` \$ `,
	Zsh:  " $ ",
	Bare: " $ ",
}

// Parse maps a --shell value to a ShellType.
func Parse(name string) (ShellType, error) {
	switch t := ShellType(strings.ToLower(strings.TrimSpace(name))); t {
	case Bash, Zsh, Bare, Auto:
		return t, nil
	case "":
		return Auto, nil
	default:
		return "", fmt.Errorf("shell: unknown shell %q (supported: bash, zsh, bare, auto)", name)
	}
}

// Formatter returns the escape formatter for t. Unknown types use Bare.
func (t ShellType) Formatter() powerline.Formatter {
	tmpl, ok := shTemplates[t]
	if !ok {
		tmpl = shTemplates[Bare]
	}
	return powerline.Template(tmpl)
}

// RootIndicator returns the prompt character block for t.
func (t ShellType) RootIndicator() string {
	if s, ok := shRootIndicators[t]; ok {
		return s
	}
	return shRootIndicators[Bare]
}
