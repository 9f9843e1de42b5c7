package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

// ParentName returns the executable name of the parent process.
type ParentName func() (string, error)

// ProcessParentName looks up the parent process with gopsutil.
func ProcessParentName() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", err
	}
	return p.Name()
}

// Detect picks the shell the prompt is being rendered for. It checks in
// order:
//
//  1. the parent process name (the shell evaluating the prompt)
//  2. $SHELL
//  3. Bash as a safe default
func Detect(e env.Lookup, parent ParentName) ShellType {
	if parent != nil {
		if name, err := parent(); err == nil {
			if sh := shParseShellName(name); sh != "" {
				return sh
			}
		}
	}
	if sh := shDetectFromEnv(e); sh != "" {
		return sh
	}
	return Bash
}

// shDetectFromEnv checks the $SHELL environment variable and maps it to a
// ShellType.
func shDetectFromEnv(e env.Lookup) ShellType {
	shellPath := env.Get(e, "SHELL")
	if shellPath == "" {
		return ""
	}
	return shParseShellName(filepath.Base(shellPath))
}

// shParseShellName maps a shell binary name (e.g. "zsh", "-bash") to a
// ShellType. Returns empty string if unrecognized.
func shParseShellName(name string) ShellType {
	// Strip leading dash for login shells (e.g., "-zsh").
	name = strings.TrimPrefix(strings.TrimSpace(name), "-")
	name = strings.ToLower(name)

	switch name {
	case "bash":
		return Bash
	case "zsh":
		return Zsh
	default:
		return ""
	}
}
