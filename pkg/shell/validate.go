package shell

import (
	"fmt"
	"strings"
)

// shMarkers are the open/close pairs a shell uses to mark non-printing
// text. Bare output has none.
var shMarkers = map[ShellType][2]string{
	Bash: {`\[`, `\]`},
	Zsh:  {"%{", "%}"},
}

// CheckWrapping verifies that the non-printing markers in a rendered
// prompt are balanced and never nested. An unbalanced marker makes the
// shell miscount the prompt width and breaks line editing.
func (t ShellType) CheckWrapping(prompt string) error {
	m, ok := shMarkers[t]
	if !ok {
		return nil
	}
	openM, closeM := m[0], m[1]
	depth := 0
	for i := 0; i < len(prompt); {
		switch {
		case strings.HasPrefix(prompt[i:], openM):
			if depth > 0 {
				return fmt.Errorf("shell: nested %s at byte %d", openM, i)
			}
			depth++
			i += len(openM)
		case strings.HasPrefix(prompt[i:], closeM):
			if depth == 0 {
				return fmt.Errorf("shell: unmatched %s at byte %d", closeM, i)
			}
			depth--
			i += len(closeM)
		default:
			i++
		}
	}
	if depth != 0 {
		return fmt.Errorf("shell: unclosed %s", openM)
	}
	return nil
}
