package powerline

import "strings"

// Prompt is the set of rows drawn for one prompt: Left and Right share the
// first line, Down holds the indicator on the second.
type Prompt struct {
	Left  Row
	Right Row
	Down  Row
}

// AppendLeft returns p with s added to the left row.
func (p Prompt) AppendLeft(s Segment) Prompt {
	p.Left = p.Left.Append(s)
	return p
}

// AppendRight returns p with s added to the right row.
func (p Prompt) AppendRight(s Segment) Prompt {
	p.Right = p.Right.Append(s)
	return p
}

// AppendDown returns p with s added to the indicator row.
func (p Prompt) AppendDown(s Segment) Prompt {
	p.Down = p.Down.Append(s)
	return p
}

// Occupied returns the columns taken by the left and right rows together.
func (p Prompt) Occupied() int {
	return p.Left.Width() + p.Right.Width()
}

// Padding returns the number of spaces needed between the rows to fill
// width columns. It is never negative; width <= 0 disables padding.
func (p Prompt) Padding(width int) int {
	if width <= 0 {
		return 0
	}
	pad := width - p.Occupied()
	if pad < 0 {
		return 0
	}
	return pad
}

// Draw renders the whole prompt. When the rows fit, the first line is
// exactly width columns wide; when they do not, nothing is truncated.
func Draw(p Prompt, f Formatter, width int) string {
	var b strings.Builder
	b.WriteString(p.Left.Render(f))
	b.WriteString(f.Reset())
	b.WriteString(strings.Repeat(" ", p.Padding(width)))
	b.WriteString(p.Right.RenderReversed(f))
	b.WriteString(f.Reset())
	b.WriteString("\n")
	b.WriteString(p.Down.Render(f))
	b.WriteString(f.Reset())
	return b.String()
}
