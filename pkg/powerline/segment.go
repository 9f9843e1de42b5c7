// Package powerline renders powerline-style prompt rows: colored segments
// chained by directional separator glyphs, a left row and a right row padded
// to the terminal width, and an indicator row on the line below.
package powerline

import (
	"strings"
	"unicode/utf8"
)

// Alignment selects which side of a segment its separator is drawn on.
type Alignment int

const (
	// AlignLeft draws content first and the separator after it.
	AlignLeft Alignment = iota
	// AlignRight draws the separator first and the content after it.
	AlignRight
)

// Segment is one colored block of prompt text followed (or, when right
// aligned, preceded) by a separator glyph. Segments are immutable once built.
type Segment struct {
	content   string
	fg        Color
	bg        Color
	separator string
	sepFg     Color
	sepFgSet  bool
	align     Alignment
}

// Option customizes a Segment at construction time.
type Option func(*Segment)

// WithSeparatorColor colors the separator glyph with c instead of the
// segment's own background.
func WithSeparatorColor(c Color) Option {
	return func(s *Segment) {
		s.sepFg = c
		s.sepFgSet = true
	}
}

// Right marks the segment as belonging to a right-aligned row.
func Right() Option {
	return func(s *Segment) {
		s.align = AlignRight
	}
}

// NewSegment builds a segment. content is rendered verbatim, so callers
// supply their own padding spaces.
func NewSegment(content string, fg, bg Color, separator string, opts ...Option) Segment {
	s := Segment{
		content:   content,
		fg:        fg,
		bg:        bg,
		separator: separator,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Content returns the segment text.
func (s Segment) Content() string { return s.content }

// Foreground returns the text color.
func (s Segment) Foreground() Color { return s.fg }

// Background returns the fill color.
func (s Segment) Background() Color { return s.bg }

// Separator returns the separator glyph.
func (s Segment) Separator() string { return s.separator }

// Alignment reports whether the segment is left or right aligned.
func (s Segment) Alignment() Alignment { return s.align }

// SeparatorForeground returns the color of the separator glyph, which is the
// segment background unless overridden.
func (s Segment) SeparatorForeground() Color {
	if s.sepFgSet {
		return s.sepFg
	}
	return s.bg
}

// Width is the number of runes the segment occupies on screen. Wide and
// zero-width glyphs are counted as one column each.
func (s Segment) Width() int {
	return utf8.RuneCountInString(s.content) + utf8.RuneCountInString(s.separator)
}

// Render draws the segment. next is the neighbor whose background the
// separator is drawn on; nil means the separator sits on the terminal's
// default background.
func (s Segment) Render(f Formatter, next *Segment) string {
	sepBg := f.Reset()
	if next != nil {
		sepBg = f.Bg(next.bg)
	}

	var b strings.Builder
	if s.align == AlignRight {
		b.WriteString(sepBg)
		b.WriteString(f.Fg(s.SeparatorForeground()))
		b.WriteString(s.separator)
		b.WriteString(f.Fg(s.fg))
		b.WriteString(f.Bg(s.bg))
		b.WriteString(s.content)
		return b.String()
	}

	b.WriteString(f.Fg(s.fg))
	b.WriteString(f.Bg(s.bg))
	b.WriteString(s.content)
	b.WriteString(sepBg)
	b.WriteString(f.Fg(s.SeparatorForeground()))
	b.WriteString(s.separator)
	return b.String()
}
