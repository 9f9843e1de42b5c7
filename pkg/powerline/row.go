package powerline

import "strings"

// Row is an append-only sequence of segments. Append returns a new Row and
// leaves the receiver untouched.
type Row struct {
	segments []Segment
}

// NewRow builds a row from segs in order.
func NewRow(segs ...Segment) Row {
	var r Row
	for _, s := range segs {
		r = r.Append(s)
	}
	return r
}

// Append returns a copy of r with s added at the end.
func (r Row) Append(s Segment) Row {
	out := make([]Segment, len(r.segments), len(r.segments)+1)
	copy(out, r.segments)
	return Row{segments: append(out, s)}
}

// Len returns the number of segments.
func (r Row) Len() int { return len(r.segments) }

// Segments returns a copy of the segments in append order.
func (r Row) Segments() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Width sums the widths of all segments.
func (r Row) Width() int {
	total := 0
	for _, s := range r.segments {
		total += s.Width()
	}
	return total
}

// Render draws the row left to right, each separator taking the background
// of the segment after it. An empty row renders as "".
func (r Row) Render(f Formatter) string {
	var b strings.Builder
	for i := range r.segments {
		var next *Segment
		if i+1 < len(r.segments) {
			next = &r.segments[i+1]
		}
		b.WriteString(r.segments[i].Render(f, next))
	}
	return b.String()
}

// RenderReversed draws the row in reverse append order, so the last
// appended segment is leftmost. Each segment's separator sits on the
// background of the segment displayed to its left, which is the one
// appended after it; the leftmost segment has no such neighbor.
func (r Row) RenderReversed(f Formatter) string {
	var b strings.Builder
	for i := len(r.segments) - 1; i >= 0; i-- {
		var next *Segment
		if i+1 < len(r.segments) {
			next = &r.segments[i+1]
		}
		b.WriteString(r.segments[i].Render(f, next))
	}
	return b.String()
}
