package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Region is a rectangular area of the screen, in cells. X and Y are the
// top-left corner, zero-based.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the region has no drawable area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns the region shrunk by n cells on every side. The result is
// clamped to an empty region rather than inverting.
func (r Region) Inset(n int) Region {
	r.X += n
	r.Y += n
	r.Width -= 2 * n
	r.Height -= 2 * n
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Buffer is a line-oriented frame buffer. Lines may contain ANSI escape
// sequences; all positioning and clipping is done in visible columns.
type Buffer struct {
	width  int
	height int
	lines  []string
}

// NewBuffer returns an empty buffer of the given size. Non-positive
// dimensions are clamped to zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		lines:  make([]string, height),
	}
}

// Size returns the buffer dimensions in cells.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Region returns the full drawable area of the buffer.
func (b *Buffer) Region() Region {
	return Region{Width: b.width, Height: b.height}
}

// Line returns row y as stored, without trailing padding. Out-of-range rows
// return the empty string.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return b.lines[y]
}

// Clear empties every row.
func (b *Buffer) Clear() {
	for i := range b.lines {
		b.lines[i] = ""
	}
}

// SetString splices s into row y starting at column x, overwriting whatever
// was there. The string must be a single line; it is clipped to the buffer
// edges. Styled (ANSI-escaped) strings are handled by visible width.
func (b *Buffer) SetString(x, y int, s string) {
	if y < 0 || y >= b.height || x >= b.width || s == "" {
		return
	}
	if x < 0 {
		s = ansi.TruncateLeft(s, -x, "")
		x = 0
	}
	w := ansi.StringWidth(s)
	if w == 0 {
		return
	}
	if x+w > b.width {
		s = ansi.Truncate(s, b.width-x, "")
		w = b.width - x
	}

	line := b.lines[y]
	lineWidth := ansi.StringWidth(line)

	var left string
	if x > 0 {
		left = ansi.Truncate(line, x, "")
		if lineWidth < x {
			left += strings.Repeat(" ", x-lineWidth)
		}
	}
	var right string
	if lineWidth > x+w {
		right = ansi.TruncateLeft(line, x+w, "")
	}
	b.lines[y] = left + s + right
}

// SetLines writes each line of block into region, top-aligned and clipped to
// the region bounds. Convenient for views that compose a whole frame as a
// multi-line string (lipgloss output, Bubble Tea model views).
func (b *Buffer) SetLines(region Region, block string) {
	if region.Empty() {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		if i >= region.Height {
			break
		}
		if ansi.StringWidth(line) > region.Width {
			line = ansi.Truncate(line, region.Width, "")
		}
		b.SetString(region.X, region.Y+i, line)
	}
}
