// Package canvas composes styled text blocks at cell positions. Screens lay
// out their elements at known coordinates, and the same coordinates feed the
// focus engine's geometry, so what is navigated is exactly what is drawn.
package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of terminal cells, stored as one string per
// row. Every row is always exactly Width cells wide.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Put draws block with its top-left corner at (x, y), overwriting what is
// underneath. Multi-line blocks are drawn row by row; anything outside the
// canvas is clipped.
func (c *Canvas) Put(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		c.putLine(x, y+i, line)
	}
}

// PutCentered draws block in the middle of the canvas and returns the
// position it used.
func (c *Canvas) PutCentered(block string) (x, y int) {
	w, h := Size(block)
	x = (c.width - w) / 2
	y = (c.height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c.Put(x, y, block)
	return x, y
}

// Lines returns a copy of the rows.
func (c *Canvas) Lines() []string {
	return append([]string(nil), c.lines...)
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func (c *Canvas) putLine(x, y int, s string) {
	if y < 0 || y >= c.height || x >= c.width {
		return
	}
	if x < 0 {
		s = ansi.Cut(s, -x, -x+c.width)
		x = 0
	}
	s = ansi.Truncate(s, c.width-x, "")
	w := ansi.StringWidth(s)
	if w == 0 {
		return
	}
	line := c.lines[y]
	c.lines[y] = ansi.Cut(line, 0, x) + s + ansi.Cut(line, x+w, c.width)
}

// Size returns the width of the widest row and the number of rows in block.
func Size(block string) (width, height int) {
	lines := strings.Split(block, "\n")
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}
