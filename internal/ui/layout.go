package ui

import (
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/format/canvas"
)

// box is an element's position in cells, relative to the area it is laid
// out in.
type box struct {
	x, y, w, h int
}

func (b box) rect(dx, dy int) focus.Rect {
	return focus.Rect{
		Left:   float64(b.x + dx),
		Top:    float64(b.y + dy),
		Width:  float64(b.w),
		Height: float64(b.h),
	}
}

// node is a focusable element together with where and how it is drawn.
type node struct {
	el   focus.Element
	box  box
	draw func(focused bool) string
}

// label is non-focusable text placed in the layout.
type label struct {
	x, y int
	text string
}

// layout is the result of laying out one screen or modal. The same boxes
// are painted by the view and reported to the focus engine as geometry.
type layout struct {
	nodes  []node
	byID   map[string]int
	labels []label
	width  int
	height int
}

func newLayout(width int) *layout {
	return &layout{byID: make(map[string]int), width: width}
}

func (l *layout) add(el focus.Element, b box, draw func(bool) string) {
	if i, ok := l.byID[el.ID]; ok {
		l.nodes[i] = node{el: el, box: b, draw: draw}
	} else {
		l.byID[el.ID] = len(l.nodes)
		l.nodes = append(l.nodes, node{el: el, box: b, draw: draw})
	}
	l.grow(b.y + b.h)
}

func (l *layout) text(x, y int, s string) {
	l.labels = append(l.labels, label{x: x, y: y, text: s})
	_, h := canvas.Size(s)
	l.grow(y + h)
}

func (l *layout) grow(bottom int) {
	if bottom > l.height {
		l.height = bottom
	}
}

func (l *layout) box(id string) (box, bool) {
	if l == nil {
		return box{}, false
	}
	i, ok := l.byID[id]
	if !ok {
		return box{}, false
	}
	return l.nodes[i].box, true
}

func (l *layout) elements() []focus.Element {
	if l == nil {
		return nil
	}
	out := make([]focus.Element, len(l.nodes))
	for i, n := range l.nodes {
		out[i] = n.el
	}
	return out
}
