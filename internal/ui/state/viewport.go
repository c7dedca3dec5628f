package state

// Viewport is the vertical scroll window of a screen's content area, in
// rows.
type Viewport struct {
	Offset int
	Height int
}

// Resize changes the visible height and clamps the offset to total rows.
func (v *Viewport) Resize(height, total int) {
	if height < 0 {
		height = 0
	}
	v.Height = height
	if height == 0 {
		v.Offset = 0
		return
	}
	v.clamp(total)
}

// EnsureVisible scrolls the minimal amount so that the rows [top, top+size)
// are on screen. Blocks taller than the viewport are aligned to their top.
// It reports whether the offset changed.
func (v *Viewport) EnsureVisible(top, size, total int) bool {
	old := v.Offset
	if v.Height <= 0 {
		v.Offset = 0
		return old != v.Offset
	}
	if size < 1 {
		size = 1
	}
	v.clamp(total)
	if top < v.Offset {
		v.Offset = top
	}
	bottom := top + size - 1
	if bottom > v.Offset+v.Height-1 {
		v.Offset = bottom - v.Height + 1
	}
	if size > v.Height {
		v.Offset = top
	}
	v.clamp(total)
	return old != v.Offset
}

// Visible reports whether row is inside the window.
func (v Viewport) Visible(row int) bool {
	return row >= v.Offset && row < v.Offset+v.Height
}

func (v *Viewport) clamp(total int) {
	maxOffset := total - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
