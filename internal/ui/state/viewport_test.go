package state

import "testing"

func TestEnsureVisibleScrollsMinimally(t *testing.T) {
	v := Viewport{Height: 5}
	if v.EnsureVisible(3, 1, 20) {
		t.Fatalf("row already visible, offset should not change")
	}
	if !v.EnsureVisible(7, 1, 20) {
		t.Fatalf("expected scroll down")
	}
	if v.Offset != 3 {
		t.Fatalf("expected offset 3 (row 7 at the bottom), got %d", v.Offset)
	}
	if !v.EnsureVisible(1, 1, 20) {
		t.Fatalf("expected scroll up")
	}
	if v.Offset != 1 {
		t.Fatalf("expected offset 1 (row 1 at the top), got %d", v.Offset)
	}
}

func TestEnsureVisibleMultiRowBlock(t *testing.T) {
	v := Viewport{Height: 6}
	v.EnsureVisible(4, 3, 30)
	if v.Offset != 1 {
		t.Fatalf("expected block rows 4-6 to end at the bottom, got offset %d", v.Offset)
	}
	v.EnsureVisible(10, 8, 30)
	if v.Offset != 10 {
		t.Fatalf("expected tall block aligned to its top, got offset %d", v.Offset)
	}
}

func TestEnsureVisibleClampsToContent(t *testing.T) {
	v := Viewport{Height: 10, Offset: 8}
	v.EnsureVisible(2, 1, 12)
	if v.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", v.Offset)
	}
	v = Viewport{Height: 10, Offset: 5}
	v.EnsureVisible(6, 1, 4)
	if v.Offset != 0 {
		t.Fatalf("content shorter than the viewport never scrolls, got %d", v.Offset)
	}
	v = Viewport{Offset: 3}
	v.EnsureVisible(9, 1, 20)
	if v.Offset != 0 {
		t.Fatalf("zero-height viewport resets the offset, got %d", v.Offset)
	}
}

func TestResizeAndVisible(t *testing.T) {
	v := Viewport{Height: 4, Offset: 10}
	v.Resize(8, 12)
	if v.Offset != 4 {
		t.Fatalf("expected offset clamped to 4, got %d", v.Offset)
	}
	if !v.Visible(4) || !v.Visible(11) || v.Visible(12) || v.Visible(3) {
		t.Fatalf("unexpected visibility for offset %d height %d", v.Offset, v.Height)
	}
	v.Resize(-1, 12)
	if v.Height != 0 || v.Offset != 0 {
		t.Fatalf("negative height should collapse the viewport, got %+v", v)
	}
}
