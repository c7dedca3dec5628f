package canvas

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPutOverwritesInPlace(t *testing.T) {
	c := New(10, 3)
	c.Put(2, 1, "abc")
	c.Put(3, 1, "Z")
	want := []string{
		"          ",
		"  aZc     ",
		"          ",
	}
	if !reflect.DeepEqual(c.Lines(), want) {
		t.Fatalf("unexpected canvas %q", c.Lines())
	}
}

func TestPutClipsAtEdges(t *testing.T) {
	c := New(5, 2)
	c.Put(3, 0, "abcdef")
	c.Put(-2, 1, "xyz")
	c.Put(0, 5, "ignored")
	c.Put(9, 0, "ignored")
	want := []string{"   ab", "z    "}
	if !reflect.DeepEqual(c.Lines(), want) {
		t.Fatalf("unexpected canvas %q", c.Lines())
	}
}

func TestPutMultiLineBlock(t *testing.T) {
	c := New(6, 4)
	c.Put(1, 2, "ab\ncd\nef")
	if c.String() != "      \n      \n ab   \n cd   " {
		t.Fatalf("unexpected canvas %q", c.String())
	}
}

func TestPutKeepsStyledRowWidth(t *testing.T) {
	c := New(8, 1)
	c.Put(0, 0, "\x1b[1mbold\x1b[0m")
	c.Put(2, 0, "\x1b[7mXY\x1b[0m")
	line := c.Lines()[0]
	if ansi.StringWidth(line) != 8 {
		t.Fatalf("expected 8 cells, got %d in %q", ansi.StringWidth(line), line)
	}
	if ansi.Strip(line) != "boXY    " {
		t.Fatalf("unexpected text %q", ansi.Strip(line))
	}
}

func TestPutCentered(t *testing.T) {
	c := New(10, 5)
	x, y := c.PutCentered("ab\ncd")
	if x != 4 || y != 1 {
		t.Fatalf("expected (4,1), got (%d,%d)", x, y)
	}
	w, h := Size("abc\nd\n")
	if w != 3 || h != 3 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	if New(-1, -1).Height() != 0 {
		t.Fatalf("negative sizes clamp to zero")
	}
}
