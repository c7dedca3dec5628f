package focus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectHelpers(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}
	require.Equal(t, Point{X: 25, Y: 40}, r.Center())
	require.Equal(t, 40.0, r.Right())
	require.Equal(t, 60.0, r.Bottom())
	require.False(t, r.Empty())
	require.True(t, Rect{Width: 10}.Empty())
}

func TestGridGeometry(t *testing.T) {
	g := GridGeometry{CellWidth: 100, CellHeight: 50}
	r, ok := g.Bounds(Element{ID: "x", Row: 2, Col: 1})
	require.True(t, ok)
	require.Equal(t, Rect{Left: 100, Top: 100, Width: 100, Height: 50}, r)

	_, ok = g.Bounds(Element{ID: "hidden", Row: -1})
	require.False(t, ok)
}

func TestGeometryFuncNil(t *testing.T) {
	var f GeometryFunc
	_, ok := f.Bounds(Element{ID: "a"})
	require.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}
	_, err := ParseDirection("sideways")
	require.Error(t, err)
	require.True(t, Up.Vertical())
	require.False(t, Left.Vertical())
}
