package hex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
}

func TestHexToPixelPointy(t *testing.T) {
	l := NewLayout(Pointy, Point{X: 10, Y: 10}, Point{X: 0, Y: 0})
	p := l.HexToPixel(Axial(1, 0))
	assertPoint(t, Point{X: 10 * Pointy.F0, Y: 10 * Pointy.F2}, p)
	assert.InDelta(t, 17.3205, p.X, 1e-4)
	assert.InDelta(t, 0.0, p.Y, tol)

	assertPoint(t, Point{X: 0, Y: 0}, l.HexToPixel(Axial(0, 0)))
	assertPoint(t, Point{X: 5 * sqrt3, Y: 15}, l.HexToPixel(Axial(0, 1)))
}

func TestHexToPixelOrigin(t *testing.T) {
	l := NewLayout(Flat, Point{X: 4, Y: 6}, Point{X: 100, Y: 50})
	assertPoint(t, Point{X: 100, Y: 50}, l.HexToPixel(Axial(0, 0)))
	assertPoint(t, Point{X: 100 + 6, Y: 50 + 6*sqrt3/2}, l.HexToPixel(Axial(1, 0)))
}

func TestLayoutRoundTrip(t *testing.T) {
	layouts := []Layout{
		NewLayout(Pointy, Point{X: 10, Y: 15}, Point{X: 35, Y: 71}),
		NewLayout(Flat, Point{X: 10, Y: 15}, Point{X: 35, Y: 71}),
		NewLayout(Pointy, Point{X: 1, Y: 1}, Point{X: 0, Y: 0}),
	}
	for _, l := range layouts {
		for _, h := range Spiral(Axial(0, 0), 8) {
			f := l.PixelToHex(l.HexToPixel(h))
			assert.InDelta(t, float64(h.Q), f.Q, 1e-9)
			assert.InDelta(t, float64(h.R), f.R, 1e-9)
			assert.InDelta(t, float64(h.S()), f.S, 1e-9)
			assert.Equal(t, h, f.Round())
			assert.Equal(t, h, l.HexAt(l.HexToPixel(h)))
		}
	}
}

func TestHexCornerOffset(t *testing.T) {
	l := NewLayout(Flat, Point{X: 10, Y: 10}, Point{})
	c, err := l.HexCornerOffset(0)
	require.NoError(t, err)
	assertPoint(t, Point{X: 10, Y: 0}, c)

	_, err = l.HexCornerOffset(6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.HexCornerOffset(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPolygonCorners(t *testing.T) {
	for _, o := range []Orientation{Pointy, Flat} {
		l := NewLayout(o, Point{X: 12, Y: 12}, Point{X: 3, Y: -4})
		h := Axial(2, -5)
		center := l.HexToPixel(h)
		corners := l.PolygonCorners(h)
		require.Len(t, corners, 6)
		for i, c := range corners {
			assert.InDelta(t, 12.0, c.Dist(center), tol)
			// a regular hexagon's side equals its circumradius
			next := corners[(i+1)%6]
			assert.InDelta(t, 12.0, c.Dist(next), tol)
		}
	}
}

func TestPolygonCornersPointyTop(t *testing.T) {
	l := NewLayout(Pointy, Point{X: 10, Y: 10}, Point{})
	corners := l.PolygonCorners(Axial(0, 0))
	// corner 0 sits at +30°; corner 5 is the bottom tip (pixel y grows downward)
	assertPoint(t, Point{X: 10 * math.Cos(math.Pi/6), Y: 10 * math.Sin(math.Pi/6)}, corners[0])
	assertPoint(t, Point{X: 0, Y: 10}, corners[5])
}

func TestSpacing(t *testing.T) {
	assert.InDelta(t, 10*sqrt3, NewLayout(Pointy, Point{X: 10, Y: 10}, Point{}).Spacing(), tol)
	assert.InDelta(t, 10*sqrt3, NewLayout(Flat, Point{X: 10, Y: 10}, Point{X: 5, Y: 5}).Spacing(), tol)
}

func TestOrientationByName(t *testing.T) {
	o, ok := OrientationByName("flat")
	assert.True(t, ok)
	assert.Equal(t, Flat, o)
	o, ok = OrientationByName("pointy")
	assert.True(t, ok)
	assert.Equal(t, Pointy, o)
	_, ok = OrientationByName("diagonal")
	assert.False(t, ok)
}
