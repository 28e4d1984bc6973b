package hex

import (
	"fmt"
	"math"
)

// Point is a 2D position or size in pixel space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns p+b.
func (p Point) Add(b Point) Point {
	return Point{X: p.X + b.X, Y: p.Y + b.Y}
}

// Dist returns the euclidean distance between p and b.
func (p Point) Dist(b Point) float64 {
	return math.Hypot(p.X-b.X, p.Y-b.Y)
}

// Orientation holds the forward (F) and inverse (B) 2x2 matrices and the
// corner start angle, in sixths of a turn.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

var sqrt3 = math.Sqrt(3.0)

// Pointy is the pointy-top orientation (rows of hexes).
var Pointy = Orientation{
	F0: sqrt3, F1: sqrt3 / 2.0, F2: 0.0, F3: 3.0 / 2.0,
	B0: sqrt3 / 3.0, B1: -1.0 / 3.0, B2: 0.0, B3: 2.0 / 3.0,
	StartAngle: 0.5,
}

// Flat is the flat-top orientation (columns of hexes).
var Flat = Orientation{
	F0: 3.0 / 2.0, F1: 0.0, F2: sqrt3 / 2.0, F3: sqrt3,
	B0: 2.0 / 3.0, B1: 0.0, B2: -1.0 / 3.0, B3: sqrt3 / 3.0,
	StartAngle: 0.0,
}

// OrientationByName maps "pointy" or "flat" to its orientation.
func OrientationByName(name string) (Orientation, bool) {
	switch name {
	case "pointy", "":
		return Pointy, true
	case "flat":
		return Flat, true
	default:
		return Orientation{}, false
	}
}

// Layout maps hexes to pixels and back for one scene.
type Layout struct {
	Orientation Orientation
	Size        Point // hex radius per axis, in pixels
	Origin      Point // pixel position of Hex{0, 0}
}

// NewLayout builds a layout.
func NewLayout(o Orientation, size, origin Point) Layout {
	return Layout{Orientation: o, Size: size, Origin: origin}
}

// HexToPixel returns the pixel center of h.
func (l Layout) HexToPixel(h Hex) Point {
	return l.FractionalToPixel(h.Fractional())
}

// FractionalToPixel returns the pixel position of a fractional hex.
func (l Layout) FractionalToPixel(f FractionalHex) Point {
	m := l.Orientation
	x := (m.F0*f.Q + m.F1*f.R) * l.Size.X
	y := (m.F2*f.Q + m.F3*f.R) * l.Size.Y
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// PixelToHex returns the fractional hex under p. Round it to snap to the lattice.
func (l Layout) PixelToHex(p Point) FractionalHex {
	m := l.Orientation
	pt := Point{
		X: (p.X - l.Origin.X) / l.Size.X,
		Y: (p.Y - l.Origin.Y) / l.Size.Y,
	}
	q := m.B0*pt.X + m.B1*pt.Y
	r := m.B2*pt.X + m.B3*pt.Y
	return FractionalHex{Q: q, R: r, S: -q - r}
}

// HexAt returns the lattice hex containing p.
func (l Layout) HexAt(p Point) Hex {
	return l.PixelToHex(p).Round()
}

// HexCornerOffset returns the offset of corner in [0, 5] from a hex center.
func (l Layout) HexCornerOffset(corner int) (Point, error) {
	if corner < 0 || corner > 5 {
		return Point{}, fmt.Errorf("%w: corner %d not in [0, 5]", ErrIndexOutOfRange, corner)
	}
	return l.cornerOffset(corner), nil
}

func (l Layout) cornerOffset(corner int) Point {
	angle := 2.0 * math.Pi * (l.Orientation.StartAngle - float64(corner)) / 6.0
	return Point{X: l.Size.X * math.Cos(angle), Y: l.Size.Y * math.Sin(angle)}
}

// PolygonCorners returns the six corners of h in rotational order.
func (l Layout) PolygonCorners(h Hex) [6]Point {
	var corners [6]Point
	center := l.HexToPixel(h)
	for i := range corners {
		corners[i] = center.Add(l.cornerOffset(i))
	}
	return corners
}

// Spacing returns the pixel distance between the centers of adjacent hexes.
func (l Layout) Spacing() float64 {
	return l.HexToPixel(directions[0]).Dist(l.HexToPixel(Hex{}))
}
