package hexmap

import (
	"fmt"
	"math"

	"github.com/talgya/hexfield/internal/hex"
)

// ShapeKind names a population strategy.
type ShapeKind string

const (
	ShapeHexagon       ShapeKind = "hexagon"
	ShapeCircle        ShapeKind = "circle"
	ShapeParallelogram ShapeKind = "parallelogram"
	ShapeTriangle      ShapeKind = "triangle"
	ShapeRectangle     ShapeKind = "rectangle"
)

// ParseShape validates a shape name.
func ParseShape(name string) (ShapeKind, error) {
	switch k := ShapeKind(name); k {
	case ShapeHexagon, ShapeCircle, ShapeParallelogram, ShapeTriangle, ShapeRectangle:
		return k, nil
	case "":
		return ShapeHexagon, nil
	default:
		return "", fmt.Errorf("unknown map shape %q", name)
	}
}

// Shape returns the hexes for kind at the given radius. Radius-based shapes
// are centered on the origin; rectangle and parallelogram span 2*radius+1
// hexes per side around it.
func Shape(kind ShapeKind, layout hex.Layout, radius int) []hex.Hex {
	switch kind {
	case ShapeCircle:
		return Circle(layout, radius)
	case ShapeParallelogram:
		return Parallelogram(-radius, radius, -radius, radius)
	case ShapeTriangle:
		return Triangle(radius)
	case ShapeRectangle:
		return Rectangle(layout.Orientation, -radius, radius, -radius, radius)
	default:
		return Hexagon(radius)
	}
}

// Hexagon returns every hex within radius of the origin, inclusive.
// The result holds exactly 3R²+3R+1 hexes; negative radius gives none.
func Hexagon(radius int) []hex.Hex {
	if radius < 0 {
		return nil
	}
	res := make([]hex.Hex, 0, 3*radius*radius+3*radius+1)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			res = append(res, hex.Axial(q, r))
		}
	}
	return res
}

// Circle returns the hexes whose pixel center lies within radius
// center-to-center spacings of the origin hex. Candidates come from the
// smallest hexagon shape that contains the whole disc.
func Circle(layout hex.Layout, radius int) []hex.Hex {
	if radius < 0 {
		return nil
	}
	center := layout.HexToPixel(hex.Hex{})
	limit := float64(radius) * layout.Spacing()
	// a hair of slack keeps hexes sitting exactly on the limit
	limit += limit * 1e-9

	// the inscribed circle of Hexagon(n) has radius n*sqrt(3)/2 spacings
	outer := int(math.Ceil(float64(radius) * 2 / math.Sqrt(3)))

	var res []hex.Hex
	for _, h := range Hexagon(outer) {
		if layout.HexToPixel(h).Dist(center) <= limit {
			res = append(res, h)
		}
	}
	return res
}

// Parallelogram returns hexes with q in [q1, q2] and r in [r1, r2].
func Parallelogram(q1, q2, r1, r2 int) []hex.Hex {
	var res []hex.Hex
	for q := q1; q <= q2; q++ {
		for r := r1; r <= r2; r++ {
			res = append(res, hex.Axial(q, r))
		}
	}
	return res
}

// Triangle returns the triangle with corners at the origin, (size, 0) and (0, size).
func Triangle(size int) []hex.Hex {
	var res []hex.Hex
	for q := 0; q <= size; q++ {
		for r := 0; r <= size-q; r++ {
			res = append(res, hex.Axial(q, r))
		}
	}
	return res
}

// Rectangle returns a screen-aligned rectangle spanning [left, right] x
// [top, bottom] in offset terms: rows for pointy-top, columns for flat-top.
func Rectangle(o hex.Orientation, left, right, top, bottom int) []hex.Hex {
	var res []hex.Hex
	if o == hex.Flat {
		for q := left; q <= right; q++ {
			shift := floorDiv(q, 2)
			for r := top - shift; r <= bottom-shift; r++ {
				res = append(res, hex.Axial(q, r))
			}
		}
		return res
	}
	for r := top; r <= bottom; r++ {
		shift := floorDiv(r, 2)
		for q := left - shift; q <= right-shift; q++ {
			res = append(res, hex.Axial(q, r))
		}
	}
	return res
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
