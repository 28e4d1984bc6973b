// Package hex provides cube-coordinate hex algebra, coordinate conversions
// and the layout transform between hex space and pixel space.
// Uses axial storage (q, r) for lattice hexes; s is always derived.
package hex

import (
	"fmt"
	"log/slog"
	"math"
)

// Hex is a lattice position on the hex grid.
// The third cube coordinate s is derived: s = -q - r, so q+r+s=0 always holds.
type Hex struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Axial builds a hex from its two stored coordinates.
func Axial(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// NewHex builds a hex from all three cube coordinates.
// Fails with ErrInvalidCoordinate when q+r+s != 0.
func NewHex(q, r, s int) (Hex, error) {
	if q+r+s != 0 {
		return Hex{}, fmt.Errorf("%w: q+r+s must be 0, got (%d, %d, %d)", ErrInvalidCoordinate, q, r, s)
	}
	return Hex{Q: q, R: r}, nil
}

// String returns the hex in cube form.
func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d, %d, %d)", h.Q, h.R, h.S())
}

// directions are the six unit vectors, counter-clockwise from +q.
var directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// diagonals are the six "second ring" vectors between adjacent directions.
var diagonals = [6]Hex{
	{Q: 2, R: -1},
	{Q: 1, R: -2},
	{Q: -1, R: -1},
	{Q: -2, R: 1},
	{Q: -1, R: 2},
	{Q: 1, R: 1},
}

// Add returns h+b.
func (h Hex) Add(b Hex) Hex {
	return Hex{Q: h.Q + b.Q, R: h.R + b.R}
}

// Subtract returns h-b.
func (h Hex) Subtract(b Hex) Hex {
	return Hex{Q: h.Q - b.Q, R: h.R - b.R}
}

// Scale multiplies every coordinate by k.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// RotateLeft rotates 60° counter-clockwise about the origin.
// To rotate about another hex, subtract it first and add it back after.
func (h Hex) RotateLeft() Hex {
	return Hex{Q: -h.S(), R: -h.Q}
}

// RotateRight rotates 60° clockwise about the origin.
func (h Hex) RotateRight() Hex {
	return Hex{Q: -h.R, R: -h.S()}
}

// Direction returns the unit vector for direction d in [0, 6).
func Direction(d int) (Hex, error) {
	if d < 0 || d >= len(directions) {
		return Hex{}, fmt.Errorf("%w: direction %d not in [0, 6)", ErrIndexOutOfRange, d)
	}
	return directions[d], nil
}

// DiagonalDirection returns the diagonal vector for direction d in [0, 6).
func DiagonalDirection(d int) (Hex, error) {
	if d < 0 || d >= len(diagonals) {
		return Hex{}, fmt.Errorf("%w: diagonal %d not in [0, 6)", ErrIndexOutOfRange, d)
	}
	return diagonals[d], nil
}

// Neighbor returns the adjacent hex in direction d.
func (h Hex) Neighbor(d int) (Hex, error) {
	dir, err := Direction(d)
	if err != nil {
		return Hex{}, err
	}
	return h.Add(dir), nil
}

// DiagonalNeighbor returns the hex two steps away between directions d and d+1.
func (h Hex) DiagonalNeighbor(d int) (Hex, error) {
	dir, err := DiagonalDirection(d)
	if err != nil {
		return Hex{}, err
	}
	return h.Add(dir), nil
}

// Neighbors returns the six adjacent hexes in direction order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Len returns the grid distance from the origin.
func (h Hex) Len() int {
	return (abs(h.Q) + abs(h.R) + abs(h.S())) / 2
}

// Distance returns the grid distance between h and b.
func (h Hex) Distance(b Hex) int {
	return h.Subtract(b).Len()
}

// Fractional lifts h into fractional space.
func (h Hex) Fractional() FractionalHex {
	return FractionalHex{Q: float64(h.Q), R: float64(h.R), S: float64(h.S())}
}

// Lerp interpolates between h and b. t outside [0, 1] extrapolates.
func (h Hex) Lerp(b Hex, t float64) FractionalHex {
	return h.Fractional().Lerp(b.Fractional(), t)
}

// lineNudge breaks ties when a line passes exactly between two hexes.
var lineNudge = FractionalHex{Q: 1e-6, R: 1e-6, S: -2e-6}

// LineDraw returns the Distance(b)+1 hexes on the straight line from h to b,
// both ends included.
func (h Hex) LineDraw(b Hex) []Hex {
	n := h.Distance(b)
	aNudge := h.Fractional().Add(lineNudge)
	bNudge := b.Fractional().Add(lineNudge)
	step := 1.0 / float64(max(n, 1))

	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		results = append(results, aNudge.Lerp(bNudge, step*float64(i)).Round())
	}
	return results
}

// FractionalHex is a hex position off the lattice, produced by interpolation
// or by the pixel inverse transform. Round snaps it back.
type FractionalHex struct {
	Q float64 `json:"q"`
	R float64 `json:"r"`
	S float64 `json:"s"`
}

// Add returns f+b.
func (f FractionalHex) Add(b FractionalHex) FractionalHex {
	return FractionalHex{Q: f.Q + b.Q, R: f.R + b.R, S: f.S + b.S}
}

// Lerp interpolates every coordinate between f and b.
func (f FractionalHex) Lerp(b FractionalHex, t float64) FractionalHex {
	return FractionalHex{
		Q: f.Q*(1-t) + b.Q*t,
		R: f.R*(1-t) + b.R*t,
		S: f.S*(1-t) + b.S*t,
	}
}

// Len returns the fractional distance from the origin.
// A non-finite result is reported and treated as 0.
func (f FractionalHex) Len() float64 {
	l := (math.Abs(f.Q) + math.Abs(f.R) + math.Abs(f.S)) / 2
	if math.IsNaN(l) || math.IsInf(l, 0) {
		slog.Warn("degenerate hex length",
			"error", ErrDegenerateGeometry,
			"q", f.Q, "r", f.R, "s", f.S,
		)
		return 0
	}
	return l
}

// Distance returns the fractional distance between f and b.
func (f FractionalHex) Distance(b FractionalHex) float64 {
	return FractionalHex{Q: f.Q - b.Q, R: f.R - b.R, S: f.S - b.S}.Len()
}

// Round returns the nearest lattice hex. The component with the largest
// rounding error is rebuilt from the other two (q first, then r, else s).
func (f FractionalHex) Round() Hex {
	qi := math.Round(f.Q)
	ri := math.Round(f.R)
	si := math.Round(f.S)
	qDiff := math.Abs(qi - f.Q)
	rDiff := math.Abs(ri - f.R)
	sDiff := math.Abs(si - f.S)

	if qDiff > rDiff && qDiff > sDiff {
		qi = -ri - si
	} else if rDiff > sDiff {
		ri = -qi - si
	}
	// s is never stored, so the remaining case needs no fix-up.
	return Hex{Q: int(qi), R: int(ri)}
}

// String returns the fractional hex in cube form.
func (f FractionalHex) String() string {
	return fmt.Sprintf("FractionalHex(%g, %g, %g)", f.Q, f.R, f.S)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
