// Package gradient maps a scalar in [0, 1] to a color through sorted stops.
package gradient

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrNoStops        = errors.New("gradient has no stops")
	ErrUnsortedStops  = errors.New("gradient stops not sorted by position")
	ErrStopOutOfRange = errors.New("gradient stop position outside [0, 1]")
	ErrUnknownSpace   = errors.New("unknown blend space")
)

// Sampler maps t in [0, 1] to a color.
type Sampler interface {
	Sample(t float64) colorful.Color
}

// Space selects the color space stops are blended in.
type Space string

const (
	SpaceRGB Space = "rgb"
	SpaceLab Space = "lab"
	SpaceHCL Space = "hcl"
	SpaceLuv Space = "luv"
)

// ParseSpace validates a blend space name; empty means rgb.
func ParseSpace(name string) (Space, error) {
	switch s := Space(name); s {
	case SpaceRGB, SpaceLab, SpaceHCL, SpaceLuv:
		return s, nil
	case "":
		return SpaceRGB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSpace, name)
	}
}

// Stop pins a color at a position in [0, 1].
type Stop struct {
	Position float64
	Color    colorful.Color
}

// Gradient is an immutable, validated list of stops.
type Gradient struct {
	stops []Stop
	space Space
}

// New validates stops and builds a gradient. Stops must be sorted ascending
// by position; equal positions are allowed and give a hard edge.
func New(space Space, stops ...Stop) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	space, err := ParseSpace(string(space))
	if err != nil {
		return nil, err
	}
	for i, s := range stops {
		if s.Position < 0 || s.Position > 1 {
			return nil, fmt.Errorf("%w: stop %d at %g", ErrStopOutOfRange, i, s.Position)
		}
		if i > 0 && s.Position < stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d at %g follows %g", ErrUnsortedStops, i, s.Position, stops[i-1].Position)
		}
	}
	own := make([]Stop, len(stops))
	copy(own, stops)
	return &Gradient{stops: own, space: space}, nil
}

// Stops returns a copy of the gradient's stops.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Sample returns the color at t. Values at or before the first stop take its
// color; values at or beyond the last stop take the last color.
func (g *Gradient) Sample(t float64) colorful.Color {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if math.IsNaN(t) || t <= first.Position {
		return first.Color
	}
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(g.stops); i++ {
		right := g.stops[i]
		if t >= right.Position {
			continue
		}
		left := g.stops[i-1]
		span := right.Position - left.Position
		if span <= 0 {
			return right.Color
		}
		return g.blend(left.Color, right.Color, (t-left.Position)/span)
	}
	return last.Color
}

func (g *Gradient) blend(a, b colorful.Color, t float64) colorful.Color {
	switch g.space {
	case SpaceLab:
		return a.BlendLab(b, t).Clamped()
	case SpaceHCL:
		return a.BlendHcl(b, t).Clamped()
	case SpaceLuv:
		return a.BlendLuv(b, t).Clamped()
	default:
		return a.BlendRgb(b, t)
	}
}
