// Package render turns a populated hex map into draw commands for an
// external drawing surface. It owns no pixels.
package render

import (
	"fmt"

	"github.com/talgya/hexfield/internal/hex"
)

// Shape selects how each hex is drawn.
type Shape uint8

const (
	ShapeHexagon Shape = iota // six-corner polygon
	ShapeCircle               // disc at the hex center
)

// ParseShape maps "hexagon" or "circle" to a Shape; empty means hexagon.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "hexagon", "":
		return ShapeHexagon, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return 0, fmt.Errorf("unknown draw shape %q", name)
	}
}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeHexagon:
		return "hexagon"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Kind distinguishes draw commands.
type Kind uint8

const (
	KindClear Kind = iota
	KindPolygon
	KindCircle
)

// Style is the paint applied to a shape: filled, then stroked.
type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Command is one fully specified draw primitive.
type Command struct {
	Kind     Kind        `json:"kind"`
	Vertices []hex.Point `json:"vertices,omitempty"` // polygon only
	Center   hex.Point   `json:"center"`             // circle only
	Radius   float64     `json:"radius,omitempty"`   // circle only
	Color    string      `json:"color,omitempty"`    // clear only
	Style    Style       `json:"style"`
}

// Surface is the drawing collaborator. Implementations paint with standard
// path fill and stroke semantics.
type Surface interface {
	Clear(color string)
	Polygon(vertices []hex.Point, style Style)
	Circle(center hex.Point, radius float64, style Style)
}

// Replay sends every command to s in order.
func Replay(s Surface, cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case KindClear:
			s.Clear(c.Color)
		case KindPolygon:
			s.Polygon(c.Vertices, c.Style)
		case KindCircle:
			s.Circle(c.Center, c.Radius, c.Style)
		}
	}
}
