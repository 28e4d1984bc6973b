package render

import (
	"github.com/talgya/hexfield/internal/hex"
	"github.com/talgya/hexfield/internal/hexmap"
)

const (
	// FallbackColor paints hexes whose payload resolves to no color.
	FallbackColor = "black"
	// DefaultStrokeWidth is used when a renderer leaves StrokeWidth at zero.
	DefaultStrokeWidth = 2.0
	// TransparentBackground is the default clear color.
	TransparentBackground = "transparent"
)

// Renderer turns hex maps carrying T into draw commands.
type Renderer[T any] struct {
	Layout      hex.Layout
	Background  string         // clear color; empty means transparent
	ColorOf     func(T) string // resolves a payload to a CSS color; nil or "" falls back to black
	StrokeWidth float64
}

// NewRenderer builds a renderer with a transparent background.
func NewRenderer[T any](layout hex.Layout, colorOf func(T) string) *Renderer[T] {
	return &Renderer[T]{
		Layout:      layout,
		Background:  TransparentBackground,
		ColorOf:     colorOf,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// RenderMap returns one command per map entry, preceded by a clear command
// when clear is set. Entries follow the map's iteration order; hexes never
// overlap, so the picture does not depend on it.
func (r *Renderer[T]) RenderMap(m *hexmap.Map[T], shape Shape, clear bool) []Command {
	cmds := make([]Command, 0, m.Len()+1)
	if clear {
		bg := r.Background
		if bg == "" {
			bg = TransparentBackground
		}
		cmds = append(cmds, Command{Kind: KindClear, Color: bg})
	}
	m.ForEach(func(h hex.Hex, data T) {
		cmds = append(cmds, r.RenderHex(h, data, shape))
	})
	return cmds
}

// RenderHex returns the command drawing h with data's color.
func (r *Renderer[T]) RenderHex(h hex.Hex, data T, shape Shape) Command {
	style := Style{
		Fill:        r.resolve(data),
		StrokeWidth: r.StrokeWidth,
	}
	style.Stroke = style.Fill
	if style.StrokeWidth == 0 {
		style.StrokeWidth = DefaultStrokeWidth
	}

	if shape == ShapeCircle {
		return Command{
			Kind:   KindCircle,
			Center: r.Layout.HexToPixel(h),
			Radius: r.Layout.Size.Y / 2,
			Style:  style,
		}
	}
	corners := r.Layout.PolygonCorners(h)
	return Command{
		Kind:     KindPolygon,
		Vertices: corners[:],
		Style:    style,
	}
}

func (r *Renderer[T]) resolve(data T) string {
	if r.ColorOf == nil {
		return FallbackColor
	}
	if c := r.ColorOf(data); c != "" {
		return c
	}
	return FallbackColor
}
