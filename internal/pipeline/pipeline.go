package pipeline

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/hexfield/internal/gradient"
	"github.com/talgya/hexfield/internal/hex"
	"github.com/talgya/hexfield/internal/hexmap"
	"github.com/talgya/hexfield/internal/noise"
	"github.com/talgya/hexfield/internal/render"
)

// Tile is the payload stored per hex: the sampled value and its color.
type Tile struct {
	Value float64 // noise value after falloff, in [0, 1]
	Color string  // resolved #rrggbb
}

// TileColor resolves a tile for the renderer.
func TileColor(t Tile) string {
	return t.Color
}

// Scene is a populated map with the layout it was built for.
type Scene struct {
	Layout hex.Layout
	Map    *hexmap.Map[Tile]
}

// Build populates the map for p, coloring each hex through sampler.
// A nil sampler uses the gradient named in p.
func Build(p Params, sampler gradient.Sampler) (*Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if sampler == nil {
		g, err := p.Sampler()
		if err != nil {
			return nil, err
		}
		sampler = g
	}

	field, err := p.field()
	if err != nil {
		return nil, err
	}

	layout := p.Layout()
	kind, _ := hexmap.ParseShape(p.MapShape)
	shape := hexmap.Shape(kind, layout, p.GridRadius)

	m := hexmap.Populate(shape, func(h hex.Hex) Tile {
		n := p.value(field, layout, h)
		return Tile{Value: n, Color: sampler.Sample(n).Hex()}
	})

	slog.Debug("hex map built",
		"shape", kind,
		"radius", p.GridRadius,
		"hexes", m.Len(),
		"noise", p.Noise.Source,
	)
	return &Scene{Layout: layout, Map: m}, nil
}

// Render builds the scene for p and returns the commands that draw it,
// starting with a clear to the gradient's low end.
func Render(p Params, sampler gradient.Sampler) ([]render.Command, error) {
	if sampler == nil {
		g, err := p.Sampler()
		if err != nil {
			return nil, err
		}
		sampler = g
	}
	scene, err := Build(p, sampler)
	if err != nil {
		return nil, err
	}
	drawShape, _ := render.ParseShape(p.DrawShape)

	r := render.NewRenderer(scene.Layout, TileColor)
	r.Background = sampler.Sample(0).Hex()
	r.StrokeWidth = p.StrokeWidth
	return r.RenderMap(scene.Map, drawShape, true), nil
}

// Sampler parses the gradient named in p.
func (p Params) Sampler() (*gradient.Gradient, error) {
	space, err := gradient.ParseSpace(p.BlendSpace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	g, err := gradient.Parse(p.Gradient, space)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return g, nil
}

func (p Params) field() (noise.Func, error) {
	src, err := noise.NewSource(noise.SourceKind(p.Noise.Source), p.Noise.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	base := noise.FromSource(src)
	if p.Noise.Octaves < 2 {
		return base, nil
	}
	return noise.Octave(base, p.Noise.Octaves), nil
}

// value samples the field at h's pixel center and maps it into [0, 1].
// With falloff the value fades linearly to 0 at GridRadius hexes out.
func (p Params) value(field noise.Func, layout hex.Layout, h hex.Hex) float64 {
	pt := layout.HexToPixel(h)
	n := field((pt.X+p.Noise.OffsetX)*p.Noise.Scale, (pt.Y+p.Noise.OffsetY)*p.Noise.Scale)/2 + 0.5

	if p.Noise.Falloff && p.GridRadius > 0 {
		l := h.Fractional().Len() / float64(p.GridRadius)
		n *= 1 - l
	}
	if math.IsNaN(n) {
		return 0
	}
	return math.Min(1, math.Max(0, n))
}
