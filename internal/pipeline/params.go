// Package pipeline wires layout, shape population, noise and a gradient into
// a single render(params) -> draw commands call. It holds no state between
// calls; hosts re-run it whenever a parameter changes.
package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/talgya/hexfield/internal/gradient"
	"github.com/talgya/hexfield/internal/hex"
	"github.com/talgya/hexfield/internal/hexmap"
	"github.com/talgya/hexfield/internal/noise"
	"github.com/talgya/hexfield/internal/render"
)

// ErrInvalidParams reports parameters the pipeline cannot render.
var ErrInvalidParams = errors.New("invalid render parameters")

// Params holds every input of a render.
type Params struct {
	Width       int     `yaml:"width"`        // canvas width in pixels
	Height      int     `yaml:"height"`       // canvas height in pixels
	Orientation string  `yaml:"orientation"`  // "pointy" or "flat"
	HexSize     float64 `yaml:"hex_size"`     // hex radius in pixels
	GridRadius  int     `yaml:"grid_radius"`  // map radius in hexes
	MapShape    string  `yaml:"map_shape"`    // population strategy, see hexmap.ShapeKind
	DrawShape   string  `yaml:"draw_shape"`   // "hexagon" or "circle"
	StrokeWidth float64 `yaml:"stroke_width"` // 0 draws at render.DefaultStrokeWidth

	Noise NoiseParams `yaml:"noise"`

	Gradient   string `yaml:"gradient"`    // CSS linear-gradient
	BlendSpace string `yaml:"blend_space"` // rgb, lab, hcl or luv
}

// NoiseParams controls how the noise field is sampled at each hex center.
type NoiseParams struct {
	Source  string  `yaml:"source"` // see noise.SourceKind
	Seed    int64   `yaml:"seed"`
	Scale   float64 `yaml:"scale"`    // pixel to noise-space factor
	OffsetX float64 `yaml:"offset_x"` // pixel offset added before scaling
	OffsetY float64 `yaml:"offset_y"`
	Octaves int     `yaml:"octaves"` // below 2 samples the base field directly
	Falloff bool    `yaml:"falloff"` // fade toward the map edge
}

// DefaultParams returns the editor's starting configuration.
func DefaultParams() Params {
	return Params{
		Width:       700,
		Height:      700,
		Orientation: "pointy",
		HexSize:     10,
		GridRadius:  20,
		MapShape:    string(hexmap.ShapeHexagon),
		DrawShape:   "hexagon",
		StrokeWidth: render.DefaultStrokeWidth,
		Noise: NoiseParams{
			Source:  string(noise.SourceReference),
			Scale:   0.04,
			Octaves: 1,
			Falloff: true,
		},
		Gradient:   "linear-gradient(90deg, rgba(0,0,0,1) 0%, rgba(255,255,255,1) 100%)",
		BlendSpace: string(gradient.SpaceRGB),
	}
}

// SmallTestParams returns a tiny map for rapid iteration.
func SmallTestParams() Params {
	p := DefaultParams()
	p.Width, p.Height = 120, 120
	p.GridRadius = 4
	p.Noise.Seed = 42
	return p
}

// Validate checks every field a render depends on.
func (p Params) Validate() error {
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas %dx%d must be positive", p.Width, p.Height))
	}
	if !(p.HexSize > 0) || math.IsInf(p.HexSize, 0) {
		errs = append(errs, fmt.Errorf("hex_size %g must be positive", p.HexSize))
	}
	if p.GridRadius < 0 {
		errs = append(errs, fmt.Errorf("grid_radius %d must not be negative", p.GridRadius))
	}
	if p.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("stroke_width %g must not be negative", p.StrokeWidth))
	}
	if _, ok := hex.OrientationByName(p.Orientation); !ok {
		errs = append(errs, fmt.Errorf("unknown orientation %q", p.Orientation))
	}
	if _, err := hexmap.ParseShape(p.MapShape); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseShape(p.DrawShape); err != nil {
		errs = append(errs, err)
	}
	if _, err := noise.NewSource(noise.SourceKind(p.Noise.Source), p.Noise.Seed); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(p.Noise.Scale) || math.IsInf(p.Noise.Scale, 0) {
		errs = append(errs, fmt.Errorf("noise scale %g must be finite", p.Noise.Scale))
	}
	if space, err := gradient.ParseSpace(p.BlendSpace); err != nil {
		errs = append(errs, err)
	} else if _, err := gradient.Parse(p.Gradient, space); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}

// Layout centers the origin hex on the canvas.
func (p Params) Layout() hex.Layout {
	o, _ := hex.OrientationByName(p.Orientation)
	return hex.NewLayout(o,
		hex.Point{X: p.HexSize, Y: p.HexSize},
		hex.Point{X: float64(p.Width) / 2, Y: float64(p.Height) / 2},
	)
}
