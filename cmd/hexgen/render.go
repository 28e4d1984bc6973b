package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexfield/internal/config"
	"github.com/talgya/hexfield/internal/pipeline"
	"github.com/talgya/hexfield/internal/render"
	"github.com/talgya/hexfield/internal/surface"
)

type renderFlags struct {
	configPath string
	out        string
	format     string

	width, height int
	orientation   string
	size          float64
	radius        int
	mapShape      string
	drawShape     string
	strokeWidth   float64

	source    string
	seed      int64
	scale     float64
	octaves   int
	noFalloff bool

	gradient string
	blend    string
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a hex map to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.StringVarP(&f.out, "out", "o", "", "output file")
	fl.StringVar(&f.format, "format", "", "png or svg (default from --out extension)")
	fl.IntVar(&f.width, "width", 0, "canvas width in pixels")
	fl.IntVar(&f.height, "height", 0, "canvas height in pixels")
	fl.StringVar(&f.orientation, "orientation", "", "pointy or flat")
	fl.Float64Var(&f.size, "size", 0, "hex size in pixels")
	fl.IntVar(&f.radius, "radius", 0, "map radius in hexes")
	fl.StringVar(&f.mapShape, "shape", "", "hexagon, circle, parallelogram, triangle or rectangle")
	fl.StringVar(&f.drawShape, "draw", "", "hexagon or circle")
	fl.Float64Var(&f.strokeWidth, "stroke", 0, "stroke width in pixels")
	fl.StringVar(&f.source, "noise", "", "perlin, simplex or seeded-perlin")
	fl.Int64Var(&f.seed, "seed", 0, "noise seed")
	fl.Float64Var(&f.scale, "scale", 0, "pixel to noise-space scale")
	fl.IntVar(&f.octaves, "octaves", 0, "noise octaves")
	fl.BoolVar(&f.noFalloff, "no-falloff", false, "disable edge falloff")
	fl.StringVar(&f.gradient, "gradient", "", "CSS linear-gradient")
	fl.StringVar(&f.blend, "blend", "", "rgb, lab, hcl or luv")
	return cmd
}

// resolve loads the config file, if any, then applies the flags the user set.
func (f *renderFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	set := cmd.Flags().Changed
	p := &cfg.Render
	if set("out") {
		cfg.Output.Path = f.out
	}
	if set("format") {
		cfg.Output.Format = config.Format(f.format)
	}
	if set("width") {
		p.Width = f.width
	}
	if set("height") {
		p.Height = f.height
	}
	if set("orientation") {
		p.Orientation = f.orientation
	}
	if set("size") {
		p.HexSize = f.size
	}
	if set("radius") {
		p.GridRadius = f.radius
	}
	if set("shape") {
		p.MapShape = f.mapShape
	}
	if set("draw") {
		p.DrawShape = f.drawShape
	}
	if set("stroke") {
		p.StrokeWidth = f.strokeWidth
	}
	if set("noise") {
		p.Noise.Source = f.source
	}
	if set("seed") {
		p.Noise.Seed = f.seed
	}
	if set("scale") {
		p.Noise.Scale = f.scale
	}
	if set("octaves") {
		p.Noise.Octaves = f.octaves
	}
	if set("no-falloff") {
		p.Noise.Falloff = !f.noFalloff
	}
	if set("gradient") {
		p.Gradient = f.gradient
	}
	if set("blend") {
		p.BlendSpace = f.blend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	start := time.Now()
	cmds, err := pipeline.Render(cfg.Render, nil)
	if err != nil {
		return err
	}
	slog.Info("map rendered",
		"hexes", humanize.Comma(int64(len(cmds)-1)),
		"orientation", cfg.Render.Orientation,
		"noise", cfg.Render.Noise.Source,
		"seed", cfg.Render.Noise.Seed,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	format, err := cfg.Output.ResolveFormat()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := encode(&buf, format, cfg.Render.Width, cfg.Render.Height, cmds); err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.Path, err)
	}
	slog.Info("image written",
		"path", cfg.Output.Path,
		"format", format,
		"size", humanize.Bytes(uint64(buf.Len())),
	)
	return nil
}

// encode replays cmds onto the surface for format and writes the result to w.
func encode(w io.Writer, format config.Format, width, height int, cmds []render.Command) error {
	switch format {
	case config.FormatSVG:
		s := surface.NewSVG(w, width, height)
		render.Replay(s, cmds)
		s.Close()
		return nil
	case config.FormatPNG:
		r := surface.NewRaster(width, height)
		render.Replay(r, cmds)
		return r.EncodePNG(w)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}
