package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/fogleman/gg"

	"github.com/talgya/hexfield/internal/gradient"
	"github.com/talgya/hexfield/internal/hex"
	"github.com/talgya/hexfield/internal/render"
)

// Raster paints draw commands into an RGBA image.
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a transparent width x height raster.
func NewRaster(width, height int) *Raster {
	return &Raster{dc: gg.NewContext(width, height)}
}

// Clear fills the whole image, replacing what was there.
func (r *Raster) Clear(c string) {
	r.dc.SetColor(parseColor(c))
	r.dc.Clear()
}

// Polygon implements render.Surface.
func (r *Raster) Polygon(vertices []hex.Point, style render.Style) {
	if len(vertices) == 0 {
		return
	}
	r.dc.NewSubPath()
	r.dc.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		r.dc.LineTo(v.X, v.Y)
	}
	r.dc.ClosePath()
	r.paint(style)
}

// Circle implements render.Surface.
func (r *Raster) Circle(center hex.Point, radius float64, style render.Style) {
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.paint(style)
}

func (r *Raster) paint(style render.Style) {
	r.dc.SetColor(parseColor(style.Fill))
	r.dc.FillPreserve()
	r.dc.SetColor(parseColor(style.Stroke))
	r.dc.SetLineWidth(style.StrokeWidth)
	r.dc.Stroke()
}

// Image returns the painted image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// parseColor resolves a CSS color; unreadable colors paint black.
func parseColor(s string) color.Color {
	if s == render.TransparentBackground || s == "" {
		return color.Transparent
	}
	c, err := gradient.ParseColor(s)
	if err != nil {
		slog.Warn("unreadable color, using black", "color", s, "error", err)
		return color.Black
	}
	return c.Clamped()
}
