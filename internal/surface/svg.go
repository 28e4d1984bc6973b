// Package surface provides drawing surfaces that consume render commands:
// an SVG writer and a PNG rasteriser.
package surface

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/talgya/hexfield/internal/hex"
	"github.com/talgya/hexfield/internal/render"
)

// SVG writes draw commands as an SVG document. Coordinates snap to whole pixels.
type SVG struct {
	canvas        *svg.SVG
	width, height int
}

// NewSVG starts a width x height document on w. Call Close to finish it.
func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas, width: width, height: height}
}

// Clear paints the whole canvas. Transparent needs no paint.
func (s *SVG) Clear(color string) {
	if color == render.TransparentBackground || color == "" {
		return
	}
	s.canvas.Rect(0, 0, s.width, s.height, "fill:"+color)
}

// Polygon implements render.Surface.
func (s *SVG) Polygon(vertices []hex.Point, style render.Style) {
	xs := make([]int, len(vertices))
	ys := make([]int, len(vertices))
	for i, v := range vertices {
		xs[i] = px(v.X)
		ys[i] = px(v.Y)
	}
	s.canvas.Polygon(xs, ys, svgStyle(style))
}

// Circle implements render.Surface.
func (s *SVG) Circle(center hex.Point, radius float64, style render.Style) {
	s.canvas.Circle(px(center.X), px(center.Y), max(px(radius), 1), svgStyle(style))
}

// Close ends the document.
func (s *SVG) Close() {
	s.canvas.End()
}

func svgStyle(st render.Style) string {
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", st.Fill, st.Stroke, st.StrokeWidth)
}

func px(v float64) int {
	return int(math.Round(v))
}
