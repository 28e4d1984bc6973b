package gradient

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"
	"sync"

	"cogentcore.org/core/colors"
	cgradient "cogentcore.org/core/colors/gradient"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// direction matches the optional leading angle or "to <side>" argument.
	direction = regexp.MustCompile(`^(-?(\d+\.?\d*|\.\d+)(deg|grad|rad|turn)|to( +(left|right|top|bottom)){1,2})$`)
	// argComma squeezes the spacing around commas inside rgb(...) and friends.
	argComma = regexp.MustCompile(`\s*,\s*`)
)

// cgradient.FromString caches into an unguarded package map.
var parseMu sync.Mutex

// Parse reads a CSS linear-gradient, e.g.
//
//	linear-gradient(90deg, rgba(0,0,0,1) 0%, #ff8800 40%, orange 100%)
//
// The angle or "to <side>" argument is accepted and ignored; only the stops
// matter for sampling. Stops without a position are spread evenly between
// their neighbours, the first defaulting to 0% and the last to 100%.
// Alpha is dropped.
func Parse(css string, space Space) (*Gradient, error) {
	inner, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(css)), "linear-gradient(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return nil, fmt.Errorf("parse gradient %q: want linear-gradient(...)", css)
	}
	args := splitTopLevel(strings.TrimSuffix(inner, ")"))
	if len(args) > 0 && direction.MatchString(args[0]) {
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("parse gradient %q: %w", css, ErrNoStops)
	}
	for i, arg := range args {
		args[i] = argComma.ReplaceAllString(arg, ",")
	}

	parseMu.Lock()
	img, err := cgradient.FromString("linear-gradient(" + strings.Join(args, ", ") + ")")
	parseMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("parse gradient %q: %w", css, err)
	}
	lin, ok := img.(*cgradient.Linear)
	if !ok {
		return nil, fmt.Errorf("parse gradient %q: not a linear gradient", css)
	}

	stops := make([]Stop, len(lin.Stops))
	for i, st := range lin.Stops {
		stops[i] = Stop{
			Position: float64(st.Pos),
			Color:    fromRGBA(colors.AsRGBA(st.Color)),
		}
	}
	return New(space, stops...)
}

// splitTopLevel splits on commas outside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// ParseColor reads any CSS color the cogentcore color parser accepts: hex,
// the standard color keywords, rgb(), rgba() and hsl(). Alpha is dropped.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("parse color: empty string")
	}
	c, err := colors.FromString(s, color.Black)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromRGBA(c), nil
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
