package noise

import (
	"errors"
	"fmt"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// ErrUnknownSource reports a source name NewSource does not recognise.
var ErrUnknownSource = errors.New("unknown noise source")

// Source is a 2D noise generator. opensimplex.Noise satisfies it directly.
type Source interface {
	Eval2(x, y float64) float64
}

// SourceKind names a noise backend.
type SourceKind string

const (
	SourceReference    SourceKind = "perlin"        // Perlin2 on the fixed table; ignores seed
	SourceSimplex      SourceKind = "simplex"       // OpenSimplex, seeded
	SourceSeededPerlin SourceKind = "seeded-perlin" // classic Perlin with a seeded table
)

// Reference evaluates Perlin2.
type Reference struct{}

// Eval2 implements Source.
func (Reference) Eval2(x, y float64) float64 {
	return Perlin2(x, y)
}

// Simplex returns seeded OpenSimplex noise in [-1, 1].
func Simplex(seed int64) Source {
	return opensimplex.New(seed)
}

// seededPerlin adapts go-perlin to Source.
type seededPerlin struct {
	p *perlin.Perlin
}

func (s seededPerlin) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// SeededPerlin returns classic single-octave Perlin noise with a
// seed-shuffled permutation. Octaves are layered by FBM, not here.
func SeededPerlin(seed int64) Source {
	return seededPerlin{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// NewSource builds the named backend.
func NewSource(kind SourceKind, seed int64) (Source, error) {
	switch kind {
	case SourceReference, "":
		return Reference{}, nil
	case SourceSimplex:
		return Simplex(seed), nil
	case SourceSeededPerlin:
		return SeededPerlin(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}

// FromSource turns a Source into a Func.
func FromSource(s Source) Func {
	return s.Eval2
}
