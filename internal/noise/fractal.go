package noise

// Fractal holds fractional Brownian motion parameters.
type Fractal struct {
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`   // base frequency of the first octave
	Persistence float64 `yaml:"persistence"` // amplitude multiplier per octave
	Lacunarity  float64 `yaml:"lacunarity"`  // frequency multiplier per octave
}

// DefaultFractal doubles frequency and halves amplitude each octave.
func DefaultFractal(octaves int) Fractal {
	return Fractal{
		Octaves:     octaves,
		Frequency:   1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Octave layers octaves copies of base at doubling frequency and halving
// amplitude, normalised by the total amplitude. Octaves <= 0 gives a flat field.
func Octave(base Func, octaves int) Func {
	return FBM(base, DefaultFractal(octaves))
}

// FBM layers base according to f, normalised by the total amplitude so the
// output keeps base's range.
func FBM(base Func, f Fractal) Func {
	if f.Octaves <= 0 {
		return func(float64, float64) float64 { return 0 }
	}
	return func(x, y float64) float64 {
		total := 0.0
		amplitude := 1.0
		maxVal := 0.0
		frequency := f.Frequency

		for i := 0; i < f.Octaves; i++ {
			total += base(x*frequency, y*frequency) * amplitude
			maxVal += amplitude
			amplitude *= f.Persistence
			frequency *= f.Lacunarity
		}

		if maxVal == 0 {
			return 0
		}
		return total / maxVal
	}
}
