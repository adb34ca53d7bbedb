package field

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseOptions configures a procedural fractal-noise generator.
type NoiseOptions struct {
	Seed       int64
	Scale      float64 // spatial frequency
	Octaves    int
	Lacunarity float64 // frequency multiplier per octave
	Gain       float64 // amplitude multiplier per octave
}

// DefaultNoiseOptions returns reasonable defaults for seeding a density map.
func DefaultNoiseOptions(seed int64) NoiseOptions {
	return NoiseOptions{
		Seed:       seed,
		Scale:      0.01,
		Octaves:    4,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// NewProceduralNoise builds a func(x, y) -> [0,1] fractal Brownian motion
// generator over 2D OpenSimplex noise, suitable for Field.FillProcedural
func NewProceduralNoise(opts NoiseOptions) func(x, y float64) float64 {
	gen := opensimplex.New(opts.Seed)
	octaves := opts.Octaves
	if octaves < 1 {
		octaves = 1
	}
	lacunarity := opts.Lacunarity
	if lacunarity <= 0 {
		lacunarity = 2.0
	}
	gain := opts.Gain
	if gain <= 0 {
		gain = 0.5
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 0.01
	}

	return func(x, y float64) float64 {
		sum := 0.0
		amp := 0.5
		freq := scale
		norm := 0.0
		for o := 0; o < octaves; o++ {
			sum += amp * gen.Eval2(x*freq, y*freq)
			norm += amp
			amp *= gain
			freq *= lacunarity
		}
		v := sum/norm*0.5 + 0.5 // map roughly [-1,1] -> [0,1]
		return clamp01(v)
	}
}
