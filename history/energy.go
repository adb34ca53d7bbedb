package history

import "gonum.org/v1/gonum/floats"

// EnergyProxy returns the Verlet kinetic-energy proxy sum(v_i. v_i) used
// by the solver's energy-bound invariant test.
// Flattened as a single vector of interleaved vx,vy components so a
// single floats.Dot call covers every particle.
func EnergyProxy(velocityComponents []float64) float64 {
	if len(velocityComponents) == 0 {
		return 0
	}
	return floats.Dot(velocityComponents, velocityComponents)
}
