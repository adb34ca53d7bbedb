package telemetry

import "github.com/labyrinthine/maze-engine/particle"

// ForceVector returns the optional per-particle debug vector, the presentation layer's visualization of implicit
// Verlet velocity.
func ForceVector(pos, prev particle.Vec2) particle.Vec2 {
	return pos.Sub(prev).Scale(10)
}
