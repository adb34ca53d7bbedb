package facade

import (
	"math"

	"github.com/labyrinthine/maze-engine/particle"
)

// GenerateKind selects one of the Facade's built-in world generators
type GenerateKind int

const (
	GenerateDefaultMaze GenerateKind = iota
	GenerateCircle
)

// Generate clears both engines' live state and rebuilds it from the named
// preset, seeded by seed for determinism.
func (f *Facade) Generate(kind GenerateKind, seed int64) {
	f.Clear()
	switch kind {
	case GenerateDefaultMaze:
		f.generateDefaultMaze(seed)
	case GenerateCircle:
		f.generateCircle(seed)
	}
	f.SaveState()
}

// generateDefaultMaze repaints the curve engine's Brownian and attraction
// fields from noise, then seeds a frame of four locked corner particles
// joined by constraints plus a closed labyrinth-type curve centred in the
// world with radius 0.3 times the smaller world extent.
func (f *Facade) generateDefaultMaze(seed int64) {
	f.paintFields(seed)

	w, h := f.cfg.World.Width, f.cfg.Derived.BottomY
	const margin = 20.0

	corners := []particle.Vec2{
		{X: margin, Y: margin},
		{X: w - margin, Y: margin},
		{X: w - margin, Y: h - margin},
		{X: margin, Y: h - margin},
	}
	handles := make([]particle.Handle, len(corners))
	for i, c := range corners {
		handles[i] = f.Particles.AddParticle(c, true, 1)
	}
	for i := range handles {
		a, b := handles[i], handles[(i+1)%len(handles)]
		f.Particles.AddConstraint(a, b, -1, 1)
	}

	cx, cy := w/2, h/2
	radius := math.Min(w, h) * 0.3
	f.seedCircleCurve(cx, cy, radius, particle.CurveLabyrinth)
}

// generateCircle seeds a single closed curve of N samples on a circle
// centred in the world with radius 0.25 times the smaller world extent.
func (f *Facade) generateCircle(seed int64) {
	_ = seed // deterministic shape, no noise input needed
	w, h := f.cfg.World.Width, f.cfg.Derived.BottomY
	cx, cy := w/2, h/2
	radius := math.Min(w, h) * 0.25
	f.seedCircleCurve(cx, cy, radius, particle.CurveLabyrinth)
}

// seedCircleCurve adds a closed curve of evenly spaced samples on a
// circle of the given center and radius.
func (f *Facade) seedCircleCurve(cx, cy, radius float64, typ particle.CurveType) *particle.Curve {
	const n = 40
	c := f.Curves.AddCurve(true, typ, particle.CurveParams{D: radius / 10, Kmin: 0.2, Kmax: 1.5, Nmin: 2})
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos := particle.Vec2{X: cx + radius*math.Cos(theta), Y: cy + radius*math.Sin(theta)}
		s := particle.Sample{Pos: pos, Prev: pos, Delta: 1}
		c.Append(s)
	}
	return c
}
