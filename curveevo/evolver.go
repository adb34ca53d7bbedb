// Package curveevo implements the curve-evolution engine:
// per-sample Brownian/fairing/attraction-repulsion/anisotropy forces,
// Verlet integration, and adaptive split-merge resampling across every
// curve in a particle.CurveSet.
package curveevo

import (
	"math/rand"

	"github.com/labyrinthine/maze-engine/config"
	"github.com/labyrinthine/maze-engine/particle"
)

// Evolver owns the RNG and ParameterFields that drive curve evolution
type Evolver struct {
	cfg    config.CurveConfig
	dt     float64
	fields FieldSet
	rng    *rand.Rand
}

// New builds an Evolver. dt is the shared engine timestep; seed fixes the
// Brownian RNG for deterministic replay.
func New(cfg config.CurveConfig, dt float64, fields FieldSet, seed int64) *Evolver {
	return &Evolver{
		cfg:    cfg,
		dt:     dt,
		fields: fields,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Step advances every curve in cs by one tick: force
// assembly, Verlet integration, then split-then-merge resampling. The
// spatial index is rebuilt first (picking up any resampling from the
// previous tick) and marked dirty again after this tick's resampling, so a
// dirty flag on the engine records when the index needs rebuilding before
// the next read.
func (e *Evolver) Step(cs *particle.CurveSet) {
	cs.RebuildIndex()

	cs.Curves(func(c *particle.Curve) {
		for i := 0; i < c.Len(); i++ {
			s := c.At(i)
			if s.Locked {
				continue
			}
			force := e.forceAt(cs, c, i)
			s.Pos = s.Pos.Add(force.Scale(e.dt))
			e.verletStep(s)
		}
	})

	cs.Curves(func(c *particle.Curve) {
		resample(c)
	})
	cs.MarkDirty()
}

// verletStep performs the acceleration-free Verlet step for samples
func (e *Evolver) verletStep(s *particle.Sample) {
	v := s.Pos.Sub(s.Prev)
	s.Prev = s.Pos
	s.Pos = s.Pos.Add(v)
}
