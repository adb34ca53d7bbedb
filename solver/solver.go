// Package solver implements the grid engine's constraint solver:
// Verlet integration, Gauss-Seidel distance-constraint relaxation, pairwise
// contact resolution via the particle system's spatial index, and an
// AABB clamp to the playfield interior.
package solver

import (
	"math"

	"github.com/labyrinthine/maze-engine/config"
	"github.com/labyrinthine/maze-engine/particle"
)

// ConstraintSolver advances a particle.System by one fixed timestep.
type ConstraintSolver struct {
	cfg config.PhysicsConfig
	// width and BottomY bound the clamp rectangle's right and bottom
	// edges; both are supplied by the Facade from config.WorldConfig and
	// config.Derived rather than recomputed here.
	width   float64
	BottomY float64
}

// New builds a ConstraintSolver for the given physics configuration, world
// width, and derived bottom-clamp Y.
func New(cfg config.PhysicsConfig, width, bottomY float64) *ConstraintSolver {
	return &ConstraintSolver{cfg: cfg, width: width, BottomY: bottomY}
}

// Step advances sys by one tick:
//  1. Verlet-integrate every unlocked particle.
//  2. Rebuild the spatial index from current positions.
//  3. Run K Gauss-Seidel iterations of constraint relaxation + contact sweep.
//  4. Clamp every unlocked particle into the interior rectangle.
func (s *ConstraintSolver) Step(sys *particle.System) {
	s.integrate(sys)
	sys.RebuildIndex()

	iterations := s.cfg.SolverIterations
	if iterations <= 0 {
		iterations = 1
	}
	for i := 0; i < iterations; i++ {
		s.relaxConstraints(sys)
		s.resolveContacts(sys)
	}

	s.clamp(sys)
}

// integrate applies position-Verlet: v = pos-prev, prev = pos,
// pos = pos + v + a*dt^2, with a = (0, gravity). Locked particles are
// skipped entirely, preserving pos == prev.
func (s *ConstraintSolver) integrate(sys *particle.System) {
	dt := s.cfg.DT
	dt2 := dt * dt
	accel := particle.Vec2{X: 0, Y: s.cfg.Gravity}
	sys.Particles(func(_ particle.Handle, p *particle.Particle) {
		if p.Locked {
			return
		}
		v := p.Pos.Sub(p.Prev)
		next := p.Pos.Add(v).Add(accel.Scale(dt2))
		p.Prev = p.Pos
		p.Pos = next
	})
}

// relaxConstraints performs one Gauss-Seidel pass over every distance
// constraint, in insertion order.
func (s *ConstraintSolver) relaxConstraints(sys *particle.System) {
	sys.Constraints(func(_ particle.Handle, c *particle.DistanceConstraint) {
		pa := sys.Particle(c.A)
		pb := sys.Particle(c.B)
		if pa == nil || pb == nil {
			return
		}
		d := pb.Pos.Sub(pa.Pos)
		l := d.Length()
		if l == 0 {
			return
		}
		diff := (l - c.RestLength) / l

		wa := 0.0
		if !pa.Locked {
			wa = 1 / pa.Mass
		}
		wb := 0.0
		if !pb.Locked {
			wb = 1 / pb.Mass
		}
		wsum := wa + wb
		if wsum == 0 {
			return
		}

		corr := d.Scale(c.Stiffness * diff * 0.5)
		if wa != 0 {
			pa.Pos = pa.Pos.Add(corr.Scale(wa / wsum))
		}
		if wb != 0 {
			pb.Pos = pb.Pos.Sub(corr.Scale(wb / wsum))
		}
	})
}

// resolveContacts sweeps the 3x3 spatial-index neighborhood of every
// particle and separates overlapping pairs closer than MinSeparation
//. Each unordered pair is resolved once
// per sweep by only acting when the neighbor handle sorts after the
// particle's own handle in arena order, since QueryNeighbors reports both
// (p,q) and (q,p).
func (s *ConstraintSolver) resolveContacts(sys *particle.System) {
	dmin := s.cfg.MinSeparation
	sys.Particles(func(h particle.Handle, p *particle.Particle) {
		for _, nh := range sys.QueryNeighbors(h) {
			if !handleLess(h, nh) {
				continue
			}
			q := sys.Particle(nh)
			if q == nil {
				continue
			}
			r := p.Pos.Sub(q.Pos)
			l := r.Length()
			if l <= 0 || l >= dmin {
				continue
			}
			rHat := r.Scale(1 / l)
			push := rHat.Scale((dmin - l) * 0.5)

			switch {
			case p.Locked && q.Locked:
				// both immovable, no correction possible.
			case p.Locked:
				q.Pos = q.Pos.Sub(rHat.Scale(dmin - l))
			case q.Locked:
				p.Pos = p.Pos.Add(rHat.Scale(dmin - l))
			default:
				p.Pos = p.Pos.Add(push)
				q.Pos = q.Pos.Sub(push)
			}
		}
	})
}

// handleLess imposes an arbitrary but stable total order on handles so
// resolveContacts processes each unordered pair exactly once.
func handleLess(a, b particle.Handle) bool {
	ai, bi := a.Index(), b.Index()
	if ai != bi {
		return ai < bi
	}
	return a.Generation() < b.Generation()
}

// clamp confines every unlocked particle to [EdgeClamp, W-EdgeClamp] x
// [EdgeClamp, BottomY]. Locked particles are left where they are.
func (s *ConstraintSolver) clamp(sys *particle.System) {
	edge := s.cfg.EdgeClamp
	minX, maxX := edge, s.width-edge
	minY, maxY := edge, s.BottomY
	sys.Particles(func(_ particle.Handle, p *particle.Particle) {
		if p.Locked {
			return
		}
		p.Pos.X = math.Max(minX, math.Min(maxX, p.Pos.X))
		p.Pos.Y = math.Max(minY, math.Min(maxY, p.Pos.Y))
	})
}
