// Package particle defines the shared particle/sample data model
// and the arena-based storage that backs both the grid engine and the
// curve engine.
package particle

import "github.com/labyrinthine/maze-engine/spatial"

// Particle is a grid-engine mass point.
// Invariants: Mass > 0; if Locked, Pos == Prev after any step; velocity is
// defined as Pos - Prev.
type Particle struct {
	Pos    Vec2
	Prev   Vec2
	Locked bool
	Mass   float64
}

// Velocity returns the particle's implicit Verlet velocity (Pos - Prev).
func (p *Particle) Velocity() Vec2 { return p.Pos.Sub(p.Prev) }

// SetPosition writes both Pos and Prev to p, destroying velocity
func (p *Particle) SetPosition(pos Vec2) {
	p.Pos = pos
	p.Prev = pos
}

// DistanceConstraint enforces ||b.Pos - a.Pos|| == RestLength between two
// particles, referenced weakly by Handle.
type DistanceConstraint struct {
	A, B       Handle
	RestLength float64
	Stiffness  float64 // (0, 1]
}

// particleRef is the lightweight payload stored in the grid engine's
// spatial.Index: a handle back into the live Arena rather than a detached
// copy, so contact resolution mutates the real particle.
type particleRef struct {
	sys *System
	h   Handle
}

func (r particleRef) Pos() (x, y float64) {
	p, ok := r.sys.particles.Get(r.h)
	if !ok {
		return 0, 0
	}
	return p.Pos.X, p.Pos.Y
}

// System owns the particle arena and the constraint list for the grid
// engine. The Facade exclusively owns System instances.
type System struct {
	particles   *Arena[Particle]
	constraints *Arena[DistanceConstraint]
	index       *spatial.Index[particleRef]
}

// NewSystem creates an empty particle/constraint system with a spatial
// index of the given cell size.
func NewSystem(cellSize float64) *System {
	return &System{
		particles:   NewArena[Particle](),
		constraints: NewArena[DistanceConstraint](),
		index:       spatial.New[particleRef](cellSize),
	}
}

// RebuildIndex clears and reinserts every live particle into the spatial
// index, in arena slot order.
func (s *System) RebuildIndex() {
	s.index.Rebuild(s.refs())
}

// QueryNeighbors returns the handles of particles in the 3x3 cell
// neighborhood around h's current position, bucket by bucket, each bucket
// in arena slot order
func (s *System) QueryNeighbors(h Handle) []Handle {
	p, ok := s.particles.Get(h)
	if !ok {
		return nil
	}
	refs := s.index.QueryNeighbors(p.Pos.X, p.Pos.Y)
	out := make([]Handle, len(refs))
	for i, r := range refs {
		out[i] = r.h
	}
	return out
}

// AddParticle inserts a new particle and returns its handle.
func (s *System) AddParticle(pos Vec2, locked bool, mass float64) Handle {
	if mass <= 0 {
		mass = 1
	}
	return s.particles.Insert(Particle{Pos: pos, Prev: pos, Locked: locked, Mass: mass})
}

// Particle returns a pointer to the live particle for h, or nil if absent.
func (s *System) Particle(h Handle) *Particle {
	p, ok := s.particles.Get(h)
	if !ok {
		return nil
	}
	return p
}

// ParticleCount returns the number of live particles.
func (s *System) ParticleCount() int { return s.particles.Len() }

// ConstraintCount returns the number of live constraints.
func (s *System) ConstraintCount() int { return s.constraints.Len() }

// Particles calls fn for every live particle, in arena slot order (see
// Arena).
func (s *System) Particles(fn func(h Handle, p *Particle)) {
	s.particles.Each(fn)
}

// Constraints calls fn for every live constraint, in arena slot order (see
// Arena).
func (s *System) Constraints(fn func(h Handle, c *DistanceConstraint)) {
	s.constraints.Each(fn)
}

// AddConstraint adds a distance constraint between a and b. If restLength
// is negative, it is set to the current distance between a and b
//. Returns the zero Handle if either endpoint does not exist.
func (s *System) AddConstraint(a, b Handle, restLength, stiffness float64) Handle {
	pa, ok := s.particles.Get(a)
	if !ok {
		return Handle{}
	}
	pb, ok := s.particles.Get(b)
	if !ok {
		return Handle{}
	}
	if restLength < 0 {
		restLength = pb.Pos.Sub(pa.Pos).Length()
	}
	if stiffness <= 0 || stiffness > 1 {
		stiffness = 1
	}
	return s.constraints.Insert(DistanceConstraint{A: a, B: b, RestLength: restLength, Stiffness: stiffness})
}

// RemoveParticle removes a particle and cascades removal to every
// constraint referencing it.
func (s *System) RemoveParticle(h Handle) {
	s.particles.Remove(h)
	var dead []Handle
	s.constraints.Each(func(ch Handle, c *DistanceConstraint) {
		if c.A == h || c.B == h {
			dead = append(dead, ch)
		}
	})
	for _, ch := range dead {
		s.constraints.Remove(ch)
	}
}

// RemoveConstraint removes a single constraint.
func (s *System) RemoveConstraint(h Handle) {
	s.constraints.Remove(h)
}

// Clear removes all particles and constraints.
func (s *System) Clear() {
	s.particles.Clear()
	s.constraints.Clear()
}

// Audit drops constraints whose endpoints no longer exist, reporting each
// through warn. Returns the number dropped.
func (s *System) Audit(warn func(format string, args...any)) int {
	var dead []Handle
	s.constraints.Each(func(ch Handle, c *DistanceConstraint) {
		if !s.particles.Alive(c.A) || !s.particles.Alive(c.B) {
			dead = append(dead, ch)
		}
	})
	for _, ch := range dead {
		if warn != nil {
			warn("dropping constraint %v: endpoint particle no longer exists", ch)
		}
		s.constraints.Remove(ch)
	}
	return len(dead)
}

// Nearest returns the handle of the live particle closest to pos within
// tol, used by the Facade's point-based edit gestures (removeAt, drag
// pick). Requires the spatial index to have been rebuilt since the last
// structural change to reflect current positions.
func (s *System) Nearest(pos Vec2, tol float64) (Handle, bool) {
	refs := s.index.QueryRadius(pos.X, pos.Y, tol)
	best := Handle{}
	bestDist := -1.0
	found := false
	for _, r := range refs {
		p, ok := s.particles.Get(r.h)
		if !ok {
			continue
		}
		d := p.Pos.Sub(pos).LengthSq()
		if !found || d < bestDist {
			best, bestDist, found = r.h, d, true
		}
	}
	return best, found
}

// refs returns particleRef payloads for every live particle, in arena slot
// order, for use building a spatial.Index.
func (s *System) refs() []particleRef {
	handles := s.particles.Handles()
	out := make([]particleRef, len(handles))
	for i, h := range handles {
		out[i] = particleRef{sys: s, h: h}
	}
	return out
}
