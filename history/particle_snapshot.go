package history

import "github.com/labyrinthine/maze-engine/particle"

// ParticleState is a deep-copied particle, positioned by index rather than
// handle so a snapshot shares no state with the live Arena.
type ParticleState struct {
	Pos, Prev particle.Vec2
	Locked    bool
	Mass      float64
}

// ConstraintState references its endpoints by index into the snapshot's
// Particles slice, not by live Handle.
type ConstraintState struct {
	A, B                 int
	RestLength, Stiffness float64
}

// GridSnapshot is a deep copy of a particle.System's live state.
type GridSnapshot struct {
	Particles   []ParticleState
	Constraints []ConstraintState
}

// CloneGridSnapshot deep-copies a GridSnapshot (the clone function required
// by History[GridSnapshot]).
func CloneGridSnapshot(s GridSnapshot) GridSnapshot {
	out := GridSnapshot{
		Particles:   make([]ParticleState, len(s.Particles)),
		Constraints: make([]ConstraintState, len(s.Constraints)),
	}
	copy(out.Particles, s.Particles)
	copy(out.Constraints, s.Constraints)
	return out
}

// SnapshotGrid deep-copies the live state of sys into a GridSnapshot, in
// arena slot order. Constraint endpoints are translated from live Handles
// to positional indices into the resulting Particles slice; a constraint
// whose endpoint no longer exists is dropped (it would already have been
// cascaded away by particle.System.RemoveParticle/Audit).
func SnapshotGrid(sys *particle.System) GridSnapshot {
	indexOf := make(map[particle.Handle]int)
	var snap GridSnapshot

	sys.Particles(func(h particle.Handle, p *particle.Particle) {
		indexOf[h] = len(snap.Particles)
		snap.Particles = append(snap.Particles, ParticleState{
			Pos: p.Pos, Prev: p.Prev, Locked: p.Locked, Mass: p.Mass,
		})
	})
	sys.Constraints(func(_ particle.Handle, c *particle.DistanceConstraint) {
		a, aok := indexOf[c.A]
		b, bok := indexOf[c.B]
		if !aok || !bok {
			return
		}
		snap.Constraints = append(snap.Constraints, ConstraintState{
			A: a, B: b, RestLength: c.RestLength, Stiffness: c.Stiffness,
		})
	})
	return snap
}

// RehydrateGrid clears sys and rebuilds it from snap, re-linking
// constraints by the snapshot's stored positional indices.
func RehydrateGrid(sys *particle.System, snap GridSnapshot) {
	sys.Clear()
	handles := make([]particle.Handle, len(snap.Particles))
	for i, ps := range snap.Particles {
		h := sys.AddParticle(ps.Pos, ps.Locked, ps.Mass)
		if p := sys.Particle(h); p != nil {
			p.Prev = ps.Prev
		}
		handles[i] = h
	}
	for _, cs := range snap.Constraints {
		if cs.A < 0 || cs.A >= len(handles) || cs.B < 0 || cs.B >= len(handles) {
			continue
		}
		sys.AddConstraint(handles[cs.A], handles[cs.B], cs.RestLength, cs.Stiffness)
	}
}
