package history

import (
	"testing"

	"github.com/labyrinthine/maze-engine/particle"
)

// TestGridHistoryRoundTrip verifies that save, mutate, save, undo returns
// the grid to a state identical to the state at the first save (particles,
// constraints).
func TestGridHistoryRoundTrip(t *testing.T) {
	sys := particle.NewSystem(32)
	a := sys.AddParticle(particle.Vec2{X: 10, Y: 20}, false, 2)
	b := sys.AddParticle(particle.Vec2{X: 50, Y: 20}, true, 1)
	sys.AddConstraint(a, b, 40, 0.8)

	h := New(50, CloneGridSnapshot)
	h.Save(SnapshotGrid(sys))

	// Mutate live state after saving.
	sys.AddParticle(particle.Vec2{X: 999, Y: 999}, false, 1)
	if p := sys.Particle(a); p != nil {
		p.Pos = particle.Vec2{X: 0, Y: 0}
	}
	h.Save(SnapshotGrid(sys))

	snap, ok := h.Undo()
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	RehydrateGrid(sys, snap)

	if sys.ParticleCount() != 2 {
		t.Fatalf("expected 2 particles after rehydrate, got %d", sys.ParticleCount())
	}
	if sys.ConstraintCount() != 1 {
		t.Fatalf("expected 1 constraint after rehydrate, got %d", sys.ConstraintCount())
	}

	var positions []particle.Vec2
	sys.Particles(func(_ particle.Handle, p *particle.Particle) {
		positions = append(positions, p.Pos)
	})
	if positions[0] != (particle.Vec2{X: 10, Y: 20}) || positions[1] != (particle.Vec2{X: 50, Y: 20}) {
		t.Errorf("expected rehydrated positions to match saved snapshot, got %v", positions)
	}

	var constraintCount int
	sys.Constraints(func(_ particle.Handle, c *particle.DistanceConstraint) {
		constraintCount++
		if c.RestLength != 40 || c.Stiffness != 0.8 {
			t.Errorf("expected restored constraint RestLength=40 Stiffness=0.8, got %v", c)
		}
	})
	if constraintCount != 1 {
		t.Errorf("expected exactly 1 constraint, got %d", constraintCount)
	}
}

func TestCurveHistoryRoundTrip(t *testing.T) {
	cs := particle.NewCurveSet(32)
	c := cs.AddCurve(true, particle.CurveLabyrinth, particle.CurveParams{D: 20, Kmin: 0.2, Kmax: 1.2, Nmin: 1})
	originalID := c.ID
	for _, p := range []particle.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}} {
		s := particle.Sample{Delta: 1}
		s.SetPosition(p)
		c.Append(s)
	}

	h := New(50, CloneCurveSetSnapshot)
	h.Save(SnapshotCurves(cs))

	second := cs.AddCurve(false, particle.CurveGap, particle.CurveParams{D: 10, Kmin: 0.1, Kmax: 1, Nmin: 1})
	secondID := second.ID
	c.At(0).Pos = particle.Vec2{X: 1000, Y: 1000}
	h.Save(SnapshotCurves(cs))

	snap, ok := h.Undo()
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	RehydrateCurves(cs, snap)

	if cs.Count() != 1 {
		t.Fatalf("expected 1 curve after rehydrate, got %d", cs.Count())
	}
	var restored *particle.Curve
	cs.Curves(func(cur *particle.Curve) { restored = cur })
	if restored.ID != originalID {
		t.Errorf("expected restored curve to keep its original ID %d, got %d", originalID, restored.ID)
	}
	if restored.Len() != 3 {
		t.Fatalf("expected 3 samples after rehydrate, got %d", restored.Len())
	}
	if restored.At(0).Pos != (particle.Vec2{X: 0, Y: 0}) {
		t.Errorf("expected restored first sample at (0,0), got %v", restored.At(0).Pos)
	}
	if !restored.Closed || restored.Type != particle.CurveLabyrinth {
		t.Errorf("expected restored curve to keep Closed=true Type=Labyrinth, got closed=%v type=%v", restored.Closed, restored.Type)
	}

	redoSnap, ok := h.Redo()
	if !ok {
		t.Fatal("expected redo to succeed")
	}
	RehydrateCurves(cs, redoSnap)
	if cs.Count() != 2 {
		t.Fatalf("expected 2 curves after redo, got %d", cs.Count())
	}
	if cs.Curve(originalID) == nil {
		t.Errorf("expected curve %d to survive redo", originalID)
	}
	if cs.Curve(secondID) == nil {
		t.Errorf("expected curve %d to survive redo", secondID)
	}

	// A curve added after the restored snapshot must mint an ID past every
	// restored ID rather than colliding with one.
	third := cs.AddCurve(true, particle.CurveLabyrinth, particle.CurveParams{D: 5, Kmin: 0.1, Kmax: 1, Nmin: 1})
	if third.ID == originalID || third.ID == secondID {
		t.Errorf("expected newly added curve to get a fresh ID, got collision with %d", third.ID)
	}
}
