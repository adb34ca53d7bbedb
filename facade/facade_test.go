package facade

import (
	"testing"

	"github.com/labyrinthine/maze-engine/config"
	"github.com/labyrinthine/maze-engine/particle"
)

func testFacade(t *testing.T) *Facade {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error loading default config: %v", err)
	}
	return New(cfg, 1)
}

func TestTickAdvancesGridEngineByDefault(t *testing.T) {
	f := testFacade(t)
	h := f.AddParticle(particle.Vec2{X: 100, Y: 0}, false, 1)
	f.Tick()
	p := f.Particles.Particle(h)
	if p.Pos.Y == 0 {
		t.Error("expected gravity to move the unlocked particle after a grid tick")
	}
}

func TestTickIsNoOpWhenPaused(t *testing.T) {
	f := testFacade(t)
	h := f.AddParticle(particle.Vec2{X: 100, Y: 0}, false, 1)
	f.SetPaused(true)
	f.Tick()
	p := f.Particles.Particle(h)
	if p.Pos.Y != 0 {
		t.Error("expected paused tick to leave state unchanged")
	}
	if f.TickCount() != 0 {
		t.Errorf("expected tick count to stay at 0 while paused, got %d", f.TickCount())
	}
}

func TestTickAdvancesCurveEngineWhenSelected(t *testing.T) {
	f := testFacade(t)
	f.SetEngine(EngineCurve)
	c := f.AddCurve(true, particle.CurveLabyrinth, particle.CurveParams{D: 20, Kmin: 0.2, Kmax: 1.2, Nmin: 1})
	for _, p := range []particle.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}} {
		s := particle.Sample{Delta: 1}
		s.SetPosition(p)
		c.Append(s)
	}
	f.Tick()
	if f.TickCount() != 1 {
		t.Errorf("expected tick count 1, got %d", f.TickCount())
	}
}

func TestRemoveAtDeletesNearestParticle(t *testing.T) {
	f := testFacade(t)
	f.AddParticle(particle.Vec2{X: 0, Y: 0}, false, 1)
	f.AddParticle(particle.Vec2{X: 500, Y: 500}, false, 1)

	if !f.RemoveAt(particle.Vec2{X: 1, Y: 1}, 10) {
		t.Fatal("expected RemoveAt to find a particle")
	}
	if f.Particles.ParticleCount() != 1 {
		t.Errorf("expected 1 remaining particle, got %d", f.Particles.ParticleCount())
	}
}

func TestRemoveAtMissesBeyondTolerance(t *testing.T) {
	f := testFacade(t)
	f.AddParticle(particle.Vec2{X: 0, Y: 0}, false, 1)
	if f.RemoveAt(particle.Vec2{X: 9999, Y: 9999}, 10) {
		t.Error("expected RemoveAt to miss a particle far beyond tolerance")
	}
}

func TestDragMovesPickedParticleAndSavesOnEnd(t *testing.T) {
	f := testFacade(t)
	f.AddParticle(particle.Vec2{X: 0, Y: 0}, false, 1)

	if !f.BeginDrag(particle.Vec2{X: 1, Y: 1}, 10) {
		t.Fatal("expected BeginDrag to pick the particle")
	}
	f.DragTo(particle.Vec2{X: 50, Y: 50})
	f.EndDrag()

	if f.gridHistory.Len() != 1 {
		t.Errorf("expected EndDrag to save one history snapshot, got %d", f.gridHistory.Len())
	}
	var got particle.Vec2
	f.Particles.Particles(func(_ particle.Handle, p *particle.Particle) { got = p.Pos })
	if got != (particle.Vec2{X: 50, Y: 50}) {
		t.Errorf("expected dragged particle at (50,50), got %v", got)
	}
}

func TestSaveUndoRedoRoundTrip(t *testing.T) {
	f := testFacade(t)
	f.AddParticle(particle.Vec2{X: 1, Y: 1}, false, 1)
	f.SaveState()

	f.AddParticle(particle.Vec2{X: 2, Y: 2}, false, 1)
	f.SaveState()

	if !f.CanUndo() {
		t.Fatal("expected a snapshot to undo to")
	}
	f.Undo()
	if f.Particles.ParticleCount() != 1 {
		t.Fatalf("expected undo to roll back to 1 particle, got %d", f.Particles.ParticleCount())
	}

	if !f.CanRedo() {
		t.Fatal("expected a snapshot to redo to")
	}
	f.Redo()
	if f.Particles.ParticleCount() != 2 {
		t.Fatalf("expected redo to restore 2 particles, got %d", f.Particles.ParticleCount())
	}
}

func TestInsertSampleOnNearestSegmentAddsOneSample(t *testing.T) {
	f := testFacade(t)
	f.SetEngine(EngineCurve)
	c := f.AddCurve(false, particle.CurveGap, particle.CurveParams{D: 10, Kmin: 0.2, Kmax: 1.2, Nmin: 1})
	for _, p := range []particle.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}} {
		s := particle.Sample{Delta: 1}
		s.SetPosition(p)
		c.Append(s)
	}

	if !f.InsertSampleOnNearestSegment(particle.Vec2{X: 5, Y: 0}, 5) {
		t.Fatal("expected a segment to be found")
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 samples after insertion, got %d", c.Len())
	}
}

func TestRemoveNearestSampleRemovesClosest(t *testing.T) {
	f := testFacade(t)
	c := f.AddCurve(false, particle.CurveGap, particle.CurveParams{D: 10, Kmin: 0.2, Kmax: 1.2, Nmin: 1})
	for _, p := range []particle.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}} {
		s := particle.Sample{Delta: 1}
		s.SetPosition(p)
		c.Append(s)
	}

	if !f.RemoveNearestSample(particle.Vec2{X: 9, Y: 0}, 5) {
		t.Fatal("expected a sample to be found and removed")
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 samples after removal, got %d", c.Len())
	}
}

func TestGenerateCircleSeedsAClosedCurve(t *testing.T) {
	f := testFacade(t)
	f.Generate(GenerateCircle, 42)
	if f.Curves.Count() != 1 {
		t.Fatalf("expected exactly 1 curve, got %d", f.Curves.Count())
	}
	var c *particle.Curve
	f.Curves.Curves(func(cur *particle.Curve) { c = cur })
	if !c.Closed {
		t.Error("expected the generated curve to be closed")
	}
	if c.Len() == 0 {
		t.Error("expected the generated curve to have samples")
	}
}

func TestGenerateDefaultMazeSeedsLockedBoundaryAndCurve(t *testing.T) {
	f := testFacade(t)
	f.Generate(GenerateDefaultMaze, 7)

	if f.Particles.ParticleCount() != 4 {
		t.Fatalf("expected 4 boundary particles, got %d", f.Particles.ParticleCount())
	}
	lockedCount := 0
	f.Particles.Particles(func(_ particle.Handle, p *particle.Particle) {
		if p.Locked {
			lockedCount++
		}
	})
	if lockedCount != 4 {
		t.Errorf("expected all boundary particles locked, got %d locked", lockedCount)
	}
	if f.Curves.Count() != 1 {
		t.Errorf("expected 1 generated curve, got %d", f.Curves.Count())
	}
}

func TestGenerateClearsPreviousState(t *testing.T) {
	f := testFacade(t)
	f.AddParticle(particle.Vec2{X: 1, Y: 1}, false, 1)
	f.Generate(GenerateCircle, 1)
	if f.Particles.ParticleCount() != 0 {
		t.Errorf("expected Generate to clear prior particles, got %d", f.Particles.ParticleCount())
	}
}

func TestTogglePauseAndForces(t *testing.T) {
	f := testFacade(t)
	if f.Paused() {
		t.Error("expected facade to start unpaused")
	}
	f.TogglePause()
	if !f.Paused() {
		t.Error("expected TogglePause to pause")
	}

	if f.ShowForces() {
		t.Error("expected forces display to start off")
	}
	f.ToggleForces()
	if !f.ShowForces() {
		t.Error("expected ToggleForces to turn it on")
	}
}

func TestRegistryListsKnownSubsystems(t *testing.T) {
	f := testFacade(t)
	reg := f.Registry()
	if _, ok := reg.Get("solver"); !ok {
		t.Error("expected registry to know about the solver subsystem")
	}
	if name := reg.Name("curveevo"); name == "curveevo" {
		t.Error("expected a friendly display name for curveevo")
	}
	if len(reg.All()) == 0 {
		t.Error("expected a non-empty subsystem list")
	}
}
