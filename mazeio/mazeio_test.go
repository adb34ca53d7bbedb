package mazeio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/labyrinthine/maze-engine/particle"
	"github.com/labyrinthine/maze-engine/telemetry"
)

func TestLoadBasicDocument(t *testing.T) {
	doc := `{
		"particles": [{"x": 0, "y": 0, "locked": true}, {"x": 10, "y": 0}],
		"constraints": [{"a": 0, "b": 1, "restLength": 10}]
	}`
	sys := particle.NewSystem(32)
	if err := Load([]byte(doc), sys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.ParticleCount() != 2 {
		t.Fatalf("expected 2 particles, got %d", sys.ParticleCount())
	}
	if sys.ConstraintCount() != 1 {
		t.Fatalf("expected 1 constraint, got %d", sys.ConstraintCount())
	}
}

func TestLoadDefaultsMassAndStiffness(t *testing.T) {
	doc := `{
		"particles": [{"x": 0, "y": 0}, {"x": 10, "y": 0}],
		"constraints": [{"a": 0, "b": 1, "restLength": 5}]
	}`
	sys := particle.NewSystem(32)
	if err := Load([]byte(doc), sys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var gotMass float64
	sys.Particles(func(_ particle.Handle, p *particle.Particle) {
		gotMass = p.Mass
	})
	if gotMass != 1.0 {
		t.Errorf("expected default mass 1.0, got %v", gotMass)
	}
	var gotStiffness float64
	sys.Constraints(func(_ particle.Handle, c *particle.DistanceConstraint) {
		gotStiffness = c.Stiffness
	})
	if gotStiffness != 1.0 {
		t.Errorf("expected default stiffness 1.0, got %v", gotStiffness)
	}
}

func TestLoadDropsOutOfRangeConstraintAndWarns(t *testing.T) {
	var buf bytes.Buffer
	telemetry.SetLogWriter(&buf)
	defer telemetry.SetLogWriter(nil)

	doc := `{
		"particles": [{"x": 0, "y": 0}],
		"constraints": [{"a": 0, "b": 5, "restLength": 1}]
	}`
	sys := particle.NewSystem(32)
	if err := Load([]byte(doc), sys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.ConstraintCount() != 0 {
		t.Errorf("expected out-of-range constraint to be dropped, got %d constraints", sys.ConstraintCount())
	}
	if !strings.Contains(buf.String(), "dropping constraint") {
		t.Errorf("expected a warning to be logged, got %q", buf.String())
	}
}

func TestLoadRejectsNonPositiveMassWithoutMutatingState(t *testing.T) {
	sys := particle.NewSystem(32)
	sys.AddParticle(particle.Vec2{X: 1, Y: 1}, false, 1)

	doc := `{"particles": [{"x": 0, "y": 0, "mass": -1}], "constraints": []}`
	err := Load([]byte(doc), sys)
	if err == nil {
		t.Fatal("expected an error for non-positive mass")
	}
	if sys.ParticleCount() != 1 {
		t.Errorf("expected Load to leave existing state untouched on error, got %d particles", sys.ParticleCount())
	}
}

func TestLoadRejectsNegativeRestLengthWithoutMutatingState(t *testing.T) {
	sys := particle.NewSystem(32)
	sys.AddParticle(particle.Vec2{X: 1, Y: 1}, false, 1)

	doc := `{
		"particles": [{"x": 0, "y": 0}, {"x": 10, "y": 0}],
		"constraints": [{"a": 0, "b": 1, "restLength": -5}]
	}`
	err := Load([]byte(doc), sys)
	if err == nil {
		t.Fatal("expected an error for negative restLength")
	}
	if sys.ParticleCount() != 1 {
		t.Errorf("expected Load to leave existing state untouched on error, got %d particles", sys.ParticleCount())
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	sys := particle.NewSystem(32)
	if err := Load([]byte("not json"), sys); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	sys := particle.NewSystem(32)
	a := sys.AddParticle(particle.Vec2{X: 3, Y: 4}, true, 2)
	b := sys.AddParticle(particle.Vec2{X: 30, Y: 40}, false, 1)
	sys.AddConstraint(a, b, 25, 0.5)

	data, err := Save(sys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := particle.NewSystem(32)
	if err := Load(data, out); err != nil {
		t.Fatalf("unexpected error reloading saved document: %v", err)
	}
	if out.ParticleCount() != 2 || out.ConstraintCount() != 1 {
		t.Fatalf("expected round trip to preserve counts, got %d particles %d constraints", out.ParticleCount(), out.ConstraintCount())
	}

	var positions []particle.Vec2
	sys.Particles(func(_ particle.Handle, p *particle.Particle) { positions = append(positions, p.Pos) })
	var outPositions []particle.Vec2
	out.Particles(func(_ particle.Handle, p *particle.Particle) { outPositions = append(outPositions, p.Pos) })
	if positions[0] != outPositions[0] || positions[1] != outPositions[1] {
		t.Errorf("expected positions to round-trip, got %v vs %v", positions, outPositions)
	}
}

func TestSaveReconstructsZeroVelocityOnLoad(t *testing.T) {
	sys := particle.NewSystem(32)
	h := sys.AddParticle(particle.Vec2{X: 0, Y: 0}, false, 1)
	if p := sys.Particle(h); p != nil {
		p.Pos = particle.Vec2{X: 5, Y: 5} // simulate a moved particle, prev left behind
	}

	data, err := Save(sys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Particles[0].X != 5 || doc.Particles[0].Y != 5 {
		t.Fatalf("expected saved position to be the current pos, got %+v", doc.Particles[0])
	}

	out := particle.NewSystem(32)
	if err := Load(data, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out.Particles(func(_ particle.Handle, p *particle.Particle) {
		if p.Velocity() != (particle.Vec2{}) {
			t.Errorf("expected zero velocity after load, got %v", p.Velocity())
		}
	})
}
