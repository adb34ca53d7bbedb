// Package mazeio implements the maze engine's persisted JSON format: an
// object with a particles array and a constraints array, with constraint
// endpoints referenced by index into particles.
package mazeio

import (
	"encoding/json"
	"fmt"

	"github.com/labyrinthine/maze-engine/particle"
	"github.com/labyrinthine/maze-engine/telemetry"
)

type jsonParticle struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Locked bool     `json:"locked"`
	Mass   *float64 `json:"mass,omitempty"`
}

type jsonConstraint struct {
	A          int      `json:"a"`
	B          int      `json:"b"`
	RestLength float64  `json:"restLength"`
	Stiffness  *float64 `json:"stiffness,omitempty"`
}

type document struct {
	Particles   []jsonParticle   `json:"particles"`
	Constraints []jsonConstraint `json:"constraints"`
}

// Load parses data as a maze document and replaces sys's contents with it.
// Mass defaults to 1.0 and stiffness defaults to 1.0 when absent. A
// non-positive mass or negative restLength is an input-validation error:
// Load returns the error and leaves sys untouched. An out-of-range
// constraint index is a structural-integrity concern instead: the
// offending constraint is dropped and a warning is emitted via
// telemetry.Logf, and loading continues.
func Load(data []byte, sys *particle.System) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("mazeio: parsing maze document: %w", err)
	}

	for i, jp := range doc.Particles {
		if jp.Mass != nil && *jp.Mass <= 0 {
			return fmt.Errorf("mazeio: particle %d: mass must be positive, got %v", i, *jp.Mass)
		}
	}
	for i, jc := range doc.Constraints {
		if jc.RestLength < 0 {
			return fmt.Errorf("mazeio: constraint %d: restLength must be non-negative, got %v", i, jc.RestLength)
		}
	}

	sys.Clear()
	handles := make([]particle.Handle, len(doc.Particles))
	for i, jp := range doc.Particles {
		mass := 1.0
		if jp.Mass != nil {
			mass = *jp.Mass
		}
		handles[i] = sys.AddParticle(particle.Vec2{X: jp.X, Y: jp.Y}, jp.Locked, mass)
	}

	n := len(handles)
	for i, jc := range doc.Constraints {
		if jc.A < 0 || jc.A >= n || jc.B < 0 || jc.B >= n {
			telemetry.Logf("mazeio: dropping constraint %d: endpoint index out of range (a=%d b=%d, %d particles)", i, jc.A, jc.B, n)
			continue
		}
		stiffness := 1.0
		if jc.Stiffness != nil {
			stiffness = *jc.Stiffness
		}
		sys.AddConstraint(handles[jc.A], handles[jc.B], jc.RestLength, stiffness)
	}
	return nil
}

// Save serializes sys's particles and constraints into a maze document.
// Velocity is not persisted: Prev is reconstructed equal to Pos on the
// next Load, yielding zero initial velocity.
func Save(sys *particle.System) ([]byte, error) {
	var doc document
	indexOf := make(map[particle.Handle]int, sys.ParticleCount())

	sys.Particles(func(h particle.Handle, p *particle.Particle) {
		indexOf[h] = len(doc.Particles)
		mass := p.Mass
		doc.Particles = append(doc.Particles, jsonParticle{X: p.Pos.X, Y: p.Pos.Y, Locked: p.Locked, Mass: &mass})
	})

	sys.Constraints(func(_ particle.Handle, c *particle.DistanceConstraint) {
		a, okA := indexOf[c.A]
		b, okB := indexOf[c.B]
		if !okA || !okB {
			return
		}
		stiffness := c.Stiffness
		doc.Constraints = append(doc.Constraints, jsonConstraint{A: a, B: b, RestLength: c.RestLength, Stiffness: &stiffness})
	})

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mazeio: marshaling maze document: %w", err)
	}
	return data, nil
}
