// Package facade orchestrates one tick of whichever simulation core is
// active and forwards user edit gestures to it.
package facade

import (
	"github.com/labyrinthine/maze-engine/config"
	"github.com/labyrinthine/maze-engine/curveevo"
	"github.com/labyrinthine/maze-engine/field"
	"github.com/labyrinthine/maze-engine/history"
	"github.com/labyrinthine/maze-engine/particle"
	"github.com/labyrinthine/maze-engine/solver"
)

// Mode is the current edit gesture. Drag and Select share the same Mode value; which gesture it
// performs depends on the active Engine.
type Mode int

const (
	ModeDraw Mode = iota
	ModeErase
	ModeDragSelect
)

// Engine selects which simulation core tick() advances.
type Engine int

const (
	EngineGrid Engine = iota
	EngineCurve
)

// Facade is the single entry point the presentation layer drives: it owns
// both simulation cores, their history, and the edit-gesture state. It
// exclusively owns the particles/samples/curves and their spatial indexes;
// nothing outside it holds a long-lived reference into engine-internal
// state.
type Facade struct {
	cfg *config.Config

	Particles *particle.System
	Curves    *particle.CurveSet

	solver  *solver.ConstraintSolver
	evolver *curveevo.Evolver
	fields  curveevo.FieldSet

	gridHistory  *history.History[history.GridSnapshot]
	curveHistory *history.History[history.CurveSetSnapshot]

	engine     Engine
	mode       Mode
	paused     bool
	showForces bool
	tick       int

	dragHandle    particle.Handle
	dragHasHandle bool

	registry *Registry
}

// New builds a Facade with fresh, empty simulation state sized from cfg.
// seed fixes the curve engine's Brownian RNG for deterministic replay
func New(cfg *config.Config, seed int64) *Facade {
	w, h := int(cfg.World.Width), int(cfg.World.Height)
	fields := curveevo.ConstantFieldSet(w, h, 0, 0, cfg.World.Width, cfg.World.Height, cfg.Curve.BrownianSigma, 1, 1, 0)

	f := &Facade{
		cfg:       cfg,
		Particles: particle.NewSystem(cfg.Physics.CellSize),
		Curves:    particle.NewCurveSet(cfg.Curve.CellSize),
		solver:    solver.New(cfg.Physics, cfg.World.Width, cfg.Derived.BottomY),
		evolver:   curveevo.New(cfg.Curve, cfg.Physics.DT, fields, seed),
		fields:    fields,

		gridHistory:  history.New(cfg.History.Capacity, history.CloneGridSnapshot),
		curveHistory: history.New(cfg.History.Capacity, history.CloneCurveSetSnapshot),

		registry: newRegistry(),
	}
	return f
}

// Fields returns the curve engine's spatially-varying parameter fields,
// for painting by the presentation layer or a generator.
func (f *Facade) Fields() curveevo.FieldSet { return f.fields }

// Registry exposes subsystem metadata for introspection/HUD use.
func (f *Facade) Registry() *Registry { return f.registry }

// Engine returns the currently active simulation core.
func (f *Facade) Engine() Engine { return f.engine }

// SetEngine switches which core Tick advances.
func (f *Facade) SetEngine(e Engine) { f.engine = e }

// Mode returns the current edit gesture.
func (f *Facade) Mode() Mode { return f.mode }

// SetMode sets the current edit gesture.
func (f *Facade) SetMode(m Mode) { f.mode = m }

// Paused reports whether the simulation is paused.
func (f *Facade) Paused() bool { return f.paused }

// SetPaused sets the paused flag.
func (f *Facade) SetPaused(p bool) { f.paused = p }

// TogglePause flips the paused flag.
func (f *Facade) TogglePause() { f.paused = !f.paused }

// ShowForces reports whether the presentation layer should draw the
// per-particle debug force vector.
func (f *Facade) ShowForces() bool { return f.showForces }

// ToggleForces flips the force-vector display flag.
func (f *Facade) ToggleForces() { f.showForces = !f.showForces }

// Tick advances the active engine by one step, unless paused.
func (f *Facade) Tick() {
	if f.paused {
		return
	}
	switch f.engine {
	case EngineGrid:
		f.solver.Step(f.Particles)
	case EngineCurve:
		f.evolver.Step(f.Curves)
	}
	f.tick++
}

// TickCount returns the number of ticks advanced so far.
func (f *Facade) TickCount() int { return f.tick }

// Clear empties both engines' live state.
func (f *Facade) Clear() {
	f.Particles.Clear()
	var ids []int
	f.Curves.Curves(func(c *particle.Curve) { ids = append(ids, c.ID) })
	for _, id := range ids {
		f.Curves.RemoveCurve(id)
	}
}

// paintFields reseeds the curve engine's fields from a procedural noise
// generator, used by Generate.
func (f *Facade) paintFields(seed int64) {
	gen := field.NewProceduralNoise(field.DefaultNoiseOptions(seed))
	f.fields.Brownian.FillProcedural(gen)
	f.fields.Attract.FillProcedural(gen)
}
