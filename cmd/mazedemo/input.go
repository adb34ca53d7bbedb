package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/labyrinthine/maze-engine/facade"
	"github.com/labyrinthine/maze-engine/particle"
)

// pickTolerance is the default point-to-entity hit radius for mouse
// gestures.
const pickTolerance = 12.0

// handleInput polls keyboard and mouse state and forwards it 1:1 onto
// facade commands.
func (d *demo) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		d.facade.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyZ) {
		d.facade.Undo()
	}
	if rl.IsKeyPressed(rl.KeyY) {
		d.facade.Redo()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		d.facade.ToggleForces()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		d.facade.Clear()
		d.facade.SaveState()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		d.facade.Generate(facade.GenerateDefaultMaze, *seed)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		d.toggleEngine()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		d.facade.SetMode(facade.ModeDraw)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		d.facade.SetMode(facade.ModeErase)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		d.facade.SetMode(facade.ModeDragSelect)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		d.exportMaze()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		d.importMaze()
	}

	d.handleMouse()
}

// toggleEngine flips between the grid and curve engine, abandoning any
// in-progress drag so state doesn't leak across engines.
func (d *demo) toggleEngine() {
	if d.dragging {
		d.facade.EndDrag()
		d.dragging = false
	}
	if d.facade.Engine() == facade.EngineGrid {
		d.facade.SetEngine(facade.EngineCurve)
	} else {
		d.facade.SetEngine(facade.EngineGrid)
	}
}

// handleMouse dispatches left-click gestures according to the active mode
func (d *demo) handleMouse() {
	mp := rl.GetMousePosition()
	pos := particle.Vec2{X: float64(mp.X), Y: float64(mp.Y)}

	switch d.facade.Mode() {
	case facade.ModeDraw:
		d.handleDraw(pos)
	case facade.ModeErase:
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			d.eraseAt(pos)
		}
	case facade.ModeDragSelect:
		d.handleDragSelect(pos)
	}
}

// handleDraw adds a particle on click (grid engine) or inserts a sample on
// the nearest segment (curve engine).
func (d *demo) handleDraw(pos particle.Vec2) {
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	switch d.facade.Engine() {
	case facade.EngineGrid:
		d.facade.AddParticle(pos, rl.IsKeyDown(rl.KeyLeftShift), 1)
		d.facade.SaveState()
		d.effects.EmitBurst(float32(pos.X), float32(pos.Y), rl.Color{R: 240, G: 220, B: 120, A: 255}, 6)
	case facade.EngineCurve:
		if d.facade.InsertSampleOnNearestSegment(pos, pickTolerance) {
			d.facade.SaveState()
			d.effects.EmitBurst(float32(pos.X), float32(pos.Y), rl.Color{R: 180, G: 160, B: 240, A: 255}, 6)
		}
	}
}

// eraseAt removes the nearest particle (grid) or sample (curve) to pos.
func (d *demo) eraseAt(pos particle.Vec2) {
	switch d.facade.Engine() {
	case facade.EngineGrid:
		if d.facade.RemoveAt(pos, pickTolerance) {
			d.facade.SaveState()
			d.effects.EmitBurst(float32(pos.X), float32(pos.Y), rl.Color{R: 220, G: 80, B: 80, A: 255}, 10)
		}
	case facade.EngineCurve:
		if d.facade.RemoveNearestSample(pos, pickTolerance) {
			d.facade.SaveState()
			d.effects.EmitBurst(float32(pos.X), float32(pos.Y), rl.Color{R: 220, G: 80, B: 80, A: 255}, 10)
		}
	}
}

// handleDragSelect drags the nearest particle under the mouse for the
// duration of a left-button hold (grid engine only; the curve engine's
// Select gesture has no live-drag counterpart in this layer).
func (d *demo) handleDragSelect(pos particle.Vec2) {
	if d.facade.Engine() != facade.EngineGrid {
		return
	}
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		d.dragging = d.facade.BeginDrag(pos, pickTolerance)
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && d.dragging:
		d.facade.DragTo(pos)
	case rl.IsMouseButtonReleased(rl.MouseLeftButton) && d.dragging:
		d.facade.EndDrag()
		d.dragging = false
	}
}
