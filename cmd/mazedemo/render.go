package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/labyrinthine/maze-engine/facade"
	"github.com/labyrinthine/maze-engine/particle"
	"github.com/labyrinthine/maze-engine/telemetry"
)

func (d *demo) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 20, G: 20, B: 28, A: 255})

	switch d.facade.Engine() {
	case facade.EngineGrid:
		d.drawGrid()
	case facade.EngineCurve:
		d.drawCurves()
	}
	d.effects.Draw()
	d.drawHUD()

	rl.EndDrawing()
}

// drawGrid draws every live constraint as a line and every live particle
// as a circle, locked particles in a distinct color.
func (d *demo) drawGrid() {
	d.facade.Particles.Constraints(func(_ particle.Handle, c *particle.DistanceConstraint) {
		a := d.facade.Particles.Particle(c.A)
		b := d.facade.Particles.Particle(c.B)
		if a == nil || b == nil {
			return
		}
		rl.DrawLineV(toRL(a.Pos), toRL(b.Pos), rl.Color{R: 120, G: 160, B: 220, A: 200})
	})

	d.facade.Particles.Particles(func(_ particle.Handle, p *particle.Particle) {
		col := rl.Color{R: 240, G: 220, B: 120, A: 255}
		if p.Locked {
			col = rl.Color{R: 220, G: 80, B: 80, A: 255}
		}
		rl.DrawCircleV(toRL(p.Pos), 4, col)
		if d.facade.ShowForces() {
			v := telemetry.ForceVector(p.Pos, p.Prev)
			rl.DrawLineV(toRL(p.Pos), toRL(p.Pos.Add(v)), rl.Color{R: 90, G: 230, B: 140, A: 200})
		}
	})
}

// drawCurves draws every curve as a polyline (closed curves wrap back to
// their first sample) and every sample as a small dot.
func (d *demo) drawCurves() {
	d.facade.Curves.Curves(func(c *particle.Curve) {
		col := curveColor(c.Type)
		n := c.Len()
		for i := 0; i < n; i++ {
			j := i + 1
			if j == n {
				if !c.Closed {
					break
				}
				j = 0
			}
			a, b := c.At(i), c.At(j)
			rl.DrawLineV(toRL(a.Pos), toRL(b.Pos), col)
		}
		for i := 0; i < n; i++ {
			s := c.At(i)
			rl.DrawCircleV(toRL(s.Pos), 3, col)
			if d.facade.ShowForces() {
				v := telemetry.ForceVector(s.Pos, s.Prev)
				rl.DrawLineV(toRL(s.Pos), toRL(s.Pos.Add(v)), rl.Color{R: 90, G: 230, B: 140, A: 200})
			}
		}
	})
}

func curveColor(typ particle.CurveType) rl.Color {
	switch typ {
	case particle.CurveBoundary:
		return rl.Color{R: 220, G: 80, B: 80, A: 255}
	case particle.CurveGap:
		return rl.Color{R: 120, G: 200, B: 220, A: 255}
	default:
		return rl.Color{R: 180, G: 160, B: 240, A: 255}
	}
}

func toRL(v particle.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// drawHUD renders the inspection outputs and a raygui toolbar of the
// Facade's toggles/actions.
func (d *demo) drawHUD() {
	rl.DrawText("Maze Engine", 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Tick: %d | FPS EMA: %.1f", d.facade.TickCount(), d.rec.FPSEMA()), 10, 35, 16, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Particles: %d | Constraints: %d | Curves: %d",
		d.facade.Particles.ParticleCount(), d.facade.Particles.ConstraintCount(), d.facade.Curves.Count()), 10, 55, 16, rl.LightGray)

	status := "Running"
	if d.facade.Paused() {
		status = "PAUSED"
	}
	rl.DrawText(status, 10, 75, 16, rl.Yellow)
	rl.DrawText("Space pause | Z/Y undo/redo | F forces | C clear | G generate | Tab engine | 1/2/3 mode | S export | L import",
		10, int32(d.cfg.World.Height)-25, 14, rl.Gray)

	d.drawToolbar()
}

// drawToolbar renders raygui buttons mirroring the keyboard actions, for
// mouse-only operation.
func (d *demo) drawToolbar() {
	x := float32(d.cfg.World.Width) - 140
	y := float32(10)
	const h, gap = 26, 30

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, pauseLabel(d.facade.Paused())) {
		d.facade.TogglePause()
	}
	y += gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, "Undo") {
		d.facade.Undo()
	}
	y += gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, "Redo") {
		d.facade.Redo()
	}
	y += gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, "Clear") {
		d.facade.Clear()
		d.facade.SaveState()
	}
	y += gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, "Generate") {
		d.facade.Generate(facade.GenerateDefaultMaze, *seed)
	}
	y += gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, "Export") {
		d.exportMaze()
	}
	y += gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: h}, "Import") {
		d.importMaze()
	}
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
