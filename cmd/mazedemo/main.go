// Command mazedemo is a thin raylib/raygui presentation layer over the
// maze engine: it polls keyboard/mouse state each frame, forwards it 1:1
// onto facade.Facade commands, and draws the resulting particles,
// constraints, curves, and optional force vectors.
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/labyrinthine/maze-engine/config"
	"github.com/labyrinthine/maze-engine/facade"
	"github.com/labyrinthine/maze-engine/mazeio"
	"github.com/labyrinthine/maze-engine/particle"
	"github.com/labyrinthine/maze-engine/telemetry"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file (embedded defaults used if empty)")
	seed       = flag.Int64("seed", 1, "RNG seed for curve Brownian motion and generator presets")
	exportPath = flag.String("export", "maze.json", "Path used by the export/import actions")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazedemo: loading config: %v\n", err)
		os.Exit(1)
	}

	f := facade.New(cfg, *seed)
	f.Generate(facade.GenerateDefaultMaze, *seed)

	rl.InitWindow(int32(cfg.World.Width), int32(cfg.World.Height), "Maze Engine")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &demo{
		facade:   f,
		cfg:      cfg,
		effects:  newEffects(),
		rec:      telemetry.NewRecorder(120),
		exportTo: *exportPath,
	}

	for !rl.WindowShouldClose() {
		app.handleInput()
		f.Tick()
		app.effects.Update()
		app.sample()
		app.draw()
	}
}

// demo holds the presentation layer's own frame-to-frame state: nothing
// here participates in the simulation itself.
type demo struct {
	facade   *facade.Facade
	cfg      *config.Config
	effects  *effectSystem
	rec      *telemetry.Recorder
	exportTo string

	dragging bool
}

// sample records one telemetry row for the current frame.
func (d *demo) sample() {
	dt := rl.GetFrameTime()
	particles := d.facade.Particles.ParticleCount()
	constraints := d.facade.Particles.ConstraintCount()
	samples, curves := 0, d.facade.Curves.Count()
	d.facade.Curves.Curves(func(c *particle.Curve) { samples += c.Len() })
	d.rec.Sample(float64(dt), particles, constraints, samples, curves)
}

// exportMaze writes the grid engine's current state to exportTo.
func (d *demo) exportMaze() {
	data, err := mazeio.Save(d.facade.Particles)
	if err != nil {
		telemetry.Logf("mazedemo: export failed: %v", err)
		return
	}
	if err := os.WriteFile(d.exportTo, data, 0o644); err != nil {
		telemetry.Logf("mazedemo: export failed: %v", err)
		return
	}
	telemetry.Logf("mazedemo: exported to %s", d.exportTo)
}

// importMaze loads the grid engine's state from exportTo, replacing what's
// currently live.
func (d *demo) importMaze() {
	data, err := os.ReadFile(d.exportTo)
	if err != nil {
		telemetry.Logf("mazedemo: import failed: %v", err)
		return
	}
	if err := mazeio.Load(data, d.facade.Particles); err != nil {
		telemetry.Logf("mazedemo: import failed: %v", err)
		return
	}
	d.facade.SaveState()
	telemetry.Logf("mazedemo: imported from %s", d.exportTo)
}
