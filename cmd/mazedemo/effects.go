package main

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
)

// burstMotion is the kinematic half of a cosmetic effect particle.
type burstMotion struct {
	X, Y, VelX, VelY float32
}

// burstLife is the lifetime/appearance half; kept as a second component so
// a future effect kind could share burstMotion without carrying color.
type burstLife struct {
	Life, MaxLife int32
	Size          float32
	Color         rl.Color
}

// effectSystem drives short-lived visual-only particle bursts (edit-
// gesture feedback, nothing a sim operation reads back), backed by ark's
// archetype ECS. Iteration order here has no observable effect on engine
// state, unlike the grid/curve engines' own Arena-based storage, which is
// exactly why ark is confined to this cosmetic layer.
type effectSystem struct {
	world  *ecs.World
	mapper *ecs.Map2[burstMotion, burstLife]
	filter *ecs.Filter2[burstMotion, burstLife]
}

func newEffects() *effectSystem {
	world := ecs.NewWorld()
	return &effectSystem{
		world:  world,
		mapper: ecs.NewMap2[burstMotion, burstLife](world),
		filter: ecs.NewFilter2[burstMotion, burstLife](world),
	}
}

// EmitBurst spawns a radial burst of n particles at (x, y), used for
// add/remove feedback.
func (e *effectSystem) EmitBurst(x, y float32, col rl.Color, n int) {
	for i := 0; i < n; i++ {
		angle := rand.Float32() * 2 * math.Pi
		speed := 0.6 + rand.Float32()*1.2
		motion := burstMotion{
			X: x, Y: y,
			VelX: float32(math.Cos(float64(angle))) * speed,
			VelY: float32(math.Sin(float64(angle))) * speed,
		}
		life := int32(24 + rand.Intn(20))
		e.mapper.NewEntity(&motion, &burstLife{Life: life, MaxLife: life, Size: 1.5 + rand.Float32(), Color: col})
	}
}

// Update advances and culls every live effect particle.
func (e *effectSystem) Update() {
	var dead []ecs.Entity

	query := e.filter.Query()
	for query.Next() {
		motion, life := query.Get()
		life.Life--
		if life.Life <= 0 {
			dead = append(dead, query.Entity())
			continue
		}
		motion.VelX *= 0.94
		motion.VelY *= 0.94
		motion.X += motion.VelX
		motion.Y += motion.VelY
	}

	for _, entity := range dead {
		e.mapper.Remove(entity)
	}
}

// Draw renders every live effect particle, fading by remaining lifetime.
func (e *effectSystem) Draw() {
	query := e.filter.Query()
	for query.Next() {
		motion, life := query.Get()
		alpha := uint8(255 * float32(life.Life) / float32(life.MaxLife))
		col := life.Color
		col.A = alpha
		rl.DrawCircleV(rl.Vector2{X: motion.X, Y: motion.Y}, life.Size, col)
	}
}
