package system

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
	"github.com/lixenwraith/lobber/vmath"
)

// SpawnSystem is the single consumer of spawn requests
// Each request becomes exactly one projectile body with velocity = direction * power * launch speed
type SpawnSystem struct {
	engine.SystemBase
	enabled bool

	rng *rand.Rand

	statSpawned *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{SystemBase: engine.NewSystemBase(world, "spawn")}
	s.statSpawned = s.Resource.Status.Ints.Get(status.KeySpawnTotal)
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	seed := s.Resource.Config.Scene.Seed
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s.enabled = true
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update() {
	requests := s.Resource.Spawns.Drain()
	if !s.enabled || len(requests) == 0 {
		return
	}

	speed := s.Resource.Config.Launch.Speed
	for _, req := range requests {
		e := s.World.CreateEntity()
		velocity := vmath.V3FScale(req.Direction, req.Power*speed)

		s.Component.Body.Set(e, component.BodyComponent{
			Position: req.Position,
			Velocity: velocity,
		})
		s.Component.Projectile.Set(e, component.ProjectileComponent{
			Power:      req.Power,
			Hue:        PaletteHue(s.rng.IntN(parameter.PaletteSize)),
			SpawnFrame: req.Frame,
		})

		s.Resource.Cues.PlayLaunch(req.Power)

		s.Logger.Debug().
			Uint64("entity", uint64(e)).
			Float64("power", req.Power).
			Float64("speed", vmath.V3FMag(velocity)).
			Msg("projectile spawned")
	}
	s.statSpawned.Add(int64(len(requests)))
}

// PaletteHue returns the hue in degrees of palette slot i
func PaletteHue(i int) float64 {
	return float64(i%parameter.PaletteSize) * 360 / parameter.PaletteSize
}
