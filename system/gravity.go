package system

import (
	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/core"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/physics"
	"github.com/lixenwraith/lobber/vmath"
)

// GravitySystem accelerates every dynamic body by the constant gravity vector
// Fixed step, runs before IntegrateSystem
type GravitySystem struct {
	engine.SystemBase
	gravity vmath.Vec3F
	enabled bool
}

func NewGravitySystem(world *engine.World) engine.System {
	s := &GravitySystem{SystemBase: engine.NewSystemBase(world, "gravity")}
	s.Init()
	return s
}

func (s *GravitySystem) Init() {
	s.gravity = vmath.Vec3F{Y: s.Resource.Config.Physics.GravityY}
	s.enabled = true
}

func (s *GravitySystem) Name() string { return "gravity" }

func (s *GravitySystem) Priority() int { return parameter.PriorityGravity }

func (s *GravitySystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.Resource.Time.FixedSeconds()
	s.Component.Body.Each(func(_ core.Entity, b *component.BodyComponent) {
		physics.ApplyGravity(b, s.gravity, dt)
	})
}
