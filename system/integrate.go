package system

import (
	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/core"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/physics"
)

// IntegrateSystem advances body positions by velocity over one fixed step
type IntegrateSystem struct {
	engine.SystemBase
	enabled bool
}

func NewIntegrateSystem(world *engine.World) engine.System {
	s := &IntegrateSystem{SystemBase: engine.NewSystemBase(world, "integrate")}
	s.Init()
	return s
}

func (s *IntegrateSystem) Init() { s.enabled = true }

func (s *IntegrateSystem) Name() string { return "integrate" }

func (s *IntegrateSystem) Priority() int { return parameter.PriorityIntegrate }

func (s *IntegrateSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.Resource.Time.FixedSeconds()
	s.Component.Body.Each(func(_ core.Entity, b *component.BodyComponent) {
		physics.Integrate(b, dt)
	})
}
