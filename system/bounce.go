package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/core"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/physics"
	"github.com/lixenwraith/lobber/status"
)

// BounceSystem reflects bodies that are below ground and still moving down
// Lossless, runs after IntegrateSystem
type BounceSystem struct {
	engine.SystemBase
	enabled bool

	statBounces *atomic.Int64
}

func NewBounceSystem(world *engine.World) engine.System {
	s := &BounceSystem{SystemBase: engine.NewSystemBase(world, "bounce")}
	s.statBounces = s.Resource.Status.Ints.Get(status.KeyBounceTotal)
	s.Init()
	return s
}

func (s *BounceSystem) Init() { s.enabled = true }

func (s *BounceSystem) Name() string { return "bounce" }

func (s *BounceSystem) Priority() int { return parameter.PriorityBounce }

func (s *BounceSystem) Update() {
	if !s.enabled {
		return
	}
	var bounced int64
	s.Component.Body.Each(func(_ core.Entity, b *component.BodyComponent) {
		if physics.BounceGround(b) {
			bounced++
		}
	})
	if bounced > 0 {
		s.statBounces.Add(bounced)
	}
}
