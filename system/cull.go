package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
)

// CullSystem destroys the oldest projectiles once the live count exceeds the configured cap
type CullSystem struct {
	engine.SystemBase
	enabled bool

	statCulled *atomic.Int64
}

func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{SystemBase: engine.NewSystemBase(world, "cull")}
	s.statCulled = s.Resource.Status.Ints.Get(status.KeyCullTotal)
	s.Init()
	return s
}

func (s *CullSystem) Init() { s.enabled = true }

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) Update() {
	limit := s.Resource.Config.Scene.MaxProjectiles
	if !s.enabled || limit <= 0 {
		return
	}

	excess := s.Component.Projectile.Len() - limit
	if excess <= 0 {
		return
	}

	oldest := s.Component.Projectile.Entities()[:excess]
	s.World.DestroyBatch(oldest)
	s.statCulled.Add(int64(excess))

	s.Logger.Debug().Int("culled", excess).Int("limit", limit).Msg("projectile cap reached")
}
