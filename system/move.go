package system

import (
	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/vmath"
)

// MoveSystem walks the viewpoint in the horizontal plane from the movement controls
type MoveSystem struct {
	engine.SystemBase
	enabled bool
}

func NewMoveSystem(world *engine.World) engine.System {
	s := &MoveSystem{SystemBase: engine.NewSystemBase(world, "move")}
	s.Init()
	return s
}

func (s *MoveSystem) Init() { s.enabled = true }

func (s *MoveSystem) Name() string { return "move" }

func (s *MoveSystem) Priority() int { return parameter.PriorityMove }

func (s *MoveSystem) Update() {
	if !s.enabled {
		return
	}

	in := s.Resource.Input
	var fwd, side float64
	if in.Pressed(input.ControlForward) {
		fwd++
	}
	if in.Pressed(input.ControlBack) {
		fwd--
	}
	if in.Pressed(input.ControlRight) {
		side++
	}
	if in.Pressed(input.ControlLeft) {
		side--
	}
	if fwd == 0 && side == 0 {
		return
	}

	step := s.Resource.Config.Player.Speed * s.Resource.Time.FrameSeconds()
	vp := s.World.MustViewpoint()
	s.Component.Viewpoint.Update(vp, func(v *component.ViewpointComponent) {
		v.Position = vmath.V3FAdd(v.Position, MoveDelta(v.Forward(), v.Right(), fwd, side, step))
	})
}

// MoveDelta combines forward/right intents into a planar displacement of length step
func MoveDelta(forward, right vmath.Vec3F, fwd, side, step float64) vmath.Vec3F {
	dir := vmath.V3FAdd(vmath.V3FScale(forward, fwd), vmath.V3FScale(right, side))
	dir = vmath.V3FNormalize(vmath.V3FFlatten(dir))
	return vmath.V3FScale(dir, step)
}
