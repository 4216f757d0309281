package system

import (
	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/vmath"
)

// LookSystem turns pointer motion into viewpoint yaw and pitch
// Sensitivity is scaled by the smaller viewport extent so turn rate does not depend on terminal size
// Only active while focused
type LookSystem struct {
	engine.SystemBase
	enabled bool
}

func NewLookSystem(world *engine.World) engine.System {
	s := &LookSystem{SystemBase: engine.NewSystemBase(world, "look")}
	s.Init()
	return s
}

func (s *LookSystem) Init() { s.enabled = true }

func (s *LookSystem) Name() string { return "look" }

func (s *LookSystem) Priority() int { return parameter.PriorityLook }

func (s *LookSystem) Update() {
	if !s.enabled || !s.Resource.Focus.Focused {
		return
	}

	dx, dy := s.Resource.Input.PointerDelta()
	if dx == 0 && dy == 0 {
		return
	}

	sensitivity := LookSensitivity(s.Resource.Config.Player.Sensitivity, s.Resource.Viewport.MinExtent())

	vp := s.World.MustViewpoint()
	s.Component.Viewpoint.Update(vp, func(v *component.ViewpointComponent) {
		v.Yaw, v.Pitch = ApplyLook(v.Yaw, v.Pitch, dx, dy, sensitivity)
	})
}

// LookSensitivity scales the base sensitivity by SensitivityReference / minExtent
func LookSensitivity(base float64, minExtent int) float64 {
	if minExtent < 1 {
		minExtent = 1
	}
	return parameter.SensitivityReference / float64(minExtent) * base
}

// ApplyLook returns the orientation after a pointer delta, pitch clamped to [-π/2, π/2]
func ApplyLook(yaw, pitch, dx, dy, sensitivity float64) (float64, float64) {
	pitch = vmath.Clamp(pitch-dy*sensitivity, -vmath.HalfPi, vmath.HalfPi)
	yaw -= dx * sensitivity
	return yaw, pitch
}
