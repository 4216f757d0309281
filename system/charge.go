package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
	"github.com/lixenwraith/lobber/vmath"
)

// ChargeSystem runs the launch charge state machine
//
//	Idle --just pressed--> Charging --held--> Power += frame delta, clamped
//	Charging --just released--> push SpawnRequest(Power), Idle, Power = PowerMin
//
// Inert while the pointer is visible (capture inactive)
type ChargeSystem struct {
	engine.SystemBase
	enabled bool

	statPower    *status.Float
	statCharging *atomic.Bool
}

func NewChargeSystem(world *engine.World) engine.System {
	s := &ChargeSystem{SystemBase: engine.NewSystemBase(world, "charge")}
	s.statPower = s.Resource.Status.Floats.Get(status.KeyChargePower)
	s.statCharging = s.Resource.Status.Bools.Get(status.KeyCharging)
	s.Init()
	return s
}

func (s *ChargeSystem) Init() {
	s.Resource.Charge.Charging = false
	s.Resource.Charge.Power = s.Resource.Config.Launch.PowerMin
	s.enabled = true
}

func (s *ChargeSystem) Name() string { return "charge" }

func (s *ChargeSystem) Priority() int { return parameter.PriorityCharge }

func (s *ChargeSystem) Update() {
	if !s.enabled || s.Resource.Focus.PointerVisible {
		return
	}

	in := s.Resource.Input
	charge := s.Resource.Charge
	launch := s.Resource.Config.Launch

	switch {
	case charge.Charging && in.JustReleased(input.ControlLaunch):
		s.release(charge.Power)
		charge.Charging = false
		charge.Power = launch.PowerMin
	case charge.Charging && in.Pressed(input.ControlLaunch):
		charge.Power = vmath.Clamp(charge.Power+s.Resource.Time.FrameSeconds(), launch.PowerMin, launch.PowerMax)
	}

	if in.JustPressed(input.ControlLaunch) {
		charge.Charging = true
	}

	s.statPower.Store(charge.Power)
	s.statCharging.Store(charge.Charging)
}

// release emits the spawn request for the captured power
func (s *ChargeSystem) release(power float64) {
	vp := s.World.MustViewpoint()
	view, _ := s.Component.Viewpoint.Get(vp)

	s.Resource.Spawns.Push(event.SpawnRequest{
		Position:  view.Position,
		Direction: view.Forward(),
		Power:     power,
		Frame:     s.Resource.Time.FrameNumber,
	})

	s.Logger.Debug().Float64("power", power).Int64("frame", s.Resource.Time.FrameNumber).Msg("launch released")
}
