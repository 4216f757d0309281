package system

import (
	"sync/atomic"

	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
)

// FocusSystem is the only writer of FocusResource and the only caller of the capture sink
// Window focus reports and the capture toggle both land in the FocusSignal slot;
// the last value written this frame is applied once
type FocusSystem struct {
	engine.SystemBase
	enabled bool

	statFocused *atomic.Bool
	statSource  *status.Label
}

func NewFocusSystem(world *engine.World) engine.System {
	s := &FocusSystem{SystemBase: engine.NewSystemBase(world, "focus")}
	s.statFocused = s.Resource.Status.Bools.Get(status.KeyFocused)
	s.statSource = s.Resource.Status.Labels.Get(status.KeyFocusSource)
	s.Init()
	return s
}

func (s *FocusSystem) Init() { s.enabled = true }

func (s *FocusSystem) Name() string { return "focus" }

func (s *FocusSystem) Priority() int { return parameter.PriorityFocus }

func (s *FocusSystem) Update() {
	if !s.enabled {
		return
	}

	signal := s.Resource.FocusSignal
	focus := s.Resource.Focus

	if s.Resource.Input.JustReleased(input.ControlToggleCapture) {
		// Flip the value that would be applied this frame, not a stale one
		current := focus.Focused
		if pending, ok := signal.Peek(); ok {
			current = pending.Focused
		}
		signal.Set(event.FocusNotification{Focused: !current, Source: event.FocusSourceToggle})
	}

	n, ok, writes := signal.Take()
	if !ok {
		return
	}

	changed := n.Focused != focus.Focused
	focus.Set(n.Focused)
	s.Resource.Capture.SetCapture(focus.PointerVisible, focus.PointerLocked)

	s.statFocused.Store(focus.Focused)
	s.statSource.Store(n.Source.String())

	s.Logger.Debug().
		Bool("focused", focus.Focused).
		Bool("changed", changed).
		Str("source", n.Source.String()).
		Int("folded", writes).
		Msg("capture applied")
}
