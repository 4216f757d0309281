package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/lobber/config"
	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/status"
)

// ErrMissingResource is returned by Resource.Validate when a singleton was never wired
var ErrMissingResource = errors.New("missing resource")

// Resource holds singleton game resources, initialized by NewGame, accessed via World.Resources
type Resource struct {
	Time     *TimeResource
	Config   *ConfigResource
	Charge   *ChargeResource
	Focus    *FocusResource
	Viewport *ViewportResource

	// Frame-scoped channels
	Spawns      *event.Queue[event.SpawnRequest]
	FocusSignal *event.Latest[event.FocusNotification]

	// Collaborators
	Input   input.Source
	Capture CaptureSink
	Cues    CuePlayer

	// Telemetry
	Status *status.Registry
}

// Validate reports the first unset resource
func (r *Resource) Validate() error {
	switch {
	case r.Time == nil:
		return fmt.Errorf("%w: time", ErrMissingResource)
	case r.Config == nil || r.Config.Config == nil:
		return fmt.Errorf("%w: config", ErrMissingResource)
	case r.Charge == nil:
		return fmt.Errorf("%w: charge", ErrMissingResource)
	case r.Focus == nil:
		return fmt.Errorf("%w: focus", ErrMissingResource)
	case r.Viewport == nil:
		return fmt.Errorf("%w: viewport", ErrMissingResource)
	case r.Spawns == nil:
		return fmt.Errorf("%w: spawn queue", ErrMissingResource)
	case r.FocusSignal == nil:
		return fmt.Errorf("%w: focus signal", ErrMissingResource)
	case r.Input == nil:
		return fmt.Errorf("%w: input", ErrMissingResource)
	case r.Capture == nil:
		return fmt.Errorf("%w: capture sink", ErrMissingResource)
	case r.Cues == nil:
		return fmt.Errorf("%w: cue player", ErrMissingResource)
	case r.Status == nil:
		return fmt.Errorf("%w: status", ErrMissingResource)
	}
	return nil
}

// === World Resources ===

// TimeResource wraps time data for systems
// Frame fields are updated by Game.Frame, tick fields by the FixedScheduler before each step
type TimeResource struct {
	// FrameDelta is the clamped wall time since the previous frame
	FrameDelta time.Duration

	// FixedDelta is the constant physics step
	FixedDelta time.Duration

	FrameNumber int64
	TickNumber  int64

	// Alpha is the fraction of a fixed step still owed after the frame's ticks ran
	Alpha float64
}

// FrameSeconds returns FrameDelta in seconds
func (tr *TimeResource) FrameSeconds() float64 {
	return tr.FrameDelta.Seconds()
}

// FixedSeconds returns FixedDelta in seconds
func (tr *TimeResource) FixedSeconds() float64 {
	return tr.FixedDelta.Seconds()
}

// ConfigResource exposes the resolved runtime configuration
type ConfigResource struct {
	*config.Config
}

// ChargeResource is the launch charge state
// Power stays in [PowerMin, PowerMax]; it only advances while Charging
type ChargeResource struct {
	Charging bool
	Power    float64
}

// FocusResource is the current focus and derived pointer capture
// Focused implies hidden and locked, unfocused implies visible and free
type FocusResource struct {
	Focused        bool
	PointerVisible bool
	PointerLocked  bool
}

// Set updates focus and derives the capture flags from it
func (fr *FocusResource) Set(focused bool) {
	fr.Focused = focused
	fr.PointerVisible = !focused
	fr.PointerLocked = focused
}

// ViewportResource is the drawable area in terminal cells
type ViewportResource struct {
	Width  int
	Height int
}

// MinExtent returns the smaller viewport dimension, at least 1
func (vr *ViewportResource) MinExtent() int {
	m := min(vr.Width, vr.Height)
	if m < 1 {
		return 1
	}
	return m
}

// === Collaborator interfaces ===

// CaptureSink applies pointer capture to the host window
type CaptureSink interface {
	SetCapture(visible, locked bool)
}

// CuePlayer plays short feedback sounds
type CuePlayer interface {
	PlayLaunch(power float64)
}

type nopCapture struct{}

func (nopCapture) SetCapture(bool, bool) {}

type nopCues struct{}

func (nopCues) PlayLaunch(float64) {}
