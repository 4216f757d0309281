package event

import (
	"github.com/lixenwraith/lobber/vmath"
)

// SpawnRequest asks the spawn consumer to create a projectile
// Trigger: ChargeSystem on launch control release
// Consumer: SpawnSystem | Lifetime: one frame
type SpawnRequest struct {
	Position  vmath.Vec3F // Launch origin, viewpoint position at release
	Direction vmath.Vec3F // Unit-ish launch direction, viewpoint forward at release
	Power     float64     // Charge power at release, scales launch speed linearly
	Frame     int64       // Producing frame
}

// FocusSource identifies where a focus notification came from
type FocusSource uint8

const (
	FocusSourceNone   FocusSource = iota
	FocusSourceWindow             // Terminal focus-in/focus-out report
	FocusSourceToggle             // Capture toggle control release
)

// String returns the source name for logging
func (s FocusSource) String() string {
	switch s {
	case FocusSourceWindow:
		return "window"
	case FocusSourceToggle:
		return "toggle"
	default:
		return "none"
	}
}

// FocusNotification carries the "capture should become X" value
// Trigger: terminal focus events, FocusSystem toggle handling
// Consumer: FocusSystem apply step | Delivery: last-write-wins per frame
type FocusNotification struct {
	Focused bool
	Source  FocusSource
}
