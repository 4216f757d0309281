package input

// Control identifies a discrete game control independent of the physical key or button
type Control uint8

const (
	ControlNone Control = iota

	// Primary action: hold to charge, release to launch
	ControlLaunch

	// Capture toggle: release flips pointer capture (Escape)
	ControlToggleCapture

	// Planar movement
	ControlForward
	ControlBack
	ControlLeft
	ControlRight

	// Session
	ControlQuit

	controlCount
)

// Behavior classifies how a key press drives a control
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	BehaviorHold          // Press and keep held while key repeat refreshes it
	BehaviorTap           // Press and release within the same frame
)
