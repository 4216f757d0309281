package parameter

// Viewpoint movement
const (
	// PlayerSpeed is planar movement speed (units/s)
	PlayerSpeed = 50.0

	// ViewpointHeight is the starting eye height
	ViewpointHeight = 0.0
)

// Key hold emulation
const (
	// HoldFrames is how many frames a key stays held after its last terminal report
	// Must bridge the initial key repeat delay (~250-500ms) to avoid a spurious release
	HoldFrames = 32
)
