package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FixedTickRate is the physics cadence in steps per simulated second
	FixedTickRate = 60

	// MaxFixedStepsPerFrame caps catch-up after a stall; the remaining backlog is dropped
	MaxFixedStepsPerFrame = 8

	// MaxFrameDelta clamps a single frame's elapsed time (debugger pauses, suspended terminal)
	MaxFrameDelta = 250 * time.Millisecond
)

// Queue sizing
const (
	// SpawnQueueCapacity is the initial spawn request queue capacity
	SpawnQueueCapacity = 8

	// EventChannelSize buffers terminal events between the poller and the game loop
	EventChannelSize = 256
)
