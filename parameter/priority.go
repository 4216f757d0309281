package parameter

// System execution priorities, lower runs first
// Frame systems
const (
	PriorityLook   = 10
	PriorityMove   = 20
	PriorityCharge = 30 // Spawn request producer
	PriorityFocus  = 40 // After charge so a toggle never gates this frame's release
	PrioritySpawn  = 50 // Single consumer, after every producer
	PriorityCull   = 60
)

// Fixed-step systems
const (
	PriorityGravity   = 10
	PriorityIntegrate = 20
	PriorityBounce    = 30
)
