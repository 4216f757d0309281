package component

import (
	"github.com/lixenwraith/lobber/vmath"
)

// BodyComponent is a dynamic rigid body driven by the fixed-tick physics systems
// Only GravitySystem, IntegrateSystem and BounceSystem write to it, in that order
type BodyComponent struct {
	Position vmath.Vec3F // World units, +Y up, ground plane at Y=0
	Velocity vmath.Vec3F // World units per second
}
