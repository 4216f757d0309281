package component

import (
	"github.com/lixenwraith/lobber/vmath"
)

// ViewpointComponent marks the first-person camera entity (singleton)
// Orientation is stored as yaw/pitch and rebuilt every frame with zero roll
type ViewpointComponent struct {
	Position vmath.Vec3F
	Yaw      float64 // Radians about +Y
	Pitch    float64 // Radians, clamped to [-π/2, π/2]
}

// Forward returns the unit view direction
func (v ViewpointComponent) Forward() vmath.Vec3F {
	return vmath.ForwardFromYawPitch(v.Yaw, v.Pitch)
}

// Right returns the horizontal unit right vector
func (v ViewpointComponent) Right() vmath.Vec3F {
	return vmath.RightFromYaw(v.Yaw)
}

// Up returns the view-space up vector
func (v ViewpointComponent) Up() vmath.Vec3F {
	return vmath.UpFromYawPitch(v.Yaw, v.Pitch)
}
