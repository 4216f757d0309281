package vmath

import "math"

// HalfPi bounds pitch so the view never flips past straight up or down
const HalfPi = math.Pi / 2

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ForwardFromYawPitch returns the view direction for yaw-then-pitch rotation with zero roll
// Yaw rotates about +Y, pitch about local +X; identity looks down -Z
func ForwardFromYawPitch(yaw, pitch float64) Vec3F {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return Vec3F{
		X: -sy * cp,
		Y: sp,
		Z: -cy * cp,
	}
}

// RightFromYaw returns the horizontal right vector for a given yaw
func RightFromYaw(yaw float64) Vec3F {
	sy, cy := math.Sincos(yaw)
	return Vec3F{X: cy, Y: 0, Z: -sy}
}

// UpFromYawPitch returns the view-space up vector, completing the camera basis
func UpFromYawPitch(yaw, pitch float64) Vec3F {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return Vec3F{
		X: sy * sp,
		Y: cp,
		Z: cy * sp,
	}
}
