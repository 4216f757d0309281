package parameter

// Projectile physics
const (
	// GravityY is the constant vertical acceleration applied to every dynamic body (units/s²)
	GravityY = -9.8

	// LaunchSpeed converts charge power into launch speed: |v| = power * LaunchSpeed
	LaunchSpeed = 10.0
)

// Launch charge
const (
	// PowerMin is the charge floor and the reset value after a launch
	PowerMin = 1.0

	// PowerMax is the charge ceiling
	PowerMax = 6.0
)
