package physics

import (
	"github.com/lixenwraith/lobber/component"
)

// GroundY is the height of the bounce plane
const GroundY = 0.0

// BounceGround reflects vertical velocity when the body is below ground and still sinking
// Lossless, no friction. A body resting exactly on the plane is left alone
func BounceGround(b *component.BodyComponent) bool {
	if b.Position.Y < GroundY && b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y
		return true
	}
	return false
}
