package physics

import (
	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/vmath"
)

// ApplyGravity performs the velocity half of integration: v = v + g*dt
func ApplyGravity(b *component.BodyComponent, g vmath.Vec3F, dt float64) {
	b.Velocity = vmath.V3FAddScaled(b.Velocity, g, dt)
}

// Integrate performs the position half of integration: p = p + v*dt
func Integrate(b *component.BodyComponent, dt float64) {
	b.Position = vmath.V3FAddScaled(b.Position, b.Velocity, dt)
}
