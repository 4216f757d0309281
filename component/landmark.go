package component

import (
	"github.com/lixenwraith/lobber/vmath"
)

// LandmarkComponent is a static scene marker, drawn but never simulated
type LandmarkComponent struct {
	Position vmath.Vec3F
	Hue      float64 // Degrees [0, 360)
}
