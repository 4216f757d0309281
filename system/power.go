package system

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/lobber/engine"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/vmath"
)

// Feedback is the presentation read of the charge state
type Feedback struct {
	Fraction float64        // Charge progress in [0, 1]
	Width    float64        // Bar fill in [floor, 1]
	Color    colorful.Color // Linear red to green ramp, neutral gray when idle
}

// PowerFeedback maps charge state to bar fill and color
// The bar never drops below 1/powerMax so an idle bar is still visible
func PowerFeedback(charge engine.ChargeResource, powerMin, powerMax float64) Feedback {
	floor := 0.0
	if powerMax > 0 {
		// Proportional to a 29.75/powerMax minimum fill on a 30-unit bar, about 0.8% wider
		floor = vmath.Clamp(1/powerMax, 0, 1)
	}

	if !charge.Charging || powerMax <= powerMin {
		n := parameter.PowerBarNeutral
		return Feedback{
			Width: floor,
			Color: colorful.LinearRgb(n, n, n),
		}
	}

	f := vmath.Clamp((charge.Power-powerMin)/(powerMax-powerMin), 0, 1)
	return Feedback{
		Fraction: f,
		Width:    vmath.Lerp(floor, 1, f),
		Color:    colorful.LinearRgb(1-f, f, 0),
	}
}
