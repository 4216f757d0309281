package engine

import (
	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/core"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/vmath"
)

// SpawnScene places the viewpoint at the origin and a row of static landmarks in front of it
// Landmark i sits at X=(LandmarkOffset+i)*LandmarkSpacing with hue i*360/LandmarkCount
func SpawnScene(w *World) core.Entity {
	viewpoint := w.CreateEntity()
	w.Components.Viewpoint.Set(viewpoint, component.ViewpointComponent{
		Position: vmath.Vec3F{Y: parameter.ViewpointHeight},
	})

	for i := 0; i < parameter.LandmarkCount; i++ {
		e := w.CreateEntity()
		w.Components.Landmark.Set(e, component.LandmarkComponent{
			Position: vmath.Vec3F{
				X: (parameter.LandmarkOffset + float64(i)) * parameter.LandmarkSpacing,
				Z: parameter.LandmarkDistance,
			},
			Hue: float64(i) * 360 / parameter.LandmarkCount,
		})
	}

	return viewpoint
}
