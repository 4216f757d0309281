package render

import (
	"math"

	"github.com/lixenwraith/lobber/component"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/vmath"
)

// nearPlane discards points closer than this along the view axis
const nearPlane = 0.1

// Projection maps world points onto a width x height cell grid for one viewpoint
type Projection struct {
	eye                vmath.Vec3F
	forward, right, up vmath.Vec3F
	cx, cy             float64
	focalX, focalY     float64
}

// NewProjection builds a pinhole projection with vertical field of view FieldOfView
// Horizontal focal length is stretched by CellAspect since cells are taller than wide
func NewProjection(view component.ViewpointComponent, width, height int) Projection {
	focal := float64(height) / 2 / math.Tan(parameter.FieldOfView/2)
	return Projection{
		eye:     view.Position,
		forward: view.Forward(),
		right:   view.Right(),
		up:      view.Up(),
		cx:      float64(width) / 2,
		cy:      float64(height) / 2,
		focalX:  focal * parameter.CellAspect,
		focalY:  focal,
	}
}

// Project returns the cell for p and its depth along the view axis
// ok is false for points behind the near plane
func (pr Projection) Project(p vmath.Vec3F) (x, y int, depth float64, ok bool) {
	d := vmath.V3FSub(p, pr.eye)
	depth = vmath.V3FDot(d, pr.forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	vx := vmath.V3FDot(d, pr.right)
	vy := vmath.V3FDot(d, pr.up)

	x = int(math.Floor(pr.cx + vx/depth*pr.focalX))
	y = int(math.Floor(pr.cy - vy/depth*pr.focalY))
	return x, y, depth, true
}

// HorizonRow returns the screen row of eye level far ahead, ok false when it is off the view
func (pr Projection) HorizonRow() (int, bool) {
	ahead := vmath.V3FNormalize(vmath.V3FFlatten(pr.forward))
	if ahead == vmath.Zero3F {
		return 0, false
	}
	_, y, _, ok := pr.Project(vmath.V3FAddScaled(pr.eye, ahead, 1e4))
	return y, ok
}
