package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/vmath"
)

func TestMoveDeltaIsPlanarAndNormalized(t *testing.T) {
	forward := vmath.ForwardFromYawPitch(0.3, 1.2)
	right := vmath.RightFromYaw(0.3)

	d := MoveDelta(forward, right, 1, 1, 5)
	if d.Y != 0 {
		t.Errorf("Expected planar motion, got Y=%v", d.Y)
	}
	if math.Abs(vmath.V3FMag(d)-5) > 1e-9 {
		t.Errorf("Expected length 5, got %v", vmath.V3FMag(d))
	}

	if z := MoveDelta(forward, right, 0, 0, 5); z != vmath.Zero3F {
		t.Errorf("Expected zero for no intent, got %+v", z)
	}
}

func TestMoveSystemWalksForward(t *testing.T) {
	f := newFocusedFixture(t, nil)
	g := f.game

	g.Input.Press(input.ControlForward)
	g.Frame(100 * time.Millisecond)

	vp, _ := g.World.Components.Viewpoint.Get(g.World.MustViewpoint())
	want := -g.World.Resources.Config.Player.Speed * 0.1
	if math.Abs(vp.Position.Z-want) > 1e-9 || math.Abs(vp.Position.X) > 1e-9 {
		t.Errorf("Expected position (0,0,%v), got %+v", want, vp.Position)
	}
}
