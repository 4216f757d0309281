package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/vmath"
)

func TestApplyLookClampsPitch(t *testing.T) {
	tests := []struct {
		name      string
		dy        float64
		wantPitch float64
	}{
		{"up past zenith", -1e6, vmath.HalfPi},
		{"down past nadir", 1e6, -vmath.HalfPi},
		{"small", 10, -0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pitch := ApplyLook(0, 0, 0, tt.dy, 0.01)
			if math.Abs(pitch-tt.wantPitch) > 1e-12 {
				t.Errorf("Expected pitch %v, got %v", tt.wantPitch, pitch)
			}
		})
	}
}

func TestApplyLookYawUnbounded(t *testing.T) {
	yaw, _ := ApplyLook(0, 0, -1000, 0, 0.01)
	if math.Abs(yaw-10) > 1e-9 {
		t.Errorf("Expected yaw 10, got %v", yaw)
	}
}

func TestLookSensitivityScalesWithViewport(t *testing.T) {
	if got := LookSensitivity(0.01, 100); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("Expected 0.01 at reference extent, got %v", got)
	}
	if got := LookSensitivity(0.01, 50); math.Abs(got-0.02) > 1e-15 {
		t.Errorf("Expected 0.02 at half extent, got %v", got)
	}
	if got := LookSensitivity(0.01, 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected degenerate extent treated as 1, got %v", got)
	}
}

func TestLookSystemGatedByFocus(t *testing.T) {
	f := newFixture(t, nil)
	g := f.game
	g.World.Resources.FocusSignal.Set(event.FocusNotification{Focused: false, Source: event.FocusSourceWindow})
	g.Frame(0)

	g.Input.AddPointerDelta(50, 50)
	g.Frame(0)
	vp, _ := g.World.Components.Viewpoint.Get(g.World.MustViewpoint())
	if vp.Yaw != 0 || vp.Pitch != 0 {
		t.Errorf("Expected no rotation while unfocused, got yaw=%v pitch=%v", vp.Yaw, vp.Pitch)
	}

	g.World.Resources.FocusSignal.Set(event.FocusNotification{Focused: true, Source: event.FocusSourceWindow})
	g.Frame(0)
	g.Resize(100, 100)
	g.Input.AddPointerDelta(0, -1e6)
	g.Frame(0)
	vp, _ = g.World.Components.Viewpoint.Get(g.World.MustViewpoint())
	if vp.Pitch != vmath.HalfPi {
		t.Errorf("Expected pitch clamped to π/2, got %v", vp.Pitch)
	}
}
