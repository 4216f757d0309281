package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/config"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
)

func TestNewGameDefaults(t *testing.T) {
	g, err := NewGame(nil, zerolog.Nop(), nil, nil)
	if err != nil {
		t.Fatalf("Expected game, got error %v", err)
	}

	res := g.World.Resources
	if res.Charge.Charging {
		t.Error("Expected idle charge at start")
	}
	if res.Charge.Power != parameter.PowerMin {
		t.Errorf("Expected power %v, got %v", parameter.PowerMin, res.Charge.Power)
	}
	if res.Focus.Focused || !res.Focus.PointerVisible || res.Focus.PointerLocked {
		t.Errorf("Expected unfocused visible pointer before first frame, got %+v", *res.Focus)
	}
	n, ok := res.FocusSignal.Peek()
	if !ok || !n.Focused {
		t.Errorf("Expected pending focus=true notification, got %+v ok=%v", n, ok)
	}
	if _, err := g.World.Viewpoint(); err != nil {
		t.Errorf("Expected one viewpoint, got %v", err)
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Launch.PowerMin = 7

	_, err := NewGame(cfg, zerolog.Nop(), nil, nil)
	if !errors.Is(err, config.ErrPowerRange) {
		t.Errorf("Expected ErrPowerRange, got %v", err)
	}
}

func TestResourceValidate(t *testing.T) {
	var r Resource
	if err := r.Validate(); !errors.Is(err, ErrMissingResource) {
		t.Errorf("Expected ErrMissingResource, got %v", err)
	}
}

func TestGameFrameAdvancesTime(t *testing.T) {
	g, err := NewGame(nil, zerolog.Nop(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	counter := &stepCounter{}
	g.World.AddFixedSystem(counter)

	// 60 Hz default, 50ms is three ticks
	g.Frame(50 * time.Millisecond)
	if counter.n != 3 {
		t.Errorf("Expected 3 fixed steps, got %d", counter.n)
	}

	g.Frame(time.Hour)
	if g.World.Resources.Time.FrameDelta != parameter.MaxFrameDelta {
		t.Errorf("Expected clamped frame delta, got %v", g.World.Resources.Time.FrameDelta)
	}
	if got := g.Status.Ints.Get(status.KeyFrames).Load(); got != 2 {
		t.Errorf("Expected 2 frames, got %d", got)
	}
}

func TestGameFrameClearsInputEdges(t *testing.T) {
	g, err := NewGame(nil, zerolog.Nop(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Input.Press(input.ControlLaunch)
	g.Frame(parameter.FrameUpdateInterval)

	if g.Input.JustPressed(input.ControlLaunch) {
		t.Error("Expected pressed edge cleared after frame")
	}
	if !g.Input.Pressed(input.ControlLaunch) {
		t.Error("Expected level to persist")
	}
}

func TestGameResize(t *testing.T) {
	g, err := NewGame(nil, zerolog.Nop(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Resize(120, 40)
	if g.World.Resources.Viewport.MinExtent() != 40 {
		t.Errorf("Expected min extent 40, got %d", g.World.Resources.Viewport.MinExtent())
	}
}

func TestGameFramePublishesAlpha(t *testing.T) {
	g, err := NewGame(nil, zerolog.Nop(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// 60 Hz: 25ms runs one tick and leaves half a tick owed
	g.Frame(25 * time.Millisecond)
	tr := g.World.Resources.Time
	if tr.TickNumber != 1 {
		t.Errorf("Expected 1 tick, got %d", tr.TickNumber)
	}
	if d := tr.Alpha - 0.5; d > 1e-6 || d < -1e-6 {
		t.Errorf("Expected alpha 0.5, got %v", tr.Alpha)
	}

	g.Frame(time.Second / 120)
	if tr.Alpha > 1e-6 {
		t.Errorf("Expected alpha reset after the owed tick ran, got %v", tr.Alpha)
	}
}
