package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func newSimWindow(t *testing.T) (*Window, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	w := NewWindow(sim, zerolog.Nop())
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(w.Fini)
	return w, sim
}

func TestWindowCapture(t *testing.T) {
	w, sim := newSimWindow(t)

	w.SetCapture(false, true)
	if _, _, vis := sim.GetCursor(); vis {
		t.Error("Expected cursor hidden while captured")
	}
	if !w.locked {
		t.Error("Expected captured")
	}

	w.SetCapture(true, false)
	x, y, vis := sim.GetCursor()
	if !vis {
		t.Error("Expected cursor visible after release")
	}
	if x != 40 || y != 12 {
		t.Errorf("Expected cursor centered at (40,12), got (%d,%d)", x, y)
	}
	if w.locked {
		t.Error("Expected not captured")
	}
}

func TestWindowPumpForwardsEvents(t *testing.T) {
	w, sim := newSimWindow(t)
	out := make(chan tcell.Event, 4)
	stop := make(chan struct{})
	defer close(stop)

	w.Pump(out, stop)
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-out:
			if key, ok := ev.(*tcell.EventKey); ok && key.Rune() == 'w' {
				return
			}
		case <-deadline:
			t.Fatal("Expected injected key to be forwarded")
		}
	}
}
