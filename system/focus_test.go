package system

import (
	"testing"

	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/status"
)

func TestStartupFocusAppliesCapture(t *testing.T) {
	f := newFixture(t, nil)
	f.game.Frame(0)

	focus := f.game.World.Resources.Focus
	if !focus.Focused || focus.PointerVisible || !focus.PointerLocked {
		t.Errorf("Expected focused hidden locked, got %+v", *focus)
	}
	if len(f.sink.calls) != 1 || f.sink.calls[0] != (captureCall{visible: false, locked: true}) {
		t.Errorf("Expected one hide+lock call, got %+v", f.sink.calls)
	}
}

func TestFocusLastNotificationWins(t *testing.T) {
	f := newFocusedFixture(t, nil)
	g := f.game
	f.sink.calls = nil

	g.World.Resources.FocusSignal.Set(event.FocusNotification{Focused: false, Source: event.FocusSourceWindow})
	g.World.Resources.FocusSignal.Set(event.FocusNotification{Focused: true, Source: event.FocusSourceWindow})
	g.Frame(0)

	if !g.World.Resources.Focus.Focused {
		t.Error("Expected final state focused")
	}
	if len(f.sink.calls) != 1 {
		t.Fatalf("Expected a single capture application, got %d", len(f.sink.calls))
	}
	if f.sink.calls[0].visible || !f.sink.calls[0].locked {
		t.Errorf("Expected hidden+locked, got %+v", f.sink.calls[0])
	}
}

func TestToggleFlipsCapture(t *testing.T) {
	f := newFocusedFixture(t, nil)
	g := f.game
	f.sink.calls = nil

	g.Input.Tap(input.ControlToggleCapture)
	g.Frame(0)
	focus := g.World.Resources.Focus
	if focus.Focused || !focus.PointerVisible || focus.PointerLocked {
		t.Errorf("Expected released capture, got %+v", *focus)
	}

	g.Input.Tap(input.ControlToggleCapture)
	g.Frame(0)
	if !focus.Focused {
		t.Error("Expected second toggle to restore focus")
	}

	want := []captureCall{{visible: true, locked: false}, {visible: false, locked: true}}
	if len(f.sink.calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, f.sink.calls)
	}
	for i := range want {
		if f.sink.calls[i] != want[i] {
			t.Errorf("Call %d: expected %+v, got %+v", i, want[i], f.sink.calls[i])
		}
	}
	if src := g.Status.Labels.Get(status.KeyFocusSource).Load(); src != "toggle" {
		t.Errorf("Expected source toggle, got %q", src)
	}
}

func TestToggleFlipsPendingNotification(t *testing.T) {
	f := newFocusedFixture(t, nil)
	g := f.game

	// Window reports focus loss in the same frame the toggle is released
	g.World.Resources.FocusSignal.Set(event.FocusNotification{Focused: false, Source: event.FocusSourceWindow})
	g.Input.Tap(input.ControlToggleCapture)
	g.Frame(0)

	if !g.World.Resources.Focus.Focused {
		t.Error("Expected toggle to flip the pending unfocus back to focused")
	}
}

func TestNoNotificationNoSideEffect(t *testing.T) {
	f := newFocusedFixture(t, nil)
	f.sink.calls = nil
	f.frames(5, 0)
	if len(f.sink.calls) != 0 {
		t.Errorf("Expected no capture calls without notifications, got %d", len(f.sink.calls))
	}
}
