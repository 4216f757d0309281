package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/core"
)

// Window owns the tcell screen and applies pointer capture to it
// A terminal has no real pointer lock: capture hides the text cursor and switches
// to all-motion mouse reporting, release shows the cursor and reports clicks only
type Window struct {
	screen tcell.Screen
	logger zerolog.Logger

	visible bool
	locked  bool
}

// NewWindow wraps screen; call Init before use
func NewWindow(screen tcell.Screen, logger zerolog.Logger) *Window {
	return &Window{
		screen:  screen,
		logger:  logger.With().Str("component", "window").Logger(),
		visible: true,
	}
}

// Init initializes the screen, enables focus reports and starts with the pointer free
func (w *Window) Init() error {
	if err := w.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	w.screen.SetStyle(tcell.StyleDefault)
	w.screen.EnableFocus()
	w.screen.Clear()
	w.apply()
	return nil
}

// Fini restores the terminal, safe to call from the crash hook
func (w *Window) Fini() {
	w.screen.DisableMouse()
	w.screen.DisableFocus()
	w.screen.Fini()
}

// Screen returns the underlying tcell screen
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// Size returns the screen size in cells
func (w *Window) Size() (int, int) {
	return w.screen.Size()
}

// SetCapture applies pointer visibility and lock
func (w *Window) SetCapture(visible, locked bool) {
	if w.visible == visible && w.locked == locked {
		return
	}
	w.visible, w.locked = visible, locked
	w.apply()
	w.logger.Debug().Bool("visible", visible).Bool("locked", locked).Msg("capture changed")
}

func (w *Window) apply() {
	if w.locked {
		w.screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		w.screen.EnableMouse(tcell.MouseButtonEvents)
	}
	if w.visible {
		width, height := w.screen.Size()
		w.screen.ShowCursor(width/2, height/2)
	} else {
		w.screen.HideCursor()
	}
}

// Pump forwards screen events to out until stop is closed or the screen is finalized
// Runs on its own goroutine; never touches simulation state
func (w *Window) Pump(out chan<- tcell.Event, stop <-chan struct{}) {
	core.Go(func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case out <- ev:
			case <-stop:
				return
			}
		}
	})
}
