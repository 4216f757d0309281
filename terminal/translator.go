package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/input"
)

// Outcome reports what a translated event means for the game loop
type Outcome struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Translator turns tcell events into input state and focus notifications
// Must run on the game goroutine, before the frame pipeline
type Translator struct {
	keys       *input.KeyTable
	state      *input.State
	focus      *event.Latest[event.FocusNotification]
	holdFrames int

	// Last pointer cell, deltas are taken between consecutive reports
	lastX, lastY int
	havePointer  bool
	buttonDown   bool
}

// NewTranslator creates a translator writing to state and focus
func NewTranslator(keys *input.KeyTable, state *input.State, focus *event.Latest[event.FocusNotification], holdFrames int) *Translator {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Translator{
		keys:       keys,
		state:      state,
		focus:      focus,
		holdFrames: holdFrames,
	}
}

// Apply translates a single event
func (t *Translator) Apply(ev tcell.Event) Outcome {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.applyKey(ev)
	case *tcell.EventMouse:
		t.applyMouse(ev)
	case *tcell.EventFocus:
		t.focus.Set(event.FocusNotification{Focused: ev.Focused, Source: event.FocusSourceWindow})
		if !ev.Focused {
			// Key-up is never reported, drop held controls with the focus
			t.state.ReleaseAll()
			t.buttonDown = false
		}
		t.havePointer = false
	case *tcell.EventResize:
		w, h := ev.Size()
		t.havePointer = false
		return Outcome{Resized: true, Width: w, Height: h}
	}
	return Outcome{}
}

func (t *Translator) applyKey(ev *tcell.EventKey) Outcome {
	var (
		entry input.KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = t.keys.LookupRune(unicode.ToLower(ev.Rune()))
	} else {
		entry, ok = t.keys.LookupSpecial(specialKey(ev.Key()))
	}
	if !ok || entry.Control == input.ControlNone {
		return Outcome{}
	}

	switch entry.Behavior {
	case input.BehaviorHold:
		t.state.Hold(entry.Control, t.holdFrames)
	default:
		t.state.Tap(entry.Control)
	}
	return Outcome{Quit: entry.Control == input.ControlQuit}
}

func (t *Translator) applyMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if t.havePointer {
		t.state.AddPointerDelta(float64(x-t.lastX), float64(y-t.lastY))
	}
	t.lastX, t.lastY = x, y
	t.havePointer = true

	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !t.buttonDown:
		t.state.Press(input.ControlLaunch)
	case !down && t.buttonDown:
		t.state.Release(input.ControlLaunch)
	}
	t.buttonDown = down
}

func specialKey(k tcell.Key) input.SpecialKey {
	switch k {
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyCtrlC:
		return input.KeyCtrlC
	case tcell.KeyCtrlQ:
		return input.KeyCtrlQ
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	default:
		return input.KeyNone
	}
}
