package input

import (
	"fmt"
	"unicode/utf8"
)

// SpecialKey is a non-printable key the terminal layer can report
type SpecialKey uint8

const (
	KeyNone SpecialKey = iota
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyCtrlQ
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Control  Control
	Behavior Behavior
}

// KeyTable maps keys to controls
type KeyTable struct {
	// Special keys (Escape, Ctrl+*, arrows)
	SpecialKeys map[SpecialKey]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[SpecialKey]KeyEntry{
			KeyEscape: {ControlToggleCapture, BehaviorTap},
			KeyCtrlC:  {ControlQuit, BehaviorTap},
			KeyCtrlQ:  {ControlQuit, BehaviorTap},
			KeyUp:     {ControlForward, BehaviorHold},
			KeyDown:   {ControlBack, BehaviorHold},
			KeyLeft:   {ControlLeft, BehaviorHold},
			KeyRight:  {ControlRight, BehaviorHold},
		},
		Runes: map[rune]KeyEntry{
			'w': {ControlForward, BehaviorHold},
			's': {ControlBack, BehaviorHold},
			'a': {ControlLeft, BehaviorHold},
			'd': {ControlRight, BehaviorHold},
			' ': {ControlLaunch, BehaviorHold},
			'q': {ControlQuit, BehaviorTap},
		},
	}
}

// LookupRune returns the binding for a printable key
func (kt *KeyTable) LookupRune(r rune) (KeyEntry, bool) {
	e, ok := kt.Runes[r]
	return e, ok
}

// LookupSpecial returns the binding for a special key
func (kt *KeyTable) LookupSpecial(k SpecialKey) (KeyEntry, bool) {
	e, ok := kt.SpecialKeys[k]
	return e, ok
}

// Bind applies action→key overrides, e.g. {"launch": "f"}
// Existing rune bindings for the same control are removed; "none" unbinds the key
func (kt *KeyTable) Bind(overrides map[string]string) error {
	for action, key := range overrides {
		ctrl, ok := ControlByName(action)
		if !ok {
			return fmt.Errorf("unknown action %q", action)
		}
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("action %q: key %q must be a single character", action, key)
		}
		r, _ := utf8.DecodeRuneInString(key)

		if ctrl == ControlNone {
			delete(kt.Runes, r)
			continue
		}

		behavior := BehaviorHold
		for existing, entry := range kt.Runes {
			if entry.Control == ctrl {
				behavior = entry.Behavior
				delete(kt.Runes, existing)
			}
		}
		if ctrl == ControlQuit || ctrl == ControlToggleCapture {
			behavior = BehaviorTap
		}
		kt.Runes[r] = KeyEntry{Control: ctrl, Behavior: behavior}
	}
	return nil
}
