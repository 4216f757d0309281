package input

import "strings"

// controlRegistry maps canonical action names to controls
// Used by the config loader to resolve key binding overrides
var controlRegistry = map[string]Control{
	"none":           ControlNone,
	"launch":         ControlLaunch,
	"toggle_capture": ControlToggleCapture,
	"forward":        ControlForward,
	"back":           ControlBack,
	"left":           ControlLeft,
	"right":          ControlRight,
	"quit":           ControlQuit,
}

// ControlByName resolves an action name, case-insensitive
func ControlByName(name string) (Control, bool) {
	c, ok := controlRegistry[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the canonical action name
func (c Control) String() string {
	for name, ctrl := range controlRegistry {
		if ctrl == c && name != "none" {
			return name
		}
	}
	return "none"
}
