package input

// Source is the per-frame view of input consumed by game systems
type Source interface {
	Pressed(c Control) bool
	JustPressed(c Control) bool
	JustReleased(c Control) bool
	PointerDelta() (dx, dy float64)
}

// State tracks control levels and edges for the current frame plus accumulated pointer motion
// Written by the terminal translator before the frame pipeline runs, edges cleared by EndFrame
type State struct {
	down         [controlCount]bool
	justPressed  [controlCount]bool
	justReleased [controlCount]bool

	// Frames left before an emulated hold auto-releases, 0 = real hold or not held
	holdFrames [controlCount]int

	pointerDX, pointerDY float64
}

// NewState creates an idle input state
func NewState() *State {
	return &State{}
}

func valid(c Control) bool {
	return c > ControlNone && c < controlCount
}

// Press marks c held, raising the pressed edge on transition
func (s *State) Press(c Control) {
	if !valid(c) {
		return
	}
	if !s.down[c] {
		s.justPressed[c] = true
		s.down[c] = true
	}
	s.holdFrames[c] = 0
}

// Release marks c up, raising the released edge on transition
func (s *State) Release(c Control) {
	if !valid(c) {
		return
	}
	if s.down[c] {
		s.justReleased[c] = true
		s.down[c] = false
	}
	s.holdFrames[c] = 0
}

// Hold presses c and keeps it held for frames more frames unless refreshed
// Emulates key-up for devices that only report key-down with auto-repeat
func (s *State) Hold(c Control, frames int) {
	if !valid(c) {
		return
	}
	if frames < 1 {
		frames = 1
	}
	if !s.down[c] {
		s.justPressed[c] = true
		s.down[c] = true
	} else if s.holdFrames[c] == 0 {
		// Already held by a real press, leave it to the real release
		return
	}
	s.holdFrames[c] = frames
}

// Tap presses and releases c within the current frame
func (s *State) Tap(c Control) {
	s.Press(c)
	s.Release(c)
}

// AddPointerDelta accumulates pointer motion for the current frame
func (s *State) AddPointerDelta(dx, dy float64) {
	s.pointerDX += dx
	s.pointerDY += dy
}

// ReleaseAll releases every held control, raising released edges
func (s *State) ReleaseAll() {
	for c := ControlNone + 1; c < controlCount; c++ {
		s.Release(c)
	}
}

// EndFrame clears edges and pointer motion, then ages emulated holds
// A hold that expires raises its released edge for the next frame
func (s *State) EndFrame() {
	s.justPressed = [controlCount]bool{}
	s.justReleased = [controlCount]bool{}
	s.pointerDX, s.pointerDY = 0, 0

	for c := range s.holdFrames {
		if s.holdFrames[c] == 0 {
			continue
		}
		s.holdFrames[c]--
		if s.holdFrames[c] == 0 && s.down[c] {
			s.down[c] = false
			s.justReleased[c] = true
		}
	}
}

func (s *State) Pressed(c Control) bool {
	return valid(c) && s.down[c]
}

func (s *State) JustPressed(c Control) bool {
	return valid(c) && s.justPressed[c]
}

func (s *State) JustReleased(c Control) bool {
	return valid(c) && s.justReleased[c]
}

func (s *State) PointerDelta() (dx, dy float64) {
	return s.pointerDX, s.pointerDY
}
