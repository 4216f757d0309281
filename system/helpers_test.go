package system

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/config"
	"github.com/lixenwraith/lobber/engine"
)

type captureCall struct {
	visible, locked bool
}

type recordingSink struct {
	calls []captureCall
}

func (r *recordingSink) SetCapture(visible, locked bool) {
	r.calls = append(r.calls, captureCall{visible, locked})
}

type recordingCues struct {
	powers []float64
}

func (r *recordingCues) PlayLaunch(power float64) {
	r.powers = append(r.powers, power)
}

type fixture struct {
	game *engine.Game
	sink *recordingSink
	cues *recordingCues
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	f := &fixture{sink: &recordingSink{}, cues: &recordingCues{}}
	g, err := engine.NewGame(cfg, zerolog.Nop(), f.sink, f.cues)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	RegisterSystems(g.World)
	f.game = g
	return f
}

// newFocusedFixture runs one empty frame so the startup focus notification applies
func newFocusedFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	f := newFixture(t, cfg)
	f.game.Frame(0)
	if !f.game.World.Resources.Focus.Focused {
		t.Fatal("Expected focus after first frame")
	}
	return f
}

func (f *fixture) frames(n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		f.game.Frame(dt)
	}
}
