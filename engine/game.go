package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/config"
	"github.com/lixenwraith/lobber/event"
	"github.com/lixenwraith/lobber/input"
	"github.com/lixenwraith/lobber/parameter"
	"github.com/lixenwraith/lobber/status"
)

// Game owns the simulation: world, resources, input state and the fixed scheduler
// All methods must be called from the game goroutine
type Game struct {
	World     *World
	Input     *input.State
	Scheduler *FixedScheduler
	Status    *status.Registry

	logger zerolog.Logger

	statFrames *atomic.Int64
	statBodies *atomic.Int64
}

// NewGame builds the world, wires resources and spawns the scene
// sink and cues may be nil for headless runs
// Fails if the scene does not contain exactly one viewpoint
func NewGame(cfg *config.Config, logger zerolog.Logger, sink CaptureSink, cues CuePlayer) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if sink == nil {
		sink = nopCapture{}
	}
	if cues == nil {
		cues = nopCues{}
	}

	reg := status.NewRegistry()
	in := input.NewState()
	w := NewWorld(logger)

	focusSignal := &event.Latest[event.FocusNotification]{}
	// A freshly started window has focus; capture is applied on the first frame
	focusSignal.Set(event.FocusNotification{Focused: true, Source: event.FocusSourceWindow})

	focus := &FocusResource{}
	focus.Set(false)

	w.Resources = Resource{
		Time:        &TimeResource{},
		Config:      &ConfigResource{Config: cfg},
		Charge:      &ChargeResource{Power: cfg.Launch.PowerMin},
		Focus:       focus,
		Viewport:    &ViewportResource{Width: 80, Height: 24},
		Spawns:      event.NewQueue[event.SpawnRequest](parameter.SpawnQueueCapacity),
		FocusSignal: focusSignal,
		Input:       in,
		Capture:     sink,
		Cues:        cues,
		Status:      reg,
	}
	if err := w.Resources.Validate(); err != nil {
		return nil, err
	}

	SpawnScene(w)
	if _, err := w.Viewpoint(); err != nil {
		return nil, fmt.Errorf("scene setup: %w", err)
	}

	g := &Game{
		World:      w,
		Input:      in,
		Scheduler:  NewFixedScheduler(w, cfg.Physics.TickRate, cfg.Physics.MaxSteps, reg),
		Status:     reg,
		logger:     logger.With().Str("component", "game").Logger(),
		statFrames: reg.Ints.Get(status.KeyFrames),
		statBodies: reg.Ints.Get(status.KeyBodies),
	}

	g.logger.Info().
		Int("tick_rate", cfg.Physics.TickRate).
		Float64("power_min", cfg.Launch.PowerMin).
		Float64("power_max", cfg.Launch.PowerMax).
		Int("landmarks", w.Components.Landmark.Len()).
		Int("metrics", reg.TotalCount()).
		Msg("game initialized")

	return g, nil
}

// Resize updates the viewport used by look sensitivity and projection
func (g *Game) Resize(width, height int) {
	g.World.Resources.Viewport.Width = width
	g.World.Resources.Viewport.Height = height
}

// Frame advances the simulation by one presentation frame
// Frame systems run once in priority order, then the fixed systems run for every owed tick,
// then input edges are cleared
func (g *Game) Frame(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	tr := g.World.Resources.Time
	tr.FrameDelta = dt
	tr.FrameNumber++

	g.World.Update()
	g.Scheduler.Advance(dt)
	tr.Alpha = g.Scheduler.Alpha()
	g.Input.EndFrame()

	g.statFrames.Store(tr.FrameNumber)
	g.statBodies.Store(int64(g.World.Components.Body.Len()))
}
