package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lobber/status"
)

// FixedScheduler runs the fixed-step systems at a constant cadence decoupled from frame rate
// Frame time is accumulated; each whole tick interval runs one World.Step
// When more than maxSteps ticks are owed in one frame the remainder is dropped, so a stall never
// turns into a burst of catch-up work
type FixedScheduler struct {
	world   *World
	timeRes *TimeResource

	tickInterval time.Duration
	maxSteps     int
	accumulator  time.Duration

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewFixedScheduler creates a scheduler stepping at tickRate Hz, at most maxSteps per frame
func NewFixedScheduler(world *World, tickRate, maxSteps int, reg *status.Registry) *FixedScheduler {
	if tickRate <= 0 {
		tickRate = 1
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	interval := time.Second / time.Duration(tickRate)

	fs := &FixedScheduler{
		world:        world,
		timeRes:      world.Resources.Time,
		tickInterval: interval,
		maxSteps:     maxSteps,
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statDropped:  reg.Ints.Get(status.KeyDroppedTick),
	}
	fs.timeRes.FixedDelta = interval
	return fs
}

// Advance accumulates frameDelta and runs the owed fixed steps, returning how many ran
func (fs *FixedScheduler) Advance(frameDelta time.Duration) int {
	if frameDelta > 0 {
		fs.accumulator += frameDelta
	}

	steps := 0
	for fs.accumulator >= fs.tickInterval && steps < fs.maxSteps {
		fs.accumulator -= fs.tickInterval
		fs.timeRes.TickNumber++
		fs.world.Step()
		steps++
	}

	if fs.accumulator >= fs.tickInterval {
		dropped := int64(fs.accumulator / fs.tickInterval)
		fs.accumulator -= time.Duration(dropped) * fs.tickInterval
		fs.statDropped.Add(dropped)
	}

	fs.statTicks.Store(fs.timeRes.TickNumber)
	return steps
}

// Alpha returns the fraction of a tick left in the accumulator, for presentation interpolation
func (fs *FixedScheduler) Alpha() float64 {
	return float64(fs.accumulator) / float64(fs.tickInterval)
}
