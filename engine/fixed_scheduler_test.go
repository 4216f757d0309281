package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/status"
)

type stepCounter struct{ n int }

func (c *stepCounter) Init()         {}
func (c *stepCounter) Name() string  { return "counter" }
func (c *stepCounter) Priority() int { return 0 }
func (c *stepCounter) Update()       { c.n++ }

func newSchedulerWorld(tickRate, maxSteps int) (*FixedScheduler, *stepCounter, *status.Registry) {
	w := NewWorld(zerolog.Nop())
	w.Resources.Time = &TimeResource{}
	reg := status.NewRegistry()
	counter := &stepCounter{}
	w.AddFixedSystem(counter)
	return NewFixedScheduler(w, tickRate, maxSteps, reg), counter, reg
}

func TestFixedSchedulerAccumulates(t *testing.T) {
	fs, counter, _ := newSchedulerWorld(100, 8) // 10ms ticks

	if n := fs.Advance(4 * time.Millisecond); n != 0 {
		t.Errorf("Expected 0 steps, got %d", n)
	}
	if n := fs.Advance(7 * time.Millisecond); n != 1 {
		t.Errorf("Expected 1 step after 11ms, got %d", n)
	}
	if n := fs.Advance(29 * time.Millisecond); n != 3 {
		t.Errorf("Expected 3 steps after 40ms total, got %d", n)
	}
	if counter.n != 4 {
		t.Errorf("Expected 4 system updates, got %d", counter.n)
	}
	if fs.timeRes.TickNumber != 4 {
		t.Errorf("Expected tick number 4, got %d", fs.timeRes.TickNumber)
	}
	if fs.timeRes.FixedDelta != 10*time.Millisecond {
		t.Errorf("Expected fixed delta 10ms, got %v", fs.timeRes.FixedDelta)
	}
}

func TestFixedSchedulerCapsAndDropsBacklog(t *testing.T) {
	fs, counter, reg := newSchedulerWorld(100, 3)

	if n := fs.Advance(105 * time.Millisecond); n != 3 {
		t.Errorf("Expected capped 3 steps, got %d", n)
	}
	if dropped := reg.Ints.Get(status.KeyDroppedTick).Load(); dropped != 7 {
		t.Errorf("Expected 7 dropped ticks, got %d", dropped)
	}
	// 5ms remainder survives, next 5ms completes a tick
	if n := fs.Advance(5 * time.Millisecond); n != 1 {
		t.Errorf("Expected 1 step from remainder, got %d", n)
	}
	if counter.n != 4 {
		t.Errorf("Expected 4 updates, got %d", counter.n)
	}
}

func TestFixedSchedulerZeroFrame(t *testing.T) {
	fs, counter, _ := newSchedulerWorld(60, 8)
	for i := 0; i < 10; i++ {
		fs.Advance(0)
	}
	if counter.n != 0 {
		t.Errorf("Expected no steps for zero deltas, got %d", counter.n)
	}
	if fs.Alpha() != 0 {
		t.Errorf("Expected alpha 0, got %v", fs.Alpha())
	}
}
