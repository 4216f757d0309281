package engine

import "time"

// Clock is the time source driving frame deltas
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer turns clock readings into clamped frame deltas
type FrameTimer struct {
	clock    Clock
	last     time.Time
	maxDelta time.Duration
	started  bool
}

// NewFrameTimer creates a timer; deltas above maxDelta are clamped (0 disables clamping)
func NewFrameTimer(clock Clock, maxDelta time.Duration) *FrameTimer {
	return &FrameTimer{clock: clock, maxDelta: maxDelta}
}

// Tick returns the time since the previous Tick, zero on the first call
func (ft *FrameTimer) Tick() time.Duration {
	now := ft.clock.Now()
	if !ft.started {
		ft.started = true
		ft.last = now
		return 0
	}
	dt := now.Sub(ft.last)
	ft.last = now
	if dt < 0 {
		return 0
	}
	if ft.maxDelta > 0 && dt > ft.maxDelta {
		return ft.maxDelta
	}
	return dt
}
