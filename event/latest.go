package event

// Latest is a single-slot notification with last-write-wins semantics
// Multiple Set calls within a frame collapse into the final value; Take consumes it
type Latest[T any] struct {
	value   T
	pending bool
	writes  int
}

// Set stores v, replacing any value not yet taken
func (l *Latest[T]) Set(v T) {
	l.value = v
	l.pending = true
	l.writes++
}

// Peek returns the pending value without consuming it
func (l *Latest[T]) Peek() (T, bool) {
	return l.value, l.pending
}

// Take returns the pending value and clears the slot
// writes reports how many Set calls were folded into this value
func (l *Latest[T]) Take() (v T, ok bool, writes int) {
	if !l.pending {
		var zero T
		return zero, false, 0
	}
	v, writes = l.value, l.writes
	var zero T
	l.value = zero
	l.pending = false
	l.writes = 0
	return v, true, writes
}
