package event

// Queue is a per-frame FIFO carrying events from producer systems to a single consumer
// Thread-Safety: none, owned by the game goroutine; pipeline order places producers before the consumer
//
// Drain hands out everything pending in insertion order and empties the queue;
// events pushed after a drain wait for the next drain
type Queue[T any] struct {
	pending []T
	spare   []T
}

// NewQueue creates an empty queue with the given initial capacity
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{
		pending: make([]T, 0, capacity),
		spare:   make([]T, 0, capacity),
	}
}

// Push appends an event. O(1) amortized
func (q *Queue[T]) Push(ev T) {
	q.pending = append(q.pending, ev)
}

// Drain returns all pending events in FIFO order and clears the queue
// The returned slice is valid until the next Drain call
func (q *Queue[T]) Drain() []T {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending, q.spare = q.spare[:0], out
	return out
}

// Len returns the pending event count
func (q *Queue[T]) Len() int {
	return len(q.pending)
}
