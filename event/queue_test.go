package event

import (
	"testing"

	"github.com/lixenwraith/lobber/vmath"
)

// TestQueueBasic tests push and drain ordering
func TestQueueBasic(t *testing.T) {
	q := NewQueue[SpawnRequest](4)

	q.Push(SpawnRequest{Power: 1, Frame: 1})
	q.Push(SpawnRequest{Power: 2, Frame: 1})
	q.Push(SpawnRequest{Power: 3, Frame: 1})

	if q.Len() != 3 {
		t.Errorf("Expected 3 pending, got %d", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Power != float64(i+1) {
			t.Errorf("Event %d out of order: got power=%v", i, ev.Power)
		}
	}

	// Second drain in the same frame delivers nothing
	if again := q.Drain(); len(again) != 0 {
		t.Errorf("Expected 0 events on second drain, got %d", len(again))
	}
}

// TestQueueDrainOnce verifies each event is delivered exactly once across drains
func TestQueueDrainOnce(t *testing.T) {
	q := NewQueue[int](0)
	seen := make(map[int]int)

	next := 0
	for frame := 0; frame < 50; frame++ {
		for i := 0; i < frame%4; i++ {
			q.Push(next)
			next++
		}
		for _, v := range q.Drain() {
			seen[v]++
		}
	}

	if len(seen) != next {
		t.Errorf("Expected %d distinct events, got %d", next, len(seen))
	}
	for v, n := range seen {
		if n != 1 {
			t.Errorf("Event %d delivered %d times", v, n)
		}
	}
}

// TestQueueDrainedSliceSurvivesPush checks a drained batch is not clobbered by producers pushing afterwards
func TestQueueDrainedSliceSurvivesPush(t *testing.T) {
	q := NewQueue[SpawnRequest](2)
	q.Push(SpawnRequest{Direction: vmath.Vec3F{Z: -1}, Power: 4})

	batch := q.Drain()
	q.Push(SpawnRequest{Power: 9})

	if batch[0].Power != 4 {
		t.Errorf("Expected drained event power 4, got %v", batch[0].Power)
	}
	if q.Len() != 1 {
		t.Errorf("Expected new event pending, got %d", q.Len())
	}
}
