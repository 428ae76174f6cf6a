package rx

import "testing"

func TestEventQueueOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(MouseMovedEvent{Window: 1, X: 1})
	q.Push(MouseMovedEvent{Window: 1, X: 2})
	q.Push(MouseMovedEvent{Window: 1, X: 3})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	for want := 1.0; want <= 3; want++ {
		ev, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() empty at %v", want)
		}
		if got := ev.(MouseMovedEvent).X; got != want {
			t.Errorf("Pop() X = %v, want %v", got, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue reported an event")
	}
	if !q.Empty() {
		t.Error("Empty() = false after draining")
	}
}

func TestEventQueueBoundedEvictsOldest(t *testing.T) {
	q := NewBoundedEventQueue(2)
	q.Push(MouseMovedEvent{Window: 1, X: 1})
	q.Push(MouseMovedEvent{Window: 1, X: 2})
	q.Push(MouseMovedEvent{Window: 1, X: 3})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	events := q.Drain()
	if events[0].(MouseMovedEvent).X != 2 || events[1].(MouseMovedEvent).X != 3 {
		t.Errorf("Drain() = %v, want the two newest events", events)
	}
}

func TestEventQueueZeroCapacityUnbounded(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		q := NewBoundedEventQueue(capacity)
		for i := 0; i < 1000; i++ {
			q.Push(QuitEvent{})
		}
		if q.Len() != 1000 {
			t.Errorf("capacity %d: Len() = %d, want 1000", capacity, q.Len())
		}
	}
}

func TestEventQueueDrain(t *testing.T) {
	q := NewEventQueue()
	q.Push(QuitEvent{})
	q.Push(MouseEnteredEvent{Window: 2})

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("Drain() returned %d events, want 2", len(events))
	}
	if _, ok := events[0].(QuitEvent); !ok {
		t.Errorf("Drain()[0] = %T, want QuitEvent", events[0])
	}
	if !q.Empty() {
		t.Error("queue not empty after Drain")
	}
	if events := q.Drain(); len(events) != 0 {
		t.Errorf("second Drain() returned %d events, want 0", len(events))
	}
}

func TestEventQueueClear(t *testing.T) {
	q := NewBoundedEventQueue(10)
	q.Push(QuitEvent{})
	q.Clear()
	if !q.Empty() {
		t.Error("queue not empty after Clear")
	}
}
