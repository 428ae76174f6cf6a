package rx

// EventQueue is an ordered event buffer. A bounded queue evicts its oldest
// entries to admit new ones, so a stalled consumer sees the most recent
// events rather than the most stale.
//
// EventQueue is not safe for concurrent use; the event loop guards its own
// queue.
type EventQueue struct {
	events  []Event
	maxSize int
}

// NewEventQueue creates an unbounded queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// NewBoundedEventQueue creates a queue holding at most maxSize events.
// A maxSize of 0 or less means unbounded.
func NewBoundedEventQueue(maxSize int) *EventQueue {
	if maxSize < 0 {
		maxSize = 0
	}
	return &EventQueue{maxSize: maxSize}
}

// Push appends an event, evicting the oldest entries first if the queue is
// bounded and full.
func (q *EventQueue) Push(event Event) {
	if q.maxSize > 0 {
		for len(q.events) >= q.maxSize {
			q.events = q.events[1:]
		}
	}
	q.events = append(q.events, event)
}

// Pop removes and returns the oldest event. The second result is false
// when the queue is empty.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Empty reports whether the queue holds no events.
func (q *EventQueue) Empty() bool {
	return len(q.events) == 0
}

// Clear discards all buffered events.
func (q *EventQueue) Clear() {
	q.events = nil
}

// Drain removes and returns all buffered events in order.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
