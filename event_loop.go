package rx

import (
	"sync"
	"time"

	"github.com/emiliancristea/RX-Framework/platform"
)

// backendGuard serializes access to the platform backend shared by the
// application, its event loop, and every window handle. Once closed, every
// call through the guard fails cleanly instead of reaching platform state
// that has been torn down.
type backendGuard struct {
	mu      sync.Mutex
	backend platform.Backend
	closed  bool
}

func newBackendGuard(backend platform.Backend) *backendGuard {
	return &backendGuard{backend: backend}
}

// with runs fn with exclusive access to the backend.
func (g *backendGuard) with(fn func(platform.Backend) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return platform.FrameworkError("platform backend has been shut down")
	}
	return fn(g.backend)
}

// shutdown runs fn with the backend and marks the guard closed. Only the
// first call reaches the backend; later calls return nil.
func (g *backendGuard) shutdown(fn func(platform.Backend) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	return fn(g.backend)
}

// EventLoop turns raw platform events into framework events.
//
// Each call to Poll, Wait, or WaitTimeout fetches a batch from the backend,
// runs it through the input tracker (which synthesizes MouseEntered and
// MouseLeft and computes the key repeat flag), applies any registered
// filters, and returns the whole queue as one ordered batch. User events
// posted between calls surface at the front of the next batch.
//
// Poll, Wait, and WaitTimeout are meant to be driven from a single
// goroutine. PostUserEvent may be called from any goroutine.
type EventLoop struct {
	guard *backendGuard

	mu      sync.Mutex
	queue   *EventQueue
	tracker *InputTracker
	manager *EventManager
	filters []EventFilter
}

// NewEventLoop creates an event loop reading from the given backend. The
// backend must already be initialized.
func NewEventLoop(backend platform.Backend) *EventLoop {
	return newEventLoop(newBackendGuard(backend), 0)
}

func newEventLoop(guard *backendGuard, queueCapacity int) *EventLoop {
	return &EventLoop{
		guard:   guard,
		queue:   NewBoundedEventQueue(queueCapacity),
		tracker: NewInputTracker(),
		manager: NewEventManager(),
	}
}

// Manager returns the loop's event manager. Dispatching through the manager
// is left to the caller; the loop itself only produces events.
func (l *EventLoop) Manager() *EventManager {
	return l.manager
}

// AddFilter registers a filter applied to every event before it is queued,
// including posted user events. Filters run in registration order.
func (l *EventLoop) AddFilter(filter EventFilter) {
	l.mu.Lock()
	l.filters = append(l.filters, filter)
	l.mu.Unlock()
}

// SetQueueCapacity bounds the internal queue to capacity events, dropping
// the oldest first once full. Zero or negative removes the bound. Events
// already queued are carried over, oldest first to go if they overflow the
// new bound.
func (l *EventLoop) SetQueueCapacity(capacity int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	queue := NewBoundedEventQueue(capacity)
	for _, ev := range l.queue.Drain() {
		queue.Push(ev)
	}
	l.queue = queue
}

// Poll fetches pending events without blocking. An empty batch means no
// events were available.
func (l *EventLoop) Poll() ([]Event, error) {
	return l.collect(func(b platform.Backend) ([]platform.Event, error) {
		return b.PollEvents()
	})
}

// Wait blocks until at least one event is available, then returns all
// events that arrived.
func (l *EventLoop) Wait() ([]Event, error) {
	return l.collect(func(b platform.Backend) ([]platform.Event, error) {
		return b.WaitEvents()
	})
}

// WaitTimeout behaves like Wait but gives up after d, returning an empty
// batch. A non-positive d blocks indefinitely.
func (l *EventLoop) WaitTimeout(d time.Duration) ([]Event, error) {
	return l.collect(func(b platform.Backend) ([]platform.Event, error) {
		return b.WaitEventsTimeout(d)
	})
}

// collect is the shared fetch-normalize-drain path behind Poll and Wait.
// A backend error propagates as-is and leaves the queue untouched, so
// already queued events survive for the next call.
func (l *EventLoop) collect(fetch func(platform.Backend) ([]platform.Event, error)) ([]Event, error) {
	var raw []platform.Event
	err := l.guard.with(func(b platform.Backend) error {
		events, err := fetch(b)
		if err != nil {
			return err
		}
		raw = events
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ev := range raw {
		for _, out := range l.tracker.Apply(ev) {
			l.enqueueLocked(out)
		}
	}
	return l.queue.Drain(), nil
}

// enqueueLocked runs the event through the filter chain and queues it.
// Callers hold l.mu.
func (l *EventLoop) enqueueLocked(event Event) {
	for _, filter := range l.filters {
		event = filter(event)
		if event == nil {
			return
		}
	}
	l.queue.Push(event)
}

// PostUserEvent queues a custom event carrying an application-defined type
// tag and payload. The event comes back from the next Poll or Wait call in
// order with everything else. A nil data is normalized to UserNone. Safe to
// call from any goroutine.
func (l *EventLoop) PostUserEvent(eventType string, data UserData) {
	if data == nil {
		data = UserNone{}
	}
	l.mu.Lock()
	l.enqueueLocked(UserEvent{Type: eventType, Data: data})
	l.mu.Unlock()
}

// MousePosition returns the last mouse position seen by the loop.
func (l *EventLoop) MousePosition() (x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracker.MousePosition()
}

// MouseWindow returns the window currently under the mouse, if any.
func (l *EventLoop) MouseWindow() (WindowID, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracker.MouseWindow()
}

// IsMouseButtonPressed reports whether the given button is held down.
func (l *EventLoop) IsMouseButtonPressed(button MouseButton) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracker.IsMouseButtonPressed(button)
}

// IsKeyPressed reports whether the given key is held down.
func (l *EventLoop) IsKeyPressed(key Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracker.IsKeyPressed(key)
}

// Modifiers returns the modifier set from the most recent key event.
func (l *EventLoop) Modifiers() Modifiers {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracker.Modifiers()
}
