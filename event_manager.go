package rx

// ============================================================================
// Event Handlers and Listeners
// ============================================================================

// EventHandler is implemented by components that want to receive framework
// events. Returning true marks the event as consumed; a consumed event is
// not offered to any handler registered after this one.
type EventHandler interface {
	HandleEvent(event Event) (bool, error)
}

// EventListener is the function form of EventHandler. Listeners run before
// registered handlers and follow the same consumption contract.
type EventListener func(event Event) (bool, error)

// EventFilter inspects an event before it enters the loop's queue. The
// returned event replaces the original; returning nil drops it.
type EventFilter func(event Event) Event

// ============================================================================
// Event Manager
// ============================================================================

// EventManager routes events to listeners and handlers, stopping at the
// first one that consumes the event. Listeners always run before handlers;
// handlers run in registration order.
//
// The manager is not safe for concurrent use. The event loop that owns it
// serializes access.
type EventManager struct {
	handlers      map[uint64]EventHandler
	handlerOrder  []uint64
	listeners     []EventListener
	nextHandlerID uint64
}

// NewEventManager creates an empty event manager.
func NewEventManager() *EventManager {
	return &EventManager{
		handlers:      make(map[uint64]EventHandler),
		nextHandlerID: 1,
	}
}

// RegisterHandler adds an event handler and returns its id for later removal.
func (m *EventManager) RegisterHandler(handler EventHandler) uint64 {
	id := m.nextHandlerID
	m.nextHandlerID++
	m.handlers[id] = handler
	m.handlerOrder = append(m.handlerOrder, id)
	return id
}

// UnregisterHandler removes the handler with the given id. It reports
// whether a handler was registered under that id.
func (m *EventManager) UnregisterHandler(handlerID uint64) bool {
	if _, ok := m.handlers[handlerID]; !ok {
		return false
	}
	delete(m.handlers, handlerID)
	for i, id := range m.handlerOrder {
		if id == handlerID {
			m.handlerOrder = append(m.handlerOrder[:i], m.handlerOrder[i+1:]...)
			break
		}
	}
	return true
}

// AddListener adds a listener function. Listeners cannot be removed
// individually; use Clear to drop everything.
func (m *EventManager) AddListener(listener EventListener) {
	m.listeners = append(m.listeners, listener)
}

// HandlerCount returns the number of registered handlers.
func (m *EventManager) HandlerCount() int {
	return len(m.handlers)
}

// Dispatch offers the event to every listener, then every handler, until
// one consumes it. An error from a listener or handler aborts the dispatch
// and is returned as-is.
func (m *EventManager) Dispatch(event Event) error {
	for _, listener := range m.listeners {
		consumed, err := listener(event)
		if err != nil {
			return err
		}
		if consumed {
			return nil
		}
	}
	for _, id := range m.handlerOrder {
		consumed, err := m.handlers[id].HandleEvent(event)
		if err != nil {
			return err
		}
		if consumed {
			return nil
		}
	}
	return nil
}

// Clear removes all handlers and listeners. Handler ids are not reused.
func (m *EventManager) Clear() {
	m.handlers = make(map[uint64]EventHandler)
	m.handlerOrder = nil
	m.listeners = nil
}
