package rx

import (
	"errors"
	"testing"
)

// recordingHandler collects the events it sees and optionally consumes or
// fails.
type recordingHandler struct {
	name    string
	consume bool
	err     error
	seen    []Event
	order   *[]string
}

func (h *recordingHandler) HandleEvent(event Event) (bool, error) {
	h.seen = append(h.seen, event)
	if h.order != nil {
		*h.order = append(*h.order, h.name)
	}
	if h.err != nil {
		return false, h.err
	}
	return h.consume, nil
}

func TestManagerDispatchOrder(t *testing.T) {
	var order []string
	m := NewEventManager()
	first := &recordingHandler{name: "first", order: &order}
	second := &recordingHandler{name: "second", order: &order}
	m.RegisterHandler(first)
	m.RegisterHandler(second)
	m.AddListener(func(Event) (bool, error) {
		order = append(order, "listener")
		return false, nil
	})

	if err := m.Dispatch(QuitEvent{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	want := []string{"listener", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestManagerConsumptionStops(t *testing.T) {
	m := NewEventManager()
	first := &recordingHandler{name: "first", consume: true}
	second := &recordingHandler{name: "second"}
	m.RegisterHandler(first)
	m.RegisterHandler(second)

	if err := m.Dispatch(QuitEvent{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(first.seen) != 1 {
		t.Errorf("first saw %d events, want 1", len(first.seen))
	}
	if len(second.seen) != 0 {
		t.Errorf("second saw %d events, want 0", len(second.seen))
	}
}

func TestManagerListenerConsumptionSkipsHandlers(t *testing.T) {
	m := NewEventManager()
	handler := &recordingHandler{name: "handler"}
	m.RegisterHandler(handler)
	m.AddListener(func(Event) (bool, error) { return true, nil })

	if err := m.Dispatch(QuitEvent{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(handler.seen) != 0 {
		t.Errorf("handler saw %d events behind a consuming listener, want 0", len(handler.seen))
	}
}

func TestManagerErrorAbortsDispatch(t *testing.T) {
	wantErr := errors.New("handler failure")
	m := NewEventManager()
	failing := &recordingHandler{name: "failing", err: wantErr}
	after := &recordingHandler{name: "after"}
	m.RegisterHandler(failing)
	m.RegisterHandler(after)

	if err := m.Dispatch(QuitEvent{}); !errors.Is(err, wantErr) {
		t.Fatalf("Dispatch error = %v, want %v", err, wantErr)
	}
	if len(after.seen) != 0 {
		t.Errorf("handler after the failure saw %d events, want 0", len(after.seen))
	}
}

func TestManagerUnregister(t *testing.T) {
	m := NewEventManager()
	h := &recordingHandler{name: "h"}
	id := m.RegisterHandler(h)

	if !m.UnregisterHandler(id) {
		t.Fatal("UnregisterHandler reported no handler")
	}
	if m.UnregisterHandler(id) {
		t.Error("second UnregisterHandler succeeded")
	}
	if m.HandlerCount() != 0 {
		t.Errorf("HandlerCount() = %d, want 0", m.HandlerCount())
	}

	if err := m.Dispatch(QuitEvent{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(h.seen) != 0 {
		t.Errorf("unregistered handler saw %d events", len(h.seen))
	}
}

func TestManagerClearKeepsIDsFresh(t *testing.T) {
	m := NewEventManager()
	firstID := m.RegisterHandler(&recordingHandler{name: "a"})
	m.Clear()
	if m.HandlerCount() != 0 {
		t.Fatalf("HandlerCount() = %d after Clear, want 0", m.HandlerCount())
	}

	secondID := m.RegisterHandler(&recordingHandler{name: "b"})
	if secondID == firstID {
		t.Errorf("handler id %d reused after Clear", firstID)
	}
}
