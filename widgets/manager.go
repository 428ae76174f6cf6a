package widgets

import (
	"time"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// Manager owns a flat collection of widgets and routes events through
// them. Later additions paint on top of earlier ones, so event routing
// walks the collection in reverse.
//
// Manager implements rx.WindowContent and is typically installed with
// Window.SetContent.
type Manager struct {
	widgets []Widget
	nextID  ID
	focused ID
	hovered ID
}

// NewManager creates an empty widget manager. Ids handed out by NextID
// start at 1; 0 never names a widget.
func NewManager() *Manager {
	return &Manager{nextID: 1}
}

// NextID returns a fresh widget id.
func (m *Manager) NextID() ID {
	id := m.nextID
	m.nextID++
	return id
}

// Add appends a widget on top of the existing ones.
func (m *Manager) Add(widget Widget) {
	m.widgets = append(m.widgets, widget)
}

// Remove takes the widget with the given id out of the manager and
// returns it. Focus and hover references to it are cleared.
func (m *Manager) Remove(id ID) Widget {
	for i, w := range m.widgets {
		if w.ID() == id {
			m.widgets = append(m.widgets[:i], m.widgets[i+1:]...)
			if m.focused == id {
				w.SetFocused(false)
				m.focused = 0
			}
			if m.hovered == id {
				m.hovered = 0
			}
			return w
		}
	}
	return nil
}

// Get returns the widget with the given id.
func (m *Manager) Get(id ID) (Widget, bool) {
	for _, w := range m.widgets {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

// Widgets returns the widgets in paint order, bottom first.
func (m *Manager) Widgets() []Widget {
	out := make([]Widget, len(m.widgets))
	copy(out, m.widgets)
	return out
}

// Count returns the number of managed widgets.
func (m *Manager) Count() int {
	return len(m.widgets)
}

// Clear removes every widget and drops focus and hover state.
func (m *Manager) Clear() {
	m.widgets = nil
	m.focused = 0
	m.hovered = 0
}

// Focused returns the id of the focused widget, if any.
func (m *Manager) Focused() (ID, bool) {
	return m.focused, m.focused != 0
}

// Hovered returns the id of the widget under the mouse, if any.
func (m *Manager) Hovered() (ID, bool) {
	return m.hovered, m.hovered != 0
}

// SetFocus moves keyboard focus to the widget with the given id. Zero
// clears focus. Old and new widgets are notified through SetFocused.
func (m *Manager) SetFocus(id ID) {
	if m.focused == id {
		return
	}
	if old, ok := m.Get(m.focused); ok {
		old.SetFocused(false)
	}
	m.focused = id
	if next, ok := m.Get(id); ok {
		next.SetFocused(true)
	}
}

// WidgetAt returns the id of the topmost visible widget whose bounds
// contain the point.
func (m *Manager) WidgetAt(point rx.Point) (ID, bool) {
	for i := len(m.widgets) - 1; i >= 0; i-- {
		w := m.widgets[i]
		if w.IsVisible() && w.Bounds().Contains(point) {
			return w.ID(), true
		}
	}
	return 0, false
}

// HandleEvent routes an event through the widgets and reports whether one
// of them consumed it.
//
// Mouse presses first move focus and hover to the widget under the
// cursor; mouse moves update hover only. The event is then offered to the
// focused widget, and if not consumed there, to the remaining widgets
// from topmost to bottom.
func (m *Manager) HandleEvent(event rx.Event) (bool, error) {
	switch ev := event.(type) {
	case rx.MousePressedEvent:
		point := rx.NewPoint(float32(ev.X), float32(ev.Y))
		id, _ := m.WidgetAt(point)
		m.SetFocus(id)
		m.hovered = id
	case rx.MouseMovedEvent:
		point := rx.NewPoint(float32(ev.X), float32(ev.Y))
		m.hovered, _ = m.WidgetAt(point)
	}

	if focused, ok := m.Get(m.focused); ok {
		consumed, err := focused.HandleEvent(event)
		if err != nil {
			return false, err
		}
		if consumed {
			return true, nil
		}
	}

	for i := len(m.widgets) - 1; i >= 0; i-- {
		w := m.widgets[i]
		if w.ID() == m.focused {
			continue
		}
		consumed, err := w.HandleEvent(event)
		if err != nil {
			return false, err
		}
		if consumed {
			return true, nil
		}
	}
	return false, nil
}

// Update advances every widget by delta.
func (m *Manager) Update(delta time.Duration) error {
	for _, w := range m.widgets {
		if err := w.Update(delta); err != nil {
			return err
		}
	}
	return nil
}

// Render draws every visible widget in paint order.
func (m *Manager) Render(ctx platform.DrawingContext) error {
	for _, w := range m.widgets {
		if w.IsVisible() {
			if err := w.Render(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
