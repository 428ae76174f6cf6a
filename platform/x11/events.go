package x11

import (
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/emiliancristea/RX-Framework/platform"
)

// pump moves protocol events from the connection onto the events channel.
// WaitForEvent returns (nil, nil) once the connection is closed; protocol
// errors for checked requests surface through their cookies instead, so
// unsolicited errors are dropped here.
func pump(conn *xgb.Conn, events chan<- xgb.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			continue
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// PollEvents implements platform.Backend.
func (b *Backend) PollEvents() ([]platform.Event, error) {
	b.mu.Lock()
	err := b.usable()
	events := b.events
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return b.drain(events, nil)
}

// drain appends every already-queued event without blocking.
func (b *Backend) drain(events <-chan xgb.Event, out []platform.Event) ([]platform.Event, error) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out, platform.FrameworkError("x11 connection closed")
			}
			out = append(out, b.translate(ev)...)
		default:
			return out, nil
		}
	}
}

// WaitEvents implements platform.Backend.
func (b *Backend) WaitEvents() ([]platform.Event, error) {
	return b.WaitEventsTimeout(0)
}

// WaitEventsTimeout implements platform.Backend. Translation can swallow
// protocol events the platform layer has no use for, so the wait loops
// until at least one platform event comes out or the timeout fires.
func (b *Backend) WaitEventsTimeout(timeout time.Duration) ([]platform.Event, error) {
	b.mu.Lock()
	err := b.usable()
	events := b.events
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil, platform.FrameworkError("x11 connection closed")
			}
			out, err := b.drain(events, b.translate(ev))
			if err != nil || len(out) > 0 {
				return out, err
			}
		case <-deadline:
			return nil, nil
		}
	}
}

// translate converts one protocol event into zero or more platform events.
// Events for windows the backend no longer tracks are dropped.
func (b *Backend) translate(ev xgb.Event) []platform.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch e := ev.(type) {
	case xproto.ClientMessageEvent:
		if e.Type != b.atoms.wmProtocols || len(e.Data.Data32) == 0 {
			return nil
		}
		if xproto.Atom(e.Data.Data32[0]) != b.atoms.wmDeleteWindow {
			return nil
		}
		if id, ok := b.byXID[e.Window]; ok {
			return []platform.Event{platform.WindowClosed(id)}
		}

	case xproto.KeyPressEvent:
		if id, ok := b.byXID[e.Event]; ok {
			key := keyFromCode(e.Detail)
			mods := modsFromState(e.State)
			out := []platform.Event{platform.KeyPressed(id, key, mods)}
			if text := textForKey(key, mods); text != "" {
				out = append(out, platform.TextInput(id, text))
			}
			return out
		}

	case xproto.KeyReleaseEvent:
		if id, ok := b.byXID[e.Event]; ok {
			return []platform.Event{platform.KeyReleased(id, keyFromCode(e.Detail), modsFromState(e.State))}
		}

	case xproto.ButtonPressEvent:
		id, ok := b.byXID[e.Event]
		if !ok {
			return nil
		}
		x, y := float64(e.EventX), float64(e.EventY)
		if dx, dy, wheel := wheelFromDetail(byte(e.Detail)); wheel {
			return []platform.Event{platform.MouseWheel(id, dx, dy)}
		}
		return []platform.Event{platform.MousePressed(id, buttonFromDetail(byte(e.Detail)), x, y)}

	case xproto.ButtonReleaseEvent:
		id, ok := b.byXID[e.Event]
		if !ok {
			return nil
		}
		// Wheel clicks arrive as press/release pairs; the press carried
		// the scroll step already.
		if _, _, wheel := wheelFromDetail(byte(e.Detail)); wheel {
			return nil
		}
		return []platform.Event{platform.MouseReleased(id, buttonFromDetail(byte(e.Detail)),
			float64(e.EventX), float64(e.EventY))}

	case xproto.MotionNotifyEvent:
		if id, ok := b.byXID[e.Event]; ok {
			return []platform.Event{platform.MouseMoved(id, float64(e.EventX), float64(e.EventY))}
		}

	case xproto.ConfigureNotifyEvent:
		id, ok := b.byXID[e.Window]
		if !ok {
			return nil
		}
		w := b.windows[id]
		var out []platform.Event
		if uint32(e.Width) != w.width || uint32(e.Height) != w.height {
			w.width, w.height = uint32(e.Width), uint32(e.Height)
			out = append(out, platform.WindowResized(id, w.width, w.height))
		}
		if int32(e.X) != w.x || int32(e.Y) != w.y {
			w.x, w.y = int32(e.X), int32(e.Y)
			out = append(out, platform.WindowMoved(id, w.x, w.y))
		}
		return out

	case xproto.FocusInEvent:
		if id, ok := b.byXID[e.Event]; ok {
			return []platform.Event{platform.WindowFocused(id)}
		}

	case xproto.FocusOutEvent:
		if id, ok := b.byXID[e.Event]; ok {
			return []platform.Event{platform.WindowUnfocused(id)}
		}

	case xproto.DestroyNotifyEvent:
		// Our own DestroyWindow already dropped the mapping, so only an
		// external destroy still resolves here.
		if id, ok := b.byXID[e.Window]; ok {
			delete(b.byXID, e.Window)
			delete(b.windows, id)
			return []platform.Event{platform.WindowClosed(id)}
		}

	case xproto.EnterNotifyEvent, xproto.LeaveNotifyEvent:
		// Crossing transitions are synthesized upstream from motion.

	case xproto.ExposeEvent:
		// The frame loop repaints continuously.
	}
	return nil
}
