package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/emiliancristea/RX-Framework/platform"
)

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
func (b *Backend) drain(events <-chan tcell.Event, out []platform.Event) ([]platform.Event, error) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out, platform.FrameworkError("terminal event stream closed")
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

// WaitEventsTimeout implements platform.Backend. Translation can drop
// events, so the wait loops until something comes out or the timeout
// fires.
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
				return nil, platform.FrameworkError("terminal event stream closed")
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

// translate converts one tcell event into zero or more platform events.
// Everything is dropped until the window exists.
func (b *Backend) translate(ev tcell.Event) []platform.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasWindow {
		return nil
	}
	switch e := ev.(type) {
	case *tcell.EventKey:
		return b.translateKey(e)
	case *tcell.EventMouse:
		return b.translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		if uint32(w) == b.width && uint32(h) == b.height {
			return nil
		}
		b.width, b.height = uint32(w), uint32(h)
		return []platform.Event{platform.WindowResized(windowID, b.width, b.height)}
	}
	return nil
}

func (b *Backend) translateKey(e *tcell.EventKey) []platform.Event {
	key, mods, text := keyFromEvent(e)
	if key == platform.KeyNone {
		return nil
	}
	out := []platform.Event{platform.KeyPressed(windowID, key, mods)}
	if text != "" {
		out = append(out, platform.TextInput(windowID, text))
	}
	// Terminals never report key releases.
	out = append(out, platform.KeyReleased(windowID, key, mods))
	if key == platform.KeyC && mods&platform.ModCtrl != 0 {
		out = append(out, platform.Quit())
	}
	return out
}

func (b *Backend) translateMouse(e *tcell.EventMouse) []platform.Event {
	x, y := e.Position()
	buttons := e.Buttons() &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	wheel := e.Buttons() &^ buttons
	fx, fy := float64(x), float64(y)

	var out []platform.Event
	if x != b.lastX || y != b.lastY {
		b.lastX, b.lastY = x, y
		out = append(out, platform.MouseMoved(windowID, fx, fy))
	}
	pressed := buttons &^ b.buttons
	released := b.buttons &^ buttons
	b.buttons = buttons
	for _, m := range buttonOrder {
		if pressed&m.mask != 0 {
			out = append(out, platform.MousePressed(windowID, m.button, fx, fy))
		}
		if released&m.mask != 0 {
			out = append(out, platform.MouseReleased(windowID, m.button, fx, fy))
		}
	}
	switch {
	case wheel&tcell.WheelUp != 0:
		out = append(out, platform.MouseWheel(windowID, 0, 1))
	case wheel&tcell.WheelDown != 0:
		out = append(out, platform.MouseWheel(windowID, 0, -1))
	case wheel&tcell.WheelLeft != 0:
		out = append(out, platform.MouseWheel(windowID, -1, 0))
	case wheel&tcell.WheelRight != 0:
		out = append(out, platform.MouseWheel(windowID, 1, 0))
	}
	return out
}

var buttonOrder = []struct {
	mask   tcell.ButtonMask
	button platform.MouseButton
}{
	{tcell.ButtonPrimary, platform.MouseButtonLeft},
	{tcell.ButtonSecondary, platform.MouseButtonRight},
	{tcell.ButtonMiddle, platform.MouseButtonMiddle},
}

// specialKeys maps the tcell keys with a direct platform equivalent.
var specialKeys = map[tcell.Key]platform.Key{
	tcell.KeyEnter:      platform.KeyReturn,
	tcell.KeyTab:        platform.KeyTab,
	tcell.KeyEscape:     platform.KeyEscape,
	tcell.KeyBackspace:  platform.KeyBackspace,
	tcell.KeyBackspace2: platform.KeyBackspace,
	tcell.KeyDelete:     platform.KeyDelete,
	tcell.KeyInsert:     platform.KeyInsert,
	tcell.KeyHome:       platform.KeyHome,
	tcell.KeyEnd:        platform.KeyEnd,
	tcell.KeyPgUp:       platform.KeyPageUp,
	tcell.KeyPgDn:       platform.KeyPageDown,
	tcell.KeyLeft:       platform.KeyLeft,
	tcell.KeyRight:      platform.KeyRight,
	tcell.KeyUp:         platform.KeyUp,
	tcell.KeyDown:       platform.KeyDown,
	tcell.KeyF1:         platform.KeyF1,
	tcell.KeyF2:         platform.KeyF2,
	tcell.KeyF3:         platform.KeyF3,
	tcell.KeyF4:         platform.KeyF4,
	tcell.KeyF5:         platform.KeyF5,
	tcell.KeyF6:         platform.KeyF6,
	tcell.KeyF7:         platform.KeyF7,
	tcell.KeyF8:         platform.KeyF8,
	tcell.KeyF9:         platform.KeyF9,
	tcell.KeyF10:        platform.KeyF10,
	tcell.KeyF11:        platform.KeyF11,
	tcell.KeyF12:        platform.KeyF12,
}

// keyFromEvent resolves a tcell key event to a platform key, the modifier
// set, and the text it enters, if any.
func keyFromEvent(e *tcell.EventKey) (platform.Key, platform.Modifiers, string) {
	mods := modsFromMask(e.Modifiers())
	if key, ok := specialKeys[e.Key()]; ok {
		return key, mods, ""
	}
	// Control characters 1..26 arrive as their own key codes.
	if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return platform.KeyA + platform.Key(k-tcell.KeyCtrlA), mods | platform.ModCtrl, ""
	}
	if e.Key() != tcell.KeyRune {
		return platform.KeyNone, mods, ""
	}
	r := e.Rune()
	key := keyFromRune(r)
	if mods&(platform.ModCtrl|platform.ModAlt|platform.ModMeta) != 0 {
		return key, mods, ""
	}
	return key, mods, string(r)
}

func keyFromRune(r rune) platform.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return platform.KeyA + platform.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return platform.KeyA + platform.Key(r-'A')
	case r >= '0' && r <= '9':
		return platform.Key0 + platform.Key(r-'0')
	case r == ' ':
		return platform.KeySpace
	case unicode.IsPrint(r):
		return platform.UnknownKey(uint32(r))
	}
	return platform.KeyNone
}

func modsFromMask(mask tcell.ModMask) platform.Modifiers {
	var mods platform.Modifiers
	if mask&tcell.ModShift != 0 {
		mods |= platform.ModShift
	}
	if mask&tcell.ModCtrl != 0 {
		mods |= platform.ModCtrl
	}
	if mask&tcell.ModAlt != 0 {
		mods |= platform.ModAlt
	}
	if mask&tcell.ModMeta != 0 {
		mods |= platform.ModMeta
	}
	return mods
}
