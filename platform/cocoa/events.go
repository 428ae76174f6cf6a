//go:build darwin

package cocoa

import (
	"time"

	"github.com/ebitengine/purego/objc"

	"github.com/emiliancristea/RX-Framework/platform"
)

// enqueue appends events for the next Poll/Wait to hand out.
func enqueue(events ...platform.Event) {
	shared.mu.Lock()
	shared.queue = append(shared.queue, events...)
	shared.mu.Unlock()
}

func takeQueue() []platform.Event {
	shared.mu.Lock()
	out := shared.queue
	shared.queue = nil
	shared.mu.Unlock()
	return out
}

func queueLen() int {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return len(shared.queue)
}

// windowID resolves an NSWindow to its backend window id.
func windowID(nsWin objc.ID) (platform.WindowID, bool) {
	shared.mu.Lock()
	id, ok := shared.byWindow[nsWin]
	shared.mu.Unlock()
	return id, ok
}

// registerDelegateClass builds the window delegate that feeds AppKit
// notifications into the shared queue. The callbacks run on the event loop
// thread, nested inside sendEvent: or inside any window call that AppKit
// answers synchronously, so they must not take the backend mutex.
func registerDelegateClass() (objc.Class, error) {
	cls := objc.AllocateClassPair(classNSObject, "RXWindowDelegate", 0)
	if cls == 0 {
		return 0, platform.PlatformInitError("failed to allocate window delegate class")
	}
	methods := []struct {
		name  string
		imp   objc.IMP
		types string
	}{
		{"windowShouldClose:", objc.NewIMP(windowShouldClose), "c@:@"},
		{"windowDidResize:", objc.NewIMP(windowDidResize), "v@:@"},
		{"windowDidMove:", objc.NewIMP(windowDidMove), "v@:@"},
		{"windowDidBecomeKey:", objc.NewIMP(windowDidBecomeKey), "v@:@"},
		{"windowDidResignKey:", objc.NewIMP(windowDidResignKey), "v@:@"},
	}
	for _, m := range methods {
		if !cls.AddMethod(objc.RegisterName(m.name), m.imp, m.types) {
			return 0, platform.PlatformInitError("failed to add delegate method " + m.name)
		}
	}
	cls.Register()
	return cls, nil
}

func windowShouldClose(self objc.ID, cmd objc.SEL, sender objc.ID) bool {
	if id, ok := windowID(sender); ok {
		// The framework owns the window lifetime; report and keep it.
		enqueue(platform.WindowClosed(id))
	}
	return false
}

func windowDidResize(self objc.ID, cmd objc.SEL, note objc.ID) {
	nsWin := note.Send(selObject)
	id, ok := windowID(nsWin)
	if !ok {
		return
	}
	view := nsWin.Send(selContentView)
	if view == 0 {
		return
	}
	size := objc.Send[nsRect](view, selFrame).Size
	enqueue(platform.WindowResized(id, uint32(size.Width), uint32(size.Height)))
}

func windowDidMove(self objc.ID, cmd objc.SEL, note objc.ID) {
	nsWin := note.Send(selObject)
	id, ok := windowID(nsWin)
	if !ok {
		return
	}
	frame := objc.Send[nsRect](nsWin, selFrame)
	x := int32(frame.Origin.X)
	y := int32(screenHeight() - frame.Origin.Y - frame.Size.Height)
	enqueue(platform.WindowMoved(id, x, y))
}

func windowDidBecomeKey(self objc.ID, cmd objc.SEL, note objc.ID) {
	if id, ok := windowID(note.Send(selObject)); ok {
		enqueue(platform.WindowFocused(id))
	}
}

func windowDidResignKey(self objc.ID, cmd objc.SEL, note objc.ID) {
	if id, ok := windowID(note.Send(selObject)); ok {
		enqueue(platform.WindowUnfocused(id))
	}
}

// autoreleasePool scopes the autoreleased objects AppKit creates while
// events are pumped.
type autoreleasePool struct{ id objc.ID }

func newPool() autoreleasePool {
	return autoreleasePool{objc.ID(classNSAutoreleasePool).Send(selAlloc).Send(selInit)}
}

func (p autoreleasePool) drain() {
	if p.id != 0 {
		p.id.Send(selDrain)
	}
}

// handleEvent translates one NSEvent and forwards it to AppKit for its own
// processing.
func handleEvent(app, ev objc.ID) {
	if events := translateEvent(ev); len(events) > 0 {
		enqueue(events...)
	}
	app.Send(selSendEvent, ev)
}

// drainPending dequeues without blocking until the AppKit queue is empty.
func drainPending(app objc.ID) {
	past := objc.ID(classNSDate).Send(selDistantPast)
	for {
		ev := app.Send(selNextEvent, anyEventMask, past, runLoopMode, true)
		if ev == 0 {
			app.Send(selUpdateWindows)
			return
		}
		handleEvent(app, ev)
	}
}

// PollEvents implements platform.Backend.
func (b *Backend) PollEvents() ([]platform.Event, error) {
	b.mu.Lock()
	err := b.usable()
	app := b.app
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	pool := newPool()
	defer pool.drain()
	drainPending(app)
	return takeQueue(), nil
}

// WaitEvents implements platform.Backend.
func (b *Backend) WaitEvents() ([]platform.Event, error) {
	return b.WaitEventsTimeout(0)
}

// WaitEventsTimeout implements platform.Backend. The blocking dequeue is
// bounded by an NSDate deadline; a nil event from nextEventMatchingMask
// means the deadline passed.
func (b *Backend) WaitEventsTimeout(timeout time.Duration) ([]platform.Event, error) {
	b.mu.Lock()
	err := b.usable()
	app := b.app
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	pool := newPool()
	defer pool.drain()

	until := objc.ID(classNSDate).Send(selDistantFuture)
	if timeout > 0 {
		until = objc.ID(classNSDate).Send(selDateWithSeconds, timeout.Seconds())
	}
	for {
		if queueLen() > 0 {
			return takeQueue(), nil
		}
		ev := app.Send(selNextEvent, anyEventMask, until, runLoopMode, true)
		if ev == 0 {
			return takeQueue(), nil
		}
		handleEvent(app, ev)
		drainPending(app)
		if queueLen() > 0 {
			return takeQueue(), nil
		}
	}
}

// translateEvent maps an NSEvent to platform events. Events without a
// backend window, such as menu tracking, translate to nothing but are
// still forwarded.
func translateEvent(ev objc.ID) []platform.Event {
	nsWin := ev.Send(selWindow)
	id, ok := windowID(nsWin)
	if !ok {
		return nil
	}

	switch objc.Send[uint64](ev, selType) {
	case eventLeftMouseDown:
		x, y := mouseLocation(ev, nsWin)
		return []platform.Event{platform.MousePressed(id, platform.MouseButtonLeft, x, y)}
	case eventLeftMouseUp:
		x, y := mouseLocation(ev, nsWin)
		return []platform.Event{platform.MouseReleased(id, platform.MouseButtonLeft, x, y)}
	case eventRightMouseDown:
		x, y := mouseLocation(ev, nsWin)
		return []platform.Event{platform.MousePressed(id, platform.MouseButtonRight, x, y)}
	case eventRightMouseUp:
		x, y := mouseLocation(ev, nsWin)
		return []platform.Event{platform.MouseReleased(id, platform.MouseButtonRight, x, y)}
	case eventOtherMouseDown:
		x, y := mouseLocation(ev, nsWin)
		button := buttonForNumber(objc.Send[int64](ev, selButtonNumber))
		return []platform.Event{platform.MousePressed(id, button, x, y)}
	case eventOtherMouseUp:
		x, y := mouseLocation(ev, nsWin)
		button := buttonForNumber(objc.Send[int64](ev, selButtonNumber))
		return []platform.Event{platform.MouseReleased(id, button, x, y)}
	case eventMouseMoved, eventLeftMouseDragged, eventRightMouseDragged, eventOtherMouseDragged:
		x, y := mouseLocation(ev, nsWin)
		return []platform.Event{platform.MouseMoved(id, x, y)}
	case eventScrollWheel:
		dx := objc.Send[float64](ev, selScrollDeltaX)
		dy := objc.Send[float64](ev, selScrollDeltaY)
		return []platform.Event{platform.MouseWheel(id, dx, dy)}
	case eventKeyDown:
		key := keyFromCode(objc.Send[uint16](ev, selKeyCode))
		mods := modsFromFlags(objc.Send[uint64](ev, selModifierFlags))
		out := []platform.Event{platform.KeyPressed(id, key, mods)}
		if text := keyText(ev, mods); text != "" {
			out = append(out, platform.TextInput(id, text))
		}
		return out
	case eventKeyUp:
		key := keyFromCode(objc.Send[uint16](ev, selKeyCode))
		mods := modsFromFlags(objc.Send[uint64](ev, selModifierFlags))
		return []platform.Event{platform.KeyReleased(id, key, mods)}
	case eventFlagsChanged:
		return translateFlagsChanged(id, ev)
	}
	return nil
}

// translateFlagsChanged synthesizes press and release events for modifier
// keys, which AppKit reports only as flag transitions. The key code names
// the modifier; the flag state after the transition gives the direction.
func translateFlagsChanged(id platform.WindowID, ev objc.ID) []platform.Event {
	key := keyFromCode(objc.Send[uint16](ev, selKeyCode))
	flags := objc.Send[uint64](ev, selModifierFlags)
	mask, ok := flagForKey(key)
	if !ok {
		return nil
	}
	mods := modsFromFlags(flags)
	if flags&mask != 0 {
		return []platform.Event{platform.KeyPressed(id, key, mods)}
	}
	return []platform.Event{platform.KeyReleased(id, key, mods)}
}

// mouseLocation is the cursor position in content coordinates with the
// origin at the top left. AppKit reports it bottom up.
func mouseLocation(ev, nsWin objc.ID) (float64, float64) {
	loc := objc.Send[nsPoint](ev, selLocation)
	var height float64
	if view := nsWin.Send(selContentView); view != 0 {
		height = objc.Send[nsRect](view, selFrame).Size.Height
	}
	return loc.X, height - loc.Y
}

func buttonForNumber(n int64) platform.MouseButton {
	switch n {
	case 0:
		return platform.MouseButtonLeft
	case 1:
		return platform.MouseButtonRight
	case 2:
		return platform.MouseButtonMiddle
	default:
		return platform.OtherMouseButton(uint8(n + 1))
	}
}

// keyText extracts printable input from a key press. Control and command
// chords never produce text.
func keyText(ev objc.ID, mods platform.Modifiers) string {
	if mods&(platform.ModCtrl|platform.ModMeta) != 0 {
		return ""
	}
	chars := nsStringToGo(ev.Send(selCharacters))
	var out []rune
	for _, r := range chars {
		// Arrows and function keys arrive in the private use range.
		if r < 0x20 || r == 0x7f || (r >= 0xF700 && r <= 0xF8FF) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
