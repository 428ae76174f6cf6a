package headless

import (
	"errors"
	"testing"
	"time"

	"github.com/emiliancristea/RX-Framework/platform"
)

func newInitialized(t *testing.T) *Backend {
	t.Helper()
	b := New()
	if err := b.Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	return b
}

func TestUninitializedBackendRejectsOperations(t *testing.T) {
	b := New()
	if _, err := b.PollEvents(); err == nil {
		t.Error("PollEvents on uninitialized backend should fail")
	}
	if _, err := b.CreateWindow(platform.DefaultWindowParams()); err == nil {
		t.Error("CreateWindow on uninitialized backend should fail")
	}
}

func TestWindowLifecycle(t *testing.T) {
	b := newInitialized(t)

	h, err := b.CreateWindow(platform.DefaultWindowParams())
	if err != nil {
		t.Fatalf("CreateWindow() failed: %v", err)
	}
	if h.ID == 0 {
		t.Fatal("window id should start at 1")
	}
	if b.WindowCount() != 1 {
		t.Fatalf("WindowCount() = %d, want 1", b.WindowCount())
	}

	if err := b.SetWindowTitle(h, "renamed"); err != nil {
		t.Errorf("SetWindowTitle() failed: %v", err)
	}
	if err := b.SetWindowSize(h, 640, 480); err != nil {
		t.Errorf("SetWindowSize() failed: %v", err)
	}
	w, hgt, err := b.WindowSize(h)
	if err != nil || w != 640 || hgt != 480 {
		t.Errorf("WindowSize() = %d,%d,%v, want 640,480,nil", w, hgt, err)
	}
	if err := b.SetWindowPosition(h, 10, -5); err != nil {
		t.Errorf("SetWindowPosition() failed: %v", err)
	}
	x, y, err := b.WindowPosition(h)
	if err != nil || x != 10 || y != -5 {
		t.Errorf("WindowPosition() = %d,%d,%v, want 10,-5,nil", x, y, err)
	}

	if err := b.DestroyWindow(h); err != nil {
		t.Fatalf("DestroyWindow() failed: %v", err)
	}
	if b.WindowCount() != 0 {
		t.Errorf("WindowCount() = %d after destroy, want 0", b.WindowCount())
	}
	if err := b.DestroyWindow(h); err == nil {
		t.Error("destroying a destroyed window should fail")
	}
}

func TestPollReturnsPushedEventsInOrder(t *testing.T) {
	b := newInitialized(t)

	first, err := b.PollEvents()
	if err != nil {
		t.Fatalf("PollEvents() failed: %v", err)
	}
	if len(first) != 0 {
		t.Fatalf("expected no events, got %d", len(first))
	}

	b.Push(
		platform.MouseMoved(1, 5, 5),
		platform.MousePressed(1, platform.MouseButtonLeft, 5, 5),
		platform.Quit(),
	)
	events, err := b.PollEvents()
	if err != nil {
		t.Fatalf("PollEvents() failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	wantTypes := []platform.EventType{platform.EventMouseMoved, platform.EventMousePressed, platform.EventQuit}
	for i, want := range wantTypes {
		if events[i].Type != want {
			t.Errorf("events[%d].Type = %v, want %v", i, events[i].Type, want)
		}
	}

	// The queue must be drained.
	again, err := b.PollEvents()
	if err != nil || len(again) != 0 {
		t.Errorf("second poll = %d events, %v, want empty", len(again), err)
	}
}

func TestWaitBlocksUntilPush(t *testing.T) {
	b := newInitialized(t)

	done := make(chan []platform.Event, 1)
	go func() {
		events, err := b.WaitEvents()
		if err != nil {
			t.Errorf("WaitEvents() failed: %v", err)
		}
		done <- events
	}()

	select {
	case <-done:
		t.Fatal("WaitEvents returned before any event was pushed")
	case <-time.After(20 * time.Millisecond):
	}

	b.Push(platform.WindowFocused(1))
	select {
	case events := <-done:
		if len(events) != 1 || events[0].Type != platform.EventWindowFocused {
			t.Errorf("got %v, want one WindowFocused event", events)
		}
	case <-time.After(time.Second):
		t.Fatal("WaitEvents did not wake after Push")
	}
}

func TestWaitTimeoutExpires(t *testing.T) {
	b := newInitialized(t)

	start := time.Now()
	events, err := b.WaitEventsTimeout(30 * time.Millisecond)
	if err != nil {
		t.Fatalf("WaitEventsTimeout() failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events on timeout, want 0", len(events))
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("returned after %v, should have waited for the timeout", elapsed)
	}
}

func TestFailNextSurfacesErrorOnce(t *testing.T) {
	b := newInitialized(t)
	boom := errors.New("display gone")

	b.Push(platform.Quit())
	b.FailNext(boom)

	if _, err := b.PollEvents(); !errors.Is(err, boom) {
		t.Fatalf("PollEvents() error = %v, want %v", err, boom)
	}

	// The error is consumed; queued events survive it.
	events, err := b.PollEvents()
	if err != nil {
		t.Fatalf("PollEvents() after failure: %v", err)
	}
	if len(events) != 1 || events[0].Type != platform.EventQuit {
		t.Errorf("got %v, want the queued Quit event", events)
	}
}

func TestDrawingContextRecordsOps(t *testing.T) {
	b := newInitialized(t)
	h, err := b.CreateWindow(platform.DefaultWindowParams())
	if err != nil {
		t.Fatalf("CreateWindow() failed: %v", err)
	}

	dc, err := b.DrawingContext(h)
	if err != nil {
		t.Fatalf("DrawingContext() failed: %v", err)
	}
	red := platform.RGBA{R: 1, A: 1}
	dc.Clear(platform.RGBA{A: 1})
	dc.FillRect(10, 20, 30, 40, red)
	dc.DrawText("hi", 12, 22, red)
	dc.Present()

	ctx := dc.(*Context)
	ops := ctx.Ops()
	wantKinds := []string{"clear", "fill", "text", "present"}
	if len(ops) != len(wantKinds) {
		t.Fatalf("got %d ops, want %d", len(ops), len(wantKinds))
	}
	for i, want := range wantKinds {
		if ops[i].Kind != want {
			t.Errorf("ops[%d].Kind = %q, want %q", i, ops[i].Kind, want)
		}
	}
	if ops[1].X != 10 || ops[1].Width != 30 {
		t.Errorf("fill rect = %+v, want x=10 width=30", ops[1])
	}

	w, hgt := dc.Size()
	if w != 800 || hgt != 600 {
		t.Errorf("Size() = %d,%d, want 800,600", w, hgt)
	}

	ctx.Reset()
	if len(ctx.Ops()) != 0 {
		t.Error("Reset() should discard recorded ops")
	}
}

func TestCleanupInvalidatesBackend(t *testing.T) {
	b := newInitialized(t)
	h, _ := b.CreateWindow(platform.DefaultWindowParams())
	_ = h

	if err := b.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if b.WindowCount() != 0 {
		t.Error("Cleanup should destroy remaining windows")
	}
	if _, err := b.PollEvents(); err == nil {
		t.Error("PollEvents after Cleanup should fail")
	}
	if err := b.Initialize(); err == nil {
		t.Error("Initialize after Cleanup should fail")
	}
}
