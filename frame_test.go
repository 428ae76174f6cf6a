package rx

import (
	"testing"
	"time"
)

func TestTimerTargetFPS(t *testing.T) {
	timer := NewTimer(120)
	if timer.TargetFPS() != 120 {
		t.Errorf("TargetFPS() = %d, want 120", timer.TargetFPS())
	}
	if timer.frameDuration != time.Second/120 {
		t.Errorf("frameDuration = %v, want %v", timer.frameDuration, time.Second/120)
	}

	// Zero falls back to the default cadence instead of dividing by zero.
	timer.SetTargetFPS(0)
	if timer.TargetFPS() != 60 {
		t.Errorf("TargetFPS() after 0 = %d, want 60", timer.TargetFPS())
	}
}

func TestTimerTick(t *testing.T) {
	timer := NewTimer(60)

	// Fresh timer: no frame interval has passed yet.
	if timer.Tick() {
		t.Error("Tick() = true immediately after creation")
	}

	// Backdate the frame clock instead of sleeping.
	timer.lastFrame = time.Now().Add(-time.Second)
	if !timer.Tick() {
		t.Error("Tick() = false a full second after the last frame")
	}
	// The tick reset the clock.
	if timer.Tick() {
		t.Error("Tick() = true twice in a row")
	}
}

func TestTimerDelta(t *testing.T) {
	timer := NewTimer(60)
	timer.lastFrame = time.Now().Add(-100 * time.Millisecond)

	delta := timer.DeltaTime()
	if delta < 100*time.Millisecond || delta > time.Second {
		t.Errorf("DeltaTime() = %v, want roughly 100ms", delta)
	}
	if fps := timer.CurrentFPS(); fps <= 0 || fps > 11 {
		t.Errorf("CurrentFPS() = %v, want roughly 10", fps)
	}
}

func TestPerformanceMonitorRing(t *testing.T) {
	m := NewPerformanceMonitor(3)
	for _, d := range []time.Duration{10, 20, 30} {
		m.Record(d * time.Millisecond)
	}
	if m.SampleCount() != 3 {
		t.Fatalf("SampleCount() = %d, want 3", m.SampleCount())
	}
	if got := m.AverageFrameTime(); got != 20*time.Millisecond {
		t.Errorf("AverageFrameTime() = %v, want 20ms", got)
	}

	// The fourth sample overwrites the oldest.
	m.Record(60 * time.Millisecond)
	if m.SampleCount() != 3 {
		t.Fatalf("SampleCount() = %d after overflow, want 3", m.SampleCount())
	}
	if got, want := m.AverageFrameTime(), 110*time.Millisecond/3; got != want {
		t.Errorf("AverageFrameTime() = %v, want %v", got, want)
	}

	min, ok := m.MinFrameTime()
	if !ok || min != 20*time.Millisecond {
		t.Errorf("MinFrameTime() = %v, %v, want 20ms, true", min, ok)
	}
	max, ok := m.MaxFrameTime()
	if !ok || max != 60*time.Millisecond {
		t.Errorf("MaxFrameTime() = %v, %v, want 60ms, true", max, ok)
	}
}

func TestPerformanceMonitorEmpty(t *testing.T) {
	m := NewPerformanceMonitor(10)
	if m.AverageFrameTime() != 0 {
		t.Error("AverageFrameTime() != 0 with no samples")
	}
	if m.AverageFPS() != 0 {
		t.Error("AverageFPS() != 0 with no samples")
	}
	if _, ok := m.MinFrameTime(); ok {
		t.Error("MinFrameTime() reported a sample")
	}
	if _, ok := m.MaxFrameTime(); ok {
		t.Error("MaxFrameTime() reported a sample")
	}

	stats := m.Stats()
	if stats.SampleCount != 0 || stats.AverageFPS != 0 {
		t.Errorf("Stats() = %+v, want zeroes", stats)
	}
}

func TestPerformanceMonitorAverageFPS(t *testing.T) {
	m := NewPerformanceMonitor(10)
	m.Record(10 * time.Millisecond)
	m.Record(30 * time.Millisecond)

	// 20ms average frame time is 50 fps.
	if got := m.AverageFPS(); got < 49.9 || got > 50.1 {
		t.Errorf("AverageFPS() = %v, want 50", got)
	}

	stats := m.Stats()
	if stats.SampleCount != 2 {
		t.Errorf("Stats().SampleCount = %d, want 2", stats.SampleCount)
	}
	if stats.MinFrameTime != 10*time.Millisecond || stats.MaxFrameTime != 30*time.Millisecond {
		t.Errorf("Stats() min/max = %v/%v, want 10ms/30ms", stats.MinFrameTime, stats.MaxFrameTime)
	}
}

func TestPerformanceMonitorClear(t *testing.T) {
	m := NewPerformanceMonitor(2)
	m.Record(time.Millisecond)
	m.Record(time.Millisecond)
	m.Record(time.Millisecond)
	m.Clear()
	if m.SampleCount() != 0 {
		t.Errorf("SampleCount() = %d after Clear, want 0", m.SampleCount())
	}

	// The ring fills from the start again.
	m.Record(5 * time.Millisecond)
	if got := m.AverageFrameTime(); got != 5*time.Millisecond {
		t.Errorf("AverageFrameTime() = %v after refill, want 5ms", got)
	}
}

func TestPerformanceMonitorFallbackCapacity(t *testing.T) {
	m := NewPerformanceMonitor(0)
	for i := 0; i < 150; i++ {
		m.Record(time.Millisecond)
	}
	if m.SampleCount() != 100 {
		t.Errorf("SampleCount() = %d with fallback capacity, want 100", m.SampleCount())
	}
}
