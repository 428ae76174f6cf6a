package rx

import "time"

// ============================================================================
// Frame Timing
// ============================================================================

// Timer paces the main loop to a target frame rate.
type Timer struct {
	startTime     time.Time
	lastFrame     time.Time
	targetFPS     uint32
	frameDuration time.Duration
}

// NewTimer creates a timer aiming for the given frame rate. A zero fps
// falls back to the default cadence of 60.
func NewTimer(targetFPS uint32) *Timer {
	now := time.Now()
	t := &Timer{startTime: now, lastFrame: now}
	t.SetTargetFPS(targetFPS)
	return t
}

// Elapsed returns the time since the timer was created.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// DeltaTime returns the time since the last completed frame.
func (t *Timer) DeltaTime() time.Duration {
	return time.Since(t.lastFrame)
}

// Tick reports whether a full frame interval has passed, resetting the
// frame clock when it has.
func (t *Timer) Tick() bool {
	now := time.Now()
	if now.Sub(t.lastFrame) >= t.frameDuration {
		t.lastFrame = now
		return true
	}
	return false
}

// SleepForFrame sleeps out the remainder of the current frame interval.
func (t *Timer) SleepForFrame() {
	if elapsed := time.Since(t.lastFrame); elapsed < t.frameDuration {
		time.Sleep(t.frameDuration - elapsed)
	}
}

// CurrentFPS estimates the instantaneous frame rate from the time since
// the last frame.
func (t *Timer) CurrentFPS() float64 {
	if delta := t.DeltaTime().Seconds(); delta > 0 {
		return 1 / delta
	}
	return 0
}

// SetTargetFPS changes the target frame rate. A zero fps falls back to 60.
func (t *Timer) SetTargetFPS(fps uint32) {
	if fps == 0 {
		fps = 60
	}
	t.targetFPS = fps
	t.frameDuration = time.Duration(float64(time.Second) / float64(fps))
}

// TargetFPS returns the configured frame rate.
func (t *Timer) TargetFPS() uint32 {
	return t.targetFPS
}

// ============================================================================
// Performance Monitoring
// ============================================================================

// PerformanceMonitor keeps a bounded ring of recent frame times.
type PerformanceMonitor struct {
	frameTimes []time.Duration
	maxSamples int
	index      int
}

// NewPerformanceMonitor creates a monitor holding up to maxSamples frame
// times. Non-positive counts fall back to 100.
func NewPerformanceMonitor(maxSamples int) *PerformanceMonitor {
	if maxSamples <= 0 {
		maxSamples = 100
	}
	return &PerformanceMonitor{
		frameTimes: make([]time.Duration, 0, maxSamples),
		maxSamples: maxSamples,
	}
}

// Record adds a frame time sample, overwriting the oldest once the buffer
// is full.
func (p *PerformanceMonitor) Record(frameTime time.Duration) {
	if len(p.frameTimes) < p.maxSamples {
		p.frameTimes = append(p.frameTimes, frameTime)
		return
	}
	p.frameTimes[p.index] = frameTime
	p.index = (p.index + 1) % p.maxSamples
}

// SampleCount returns the number of recorded samples.
func (p *PerformanceMonitor) SampleCount() int {
	return len(p.frameTimes)
}

// AverageFrameTime returns the mean of the recorded samples, or zero when
// nothing has been recorded.
func (p *PerformanceMonitor) AverageFrameTime() time.Duration {
	if len(p.frameTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, ft := range p.frameTimes {
		total += ft
	}
	return total / time.Duration(len(p.frameTimes))
}

// AverageFPS derives a frame rate from the average frame time.
func (p *PerformanceMonitor) AverageFPS() float64 {
	if avg := p.AverageFrameTime().Seconds(); avg > 0 {
		return 1 / avg
	}
	return 0
}

// MinFrameTime returns the fastest recorded frame, if any.
func (p *PerformanceMonitor) MinFrameTime() (time.Duration, bool) {
	if len(p.frameTimes) == 0 {
		return 0, false
	}
	min := p.frameTimes[0]
	for _, ft := range p.frameTimes[1:] {
		if ft < min {
			min = ft
		}
	}
	return min, true
}

// MaxFrameTime returns the slowest recorded frame, if any.
func (p *PerformanceMonitor) MaxFrameTime() (time.Duration, bool) {
	if len(p.frameTimes) == 0 {
		return 0, false
	}
	max := p.frameTimes[0]
	for _, ft := range p.frameTimes[1:] {
		if ft > max {
			max = ft
		}
	}
	return max, true
}

// Clear drops all recorded samples.
func (p *PerformanceMonitor) Clear() {
	p.frameTimes = p.frameTimes[:0]
	p.index = 0
}

// Stats summarizes the recorded samples.
func (p *PerformanceMonitor) Stats() PerformanceStats {
	min, _ := p.MinFrameTime()
	max, _ := p.MaxFrameTime()
	return PerformanceStats{
		AverageFPS:       p.AverageFPS(),
		AverageFrameTime: p.AverageFrameTime(),
		MinFrameTime:     min,
		MaxFrameTime:     max,
		SampleCount:      p.SampleCount(),
	}
}

// PerformanceStats is a point-in-time summary of frame performance.
type PerformanceStats struct {
	AverageFPS       float64
	AverageFrameTime time.Duration
	MinFrameTime     time.Duration
	MaxFrameTime     time.Duration
	SampleCount      int
}
