package rx

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Application lifecycle states. An application runs at most once; after it
// stops, the backend is gone and a fresh Application is needed.
const (
	appIdle int32 = iota
	appRunning
	appStopped
)

// frameDelta is the fixed update step handed to windows when an embedding
// host drives RunFrame; the host owns real frame pacing.
const frameDelta = 16 * time.Millisecond

// Application is the entry point of a framework program. It owns the
// platform backend, the event loop, and the window set.
//
//	app, err := rx.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	window, err := rx.NewWindowBuilder().Title("My App").Build(app)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := window.Show(); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
type Application struct {
	config Config
	guard  *backendGuard
	loop   *EventLoop
	state  atomic.Int32

	mu      sync.Mutex
	windows *WindowManager

	monMu   sync.Mutex
	monitor *PerformanceMonitor
}

// New creates an application with the default configuration.
func New() (*Application, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an application using the given configuration. The
// platform backend is selected, created, and initialized before this
// returns.
func NewWithConfig(config Config) (*Application, error) {
	backend, err := newBackend(config)
	if err != nil {
		return nil, err
	}
	return newApplication(config, backend)
}

// NewWithBackend creates an application around a caller-supplied backend,
// ignoring config.Backend. Embedding hosts use it to pair the framework
// with a scripted or custom event source instead of the platform default.
func NewWithBackend(config Config, backend platform.Backend) (*Application, error) {
	return newApplication(config, backend)
}

// newApplication wires an application around an already chosen backend.
func newApplication(config Config, backend platform.Backend) (*Application, error) {
	if err := backend.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize platform backend: %w", err)
	}

	guard := newBackendGuard(backend)
	app := &Application{
		config:  config,
		guard:   guard,
		loop:    newEventLoop(guard, config.EventQueueCapacity),
		windows: NewWindowManager(),
	}
	if config.EnablePerformanceMonitoring {
		app.monitor = NewPerformanceMonitor(config.PerformanceSampleCount)
	}
	return app, nil
}

// Config returns the application configuration.
func (a *Application) Config() Config {
	return a.config
}

// EventLoop returns the application's event loop for posting user events,
// registering filters, and querying input state.
func (a *Application) EventLoop() *EventLoop {
	return a.loop
}

// IsRunning reports whether the main loop is active.
func (a *Application) IsRunning() bool {
	return a.state.Load() == appRunning
}

// Quit asks the main loop to stop after the current frame. Safe to call
// from event handlers and other goroutines.
func (a *Application) Quit() {
	a.state.CompareAndSwap(appRunning, appStopped)
}

// Windows returns all registered windows in creation order.
func (a *Application) Windows() []*Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windows.Windows()
}

// Window returns the registered window with the given id.
func (a *Application) Window(id WindowID) (*Window, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windows.Get(id)
}

// WindowCount returns the number of registered windows.
func (a *Application) WindowCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windows.Count()
}

func (a *Application) registerWindow(window *Window) {
	a.mu.Lock()
	a.windows.Add(window)
	a.mu.Unlock()
}

// windowSnapshot copies the window list so dispatch and rendering run
// without holding the application lock. Handlers may register or remove
// windows without deadlocking.
func (a *Application) windowSnapshot() []*Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windows.Windows()
}

// Run drives the main loop until the application stops.
//
// Each frame polls the event loop and handles the batch: Quit stops the
// application, WindowClosed unregisters the window (stopping the
// application when none remain, which also abandons the rest of the
// batch), and every other event is forwarded to every window. Windows are
// then updated and rendered, a performance sample is recorded when
// monitoring is on, and the loop sleeps out the remainder of the frame.
//
// An error aborts Run immediately without cleanup. On a normal stop all
// windows are closed, then the backend is torn down.
func (a *Application) Run() error {
	if !a.state.CompareAndSwap(appIdle, appRunning) {
		return platform.InvalidOperation("application has already run")
	}

	timer := NewTimer(a.config.TargetFPS)

	for a.IsRunning() {
		frameStart := time.Now()

		events, err := a.loop.Poll()
		if err != nil {
			return err
		}
		if _, err := a.processEvents(events); err != nil {
			return err
		}

		// The stop frame still updates and renders, so handlers see one
		// consistent final frame.
		if err := a.updateAndRender(timer.DeltaTime()); err != nil {
			return err
		}

		if a.monitor != nil {
			a.monMu.Lock()
			a.monitor.Record(time.Since(frameStart))
			a.monMu.Unlock()
		}

		if timer.Tick() {
			timer.SleepForFrame()
		}
	}

	return a.cleanup()
}

// RunFrame executes a single main-loop pass for hosts embedding the
// framework in their own loop. The first call starts the application; once
// it has stopped, RunFrame reports false without doing work. Windows are
// updated with a fixed 16ms step and frame pacing is left to the host.
//
// RunFrame never tears the application down on its own; call Close when
// the host loop ends.
func (a *Application) RunFrame() (bool, error) {
	a.state.CompareAndSwap(appIdle, appRunning)
	if !a.IsRunning() {
		return false, nil
	}

	events, err := a.loop.Poll()
	if err != nil {
		return false, err
	}
	running, err := a.processEvents(events)
	if err != nil {
		return false, err
	}
	if !running {
		return false, nil
	}

	if err := a.updateAndRender(frameDelta); err != nil {
		return false, err
	}
	return true, nil
}

// processEvents handles one polled batch. It reports false once the
// application stopped; remaining events in the batch are dropped.
func (a *Application) processEvents(events []Event) (bool, error) {
	for _, event := range events {
		switch ev := event.(type) {
		case QuitEvent:
			a.Quit()
			return false, nil

		case WindowClosedEvent:
			a.mu.Lock()
			a.windows.Remove(ev.Window)
			remaining := a.windows.Count()
			a.mu.Unlock()
			if remaining == 0 {
				a.Quit()
				return false, nil
			}

		default:
			for _, w := range a.windowSnapshot() {
				if err := w.handleEvent(event); err != nil {
					return false, err
				}
			}
		}
	}
	return true, nil
}

func (a *Application) updateAndRender(delta time.Duration) error {
	for _, w := range a.windowSnapshot() {
		if err := w.update(delta); err != nil {
			return err
		}
		if err := w.render(); err != nil {
			return err
		}
	}
	return nil
}

// Close stops the application and tears down windows and the backend. It
// is the counterpart to Run's normal-stop cleanup for embedding hosts and
// is safe to call more than once.
func (a *Application) Close() error {
	a.state.CompareAndSwap(appIdle, appStopped)
	a.state.CompareAndSwap(appRunning, appStopped)
	return a.cleanup()
}

// cleanup closes every window, then shuts the backend down. Window close
// failures do not stop backend teardown; the first error seen is returned.
func (a *Application) cleanup() error {
	a.mu.Lock()
	closeErr := a.windows.CloseAll()
	a.windows.Clear()
	a.mu.Unlock()

	var backendErr error
	a.guard.shutdown(func(b platform.Backend) error {
		backendErr = b.Cleanup()
		return nil
	})

	if closeErr != nil {
		return closeErr
	}
	return backendErr
}

// PerformanceStats returns frame statistics. It reports false when
// performance monitoring is disabled in the configuration.
func (a *Application) PerformanceStats() (PerformanceStats, bool) {
	if a.monitor == nil {
		return PerformanceStats{}, false
	}
	a.monMu.Lock()
	defer a.monMu.Unlock()
	return a.monitor.Stats(), true
}

// ============================================================================
// Application Builder
// ============================================================================

// ApplicationBuilder assembles a configuration fluently before creating
// the application.
type ApplicationBuilder struct {
	config Config
}

// NewApplicationBuilder creates a builder starting from the default
// configuration.
func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{config: DefaultConfig()}
}

// TargetFPS sets the main loop frame rate.
func (b *ApplicationBuilder) TargetFPS(fps uint32) *ApplicationBuilder {
	b.config.TargetFPS = fps
	return b
}

// VSync enables or disables vertical sync where the platform supports it.
func (b *ApplicationBuilder) VSync(enable bool) *ApplicationBuilder {
	b.config.VSync = enable
	return b
}

// AppName sets the application name.
func (b *ApplicationBuilder) AppName(name string) *ApplicationBuilder {
	b.config.AppName = name
	return b
}

// AppVersion sets the application version string.
func (b *ApplicationBuilder) AppVersion(version string) *ApplicationBuilder {
	b.config.AppVersion = version
	return b
}

// PerformanceMonitoring enables frame statistics collection.
func (b *ApplicationBuilder) PerformanceMonitoring(enable bool) *ApplicationBuilder {
	b.config.EnablePerformanceMonitoring = enable
	return b
}

// PerformanceSampleCount sets how many frame samples are kept.
func (b *ApplicationBuilder) PerformanceSampleCount(count int) *ApplicationBuilder {
	b.config.PerformanceSampleCount = count
	return b
}

// EventQueueCapacity bounds the event loop queue. Zero means unbounded.
func (b *ApplicationBuilder) EventQueueCapacity(capacity int) *ApplicationBuilder {
	b.config.EventQueueCapacity = capacity
	return b
}

// Backend selects the platform backend by name.
func (b *ApplicationBuilder) Backend(name string) *ApplicationBuilder {
	b.config.Backend = name
	return b
}

// Build creates the application.
func (b *ApplicationBuilder) Build() (*Application, error) {
	return NewWithConfig(b.config)
}
