// Package desktop bridges session bus signals into the event loop as user
// events. Screensaver activation and portal appearance changes are posted
// through EventLoop.PostUserEvent, so applications observe them like any
// other event.
//
// The bridge speaks D-Bus through godbus and needs no cgo. On systems
// without a session bus Connect fails and the application simply runs
// without desktop integration.
package desktop

import (
	"sync"

	"github.com/godbus/dbus/v5"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// Event types posted by the bridge.
const (
	// EventScreenSaver carries a UserBool: true when the screensaver or
	// lock screen engages, false when the session resumes.
	EventScreenSaver = "desktop.screensaver"

	// EventThemeChanged carries a UserString with one of the Theme values.
	EventThemeChanged = "desktop.theme"
)

// Theme values carried by EventThemeChanged.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemeLight   = "light"
)

const (
	screenSaverInterface      = "org.freedesktop.ScreenSaver"
	gnomeScreenSaverInterface = "org.gnome.ScreenSaver"
	portalSettingsInterface   = "org.freedesktop.portal.Settings"
	appearanceNamespace       = "org.freedesktop.appearance"
	colorSchemeKey            = "color-scheme"
)

// Poster is the part of the event loop the bridge posts into.
// *rx.EventLoop satisfies it.
type Poster interface {
	PostUserEvent(eventType string, data rx.UserData)
}

// Bridge forwards desktop signals from the session bus to an event loop
// until Close is called.
type Bridge struct {
	loop      Poster
	conn      *dbus.Conn
	signals   chan *dbus.Signal
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Connect opens the session bus, subscribes to the desktop signals the
// bridge understands and starts forwarding them to loop.
func Connect(loop Poster) (*Bridge, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, platform.WrapError(platform.ErrPlatformSpecific,
			"failed to connect to session bus", err)
	}
	return newBridge(loop, conn)
}

func newBridge(loop Poster, conn *dbus.Conn) (*Bridge, error) {
	matches := [][]dbus.MatchOption{
		{dbus.WithMatchInterface(screenSaverInterface), dbus.WithMatchMember("ActiveChanged")},
		{dbus.WithMatchInterface(gnomeScreenSaverInterface), dbus.WithMatchMember("ActiveChanged")},
		{dbus.WithMatchInterface(portalSettingsInterface), dbus.WithMatchMember("SettingChanged")},
	}
	for _, match := range matches {
		if err := conn.AddMatchSignal(match...); err != nil {
			conn.Close()
			return nil, platform.WrapError(platform.ErrPlatformSpecific,
				"failed to subscribe to desktop signals", err)
		}
	}

	b := &Bridge{
		loop:    loop,
		conn:    conn,
		signals: make(chan *dbus.Signal, 16),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	conn.Signal(b.signals)
	go b.run()
	return b, nil
}

// Close stops forwarding and drops the bus connection. It is safe to call
// more than once.
func (b *Bridge) Close() error {
	var err error
	b.closeOnce.Do(func() {
		close(b.quit)
		b.conn.RemoveSignal(b.signals)
		err = b.conn.Close()
		<-b.done
	})
	return err
}

func (b *Bridge) run() {
	defer close(b.done)
	for {
		select {
		case sig := <-b.signals:
			if sig == nil {
				return
			}
			if eventType, data, ok := translate(sig); ok {
				b.loop.PostUserEvent(eventType, data)
			}
		case <-b.quit:
			return
		}
	}
}

// translate maps a bus signal to a user event. Signals the bridge does not
// understand translate to nothing.
func translate(sig *dbus.Signal) (string, rx.UserData, bool) {
	switch sig.Name {
	case screenSaverInterface + ".ActiveChanged",
		gnomeScreenSaverInterface + ".ActiveChanged":
		if len(sig.Body) != 1 {
			return "", nil, false
		}
		active, ok := sig.Body[0].(bool)
		if !ok {
			return "", nil, false
		}
		return EventScreenSaver, rx.UserBool(active), true
	case portalSettingsInterface + ".SettingChanged":
		return translateSetting(sig.Body)
	}
	return "", nil, false
}

// translateSetting decodes the portal SettingChanged triple. Only the
// appearance color scheme is forwarded.
func translateSetting(body []any) (string, rx.UserData, bool) {
	if len(body) != 3 {
		return "", nil, false
	}
	namespace, ok := body[0].(string)
	if !ok || namespace != appearanceNamespace {
		return "", nil, false
	}
	key, ok := body[1].(string)
	if !ok || key != colorSchemeKey {
		return "", nil, false
	}
	value, ok := body[2].(dbus.Variant)
	if !ok {
		return "", nil, false
	}
	scheme, ok := value.Value().(uint32)
	if !ok {
		return "", nil, false
	}
	return EventThemeChanged, rx.UserString(themeName(scheme)), true
}

// themeName decodes the portal color-scheme enum. Unknown values mean no
// preference.
func themeName(scheme uint32) string {
	switch scheme {
	case 1:
		return ThemeDark
	case 2:
		return ThemeLight
	}
	return ThemeDefault
}
