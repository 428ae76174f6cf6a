// Package rx is a cross-platform desktop GUI framework. It normalizes
// native window-system events into one canonical event model, routes them
// through an application main loop to windows and widgets, and paces
// frames to a configurable rate.
//
// A minimal program creates an Application, builds a Window, and runs:
//
//	app, err := rx.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	window, err := rx.NewWindowBuilder().Title("Hello").Build(app)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := window.Show(); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Native integration lives in the platform subpackages; everything above
// the platform boundary is portable.
package rx

// Version is the framework version string.
const Version = "1.0.0"
