// Package window provides a chained window-configuration builder.
//
// A Builder accumulates typed data and event callbacks in a persistent
// component chain; Create resolves the chain against a declarative
// field/event spec (defaults, conflicts, requirements), applies the
// configuration to a Backend collaborator, and hands back a Window whose
// event loop dispatches callbacks one at a time.
//
//	w, err := window.New().
//		Title("hello").
//		OnInit(func(w *window.Window) { fmt.Println("up") }).
//		OnClose(func(w *window.Window) { w.Close() }).
//		Create(&window.Headless{})
//	if err != nil { ... }
//	err = w.Run()
//
// The windowing system itself is an external collaborator behind the
// Backend and Frame interfaces; Headless is the built-in stand-in.
package window
