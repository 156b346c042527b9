package rokoko

// Package rokoko provides:
//
// - A persistent, type-keyed component chain (Empty/With/Wrap) with
//   capability resolution via Get/Has
// - A stable error model via Issues (field, code, message)
// - Fixed-size numeric vectors with GLSL-like ergonomics under vec/
// - A window-configuration builder under window/ driven by a declarative
//   field/event spec
//
// Design policy:
// - Keep only the chain and the error model in the root package; every
//   subpackage builds on them.
// - Place the vector type under vec/, the builder under window/, and the
//   message catalog under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	w, err := window.New().
//		Title("hello").
//		OnClose(func(w *window.Window) { w.Close() }).
//		Create(&window.Headless{})
//	if err != nil { ... }
//	err = w.Run()
