package window

// Window is a handle to a constructed window. It holds no configuration of
// its own; callbacks receive it to reach the frame and to close the window.
type Window struct {
	frame Frame
	loop  *loop
}

// Frame returns the opaque handle produced by the Backend.
func (w *Window) Frame() Frame { return w.frame }

// Close terminates the window. Only the OnExit callback runs after this;
// the loop then halts permanently. Safe to call from inside a callback.
func (w *Window) Close() { w.loop.requestExit() }

// Run dispatches events until the window is closed, invoking at most one
// callback at a time. It returns ErrLoopHalted if the loop already ran.
func (w *Window) Run() error { return w.loop.run(w) }
