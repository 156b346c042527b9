package window

// SizeClass distinguishes the two inner-size effect variants.
type SizeClass int

const (
	// Physical sizes are in device pixels (the default).
	Physical SizeClass = iota
	// Logical sizes are in scale-factor-independent units.
	Logical
)

func (c SizeClass) String() string {
	if c == Logical {
		return "logical"
	}
	return "physical"
}

// InnerSize is the resolved size effect applied to a Backend.
type InnerSize struct {
	Width  float64
	Height float64
	Class  SizeClass
}

// Event is an occurrence delivered by a Frame to the event loop.
type Event int

const (
	// EventCloseRequested reports that the user attempted to close the
	// window (close button, Alt+F4). It does not close the window by
	// itself.
	EventCloseRequested Event = iota
)

// Backend is the external window-construction collaborator. Create applies
// the resolved configuration through the Set* effects and then calls Build
// exactly once. Build failures are returned to the caller unchanged.
type Backend interface {
	SetTitle(title string)
	SetInnerSize(size InnerSize)
	SetMaximized(maximized bool)
	Build() (Frame, error)
}

// Frame is the opaque handle to a constructed window. User callbacks reach
// it read-only through Window.Frame.
type Frame interface {
	// Events is the stream of occurrences the event loop dispatches on.
	Events() <-chan Event
}

// Headless is an in-process Backend that records the effects applied to it.
// It backs the package's own tests and any use that needs the builder
// semantics without a windowing system.
type Headless struct {
	Title     string
	Inner     *InnerSize
	Maximized bool

	// BuildErr, when set, is returned by Build to simulate construction
	// failure.
	BuildErr error

	frame *HeadlessFrame
}

func (h *Headless) SetTitle(title string) { h.Title = title }

func (h *Headless) SetInnerSize(size InnerSize) {
	cp := size
	h.Inner = &cp
}

func (h *Headless) SetMaximized(maximized bool) { h.Maximized = maximized }

func (h *Headless) Build() (Frame, error) {
	if h.BuildErr != nil {
		return nil, h.BuildErr
	}
	h.frame = &HeadlessFrame{events: make(chan Event, 16)}
	return h.frame, nil
}

// Frame returns the frame produced by Build, or nil before Build.
func (h *Headless) Frame() *HeadlessFrame { return h.frame }

// HeadlessFrame is the Frame produced by Headless.
type HeadlessFrame struct {
	events chan Event
}

func (f *HeadlessFrame) Events() <-chan Event { return f.events }

// RequestClose injects a close attempt, as if the user pressed the close
// button.
func (f *HeadlessFrame) RequestClose() { f.events <- EventCloseRequested }
