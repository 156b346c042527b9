package window

import (
	"time"

	"github.com/zoobzio/clockz"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/vec"
)

// Data tags stored in the builder chain, one type per field.

// Title is the window title field.
type Title struct{ Value string }

// Size is the inner-size field, a 2-component vector (width, height).
// Physical pixels unless SizeIsLogical is also present.
type Size struct{ Value vec.Vec[float64] }

// Maximized marks the window as maximized. Conflicts with Size.
type Maximized struct{}

// SizeIsLogical marks the Size field as logical units. Requires Size.
type SizeIsLogical struct{}

// TickEvery is the tick interval field. Requires an OnTick callback.
type TickEvery struct{ Every time.Duration }

// Event-callback containers; each event has its own type, so distinct
// callbacks never shadow each other in the chain.
type (
	onInitFn  struct{ fn func(*Window) }
	onCloseFn struct{ fn func(*Window) }
	onExitFn  struct{ fn func(*Window) }
	onTickFn  struct{ fn func(*Window, time.Time) }
)

// probes resolve a declared name to its presence check over the chain. Every
// name a Spec may use must appear here; LoadSpec rejects names it cannot
// probe.
var probes = map[string]func(rokoko.Component) bool{
	"title":           rokoko.Has[Title],
	"size":            rokoko.Has[Size],
	"maximized":       rokoko.Has[Maximized],
	"size_is_logical": rokoko.Has[SizeIsLogical],
	"tick_every":      rokoko.Has[TickEvery],
	"on_init":         rokoko.Has[onInitFn],
	"on_close":        rokoko.Has[onCloseFn],
	"on_exit":         rokoko.Has[onExitFn],
	"on_tick":         rokoko.Has[onTickFn],
}

// Builder accumulates window configuration in a persistent component chain.
// Every method returns a new Builder wrapping a new chain head; the receiver
// stays valid. Create is the terminal, one-shot aggregation step.
type Builder struct {
	chain rokoko.Component
	spec  *Spec
	clock clockz.Clock
}

// New returns an empty Builder over the built-in spec.
func New() Builder {
	return Builder{chain: rokoko.Empty{}, spec: DefaultSpec(), clock: clockz.RealClock}
}

// NewWithSpec returns an empty Builder interpreting the given spec.
func NewWithSpec(s *Spec) Builder {
	b := New()
	b.spec = s
	return b
}

func with[D any](b Builder, data D) Builder {
	b.chain = rokoko.Wrap(data, b.chain)
	return b
}

// Title sets the window title. Default is "rokoko window".
func (b Builder) Title(title string) Builder { return with(b, Title{Value: title}) }

// Size sets the inner size as a (width, height) vector, in physical pixels
// unless SizeIsLogical is set. Not compatible with Maximized.
func (b Builder) Size(size vec.Vec[float64]) Builder { return with(b, Size{Value: size}) }

// Maximized requests the maximum possible size. Not compatible with Size.
func (b Builder) Maximized() Builder { return with(b, Maximized{}) }

// SizeIsLogical marks the size as logical units instead of physical pixels.
// Must be used together with Size.
func (b Builder) SizeIsLogical() Builder { return with(b, SizeIsLogical{}) }

// TickEvery delivers periodic tick events to the OnTick callback.
func (b Builder) TickEvery(every time.Duration) Builder {
	return with(b, TickEvery{Every: every})
}

// OnInit sets a callback invoked exactly once, right after the window is
// constructed and before any event dispatch.
func (b Builder) OnInit(fn func(*Window)) Builder { return with(b, onInitFn{fn: fn}) }

// OnClose sets a callback invoked when the user attempts to close the
// window, not when it is actually closed. Without it a close attempt simply
// closes the window. Call Window.Close inside the callback to really close.
func (b Builder) OnClose(fn func(*Window)) Builder { return with(b, onCloseFn{fn: fn}) }

// OnExit sets a callback invoked exactly once when Window.Close terminates
// the loop. No other callback runs after it.
func (b Builder) OnExit(fn func(*Window)) Builder { return with(b, onExitFn{fn: fn}) }

// OnTick sets the callback receiving tick events scheduled by TickEvery.
func (b Builder) OnTick(fn func(*Window, time.Time)) Builder { return with(b, onTickFn{fn: fn}) }

// WithClock replaces the clock driving tick scheduling. Tests use a fake
// clock here.
func (b Builder) WithClock(c clockz.Clock) Builder {
	b.clock = c
	return b
}
