package window

import (
	"errors"
	"time"

	"github.com/zoobzio/clockz"
)

// ErrLoopHalted indicates Run was called on a window whose loop already ran
// to termination. A loop halts permanently; it is never restarted.
var ErrLoopHalted = errors.New("window: event loop already halted")

// loop dispatches events to the resolved callbacks, strictly one callback
// at a time on the Run goroutine.
type loop struct {
	clock clockz.Clock

	onInit  func(*Window)
	onClose func(*Window)
	onExit  func(*Window)
	onTick  func(*Window, time.Time)

	tickEvery time.Duration

	// exit carries the distinguished termination event. Buffered so that
	// Window.Close never blocks, including from inside a callback.
	exit   chan struct{}
	halted bool
}

func newLoop(clock clockz.Clock) *loop {
	return &loop{clock: clock, exit: make(chan struct{}, 1)}
}

func (l *loop) requestExit() {
	select {
	case l.exit <- struct{}{}:
	default:
	}
}

func (l *loop) run(w *Window) error {
	if l.halted {
		return ErrLoopHalted
	}

	var tickC <-chan time.Time
	if l.onTick != nil && l.tickEvery > 0 {
		ticker := l.clock.NewTicker(l.tickEvery)
		defer ticker.Stop()
		tickC = ticker.C()
	}

	for {
		select {
		case <-l.exit:
			if l.onExit != nil {
				l.onExit(w)
			}
			l.halted = true
			return nil
		case ev := <-w.frame.Events():
			switch ev {
			case EventCloseRequested:
				if l.onClose != nil {
					l.onClose(w)
				}
			}
		case now := <-tickC:
			l.onTick(w, now)
		}
	}
}
