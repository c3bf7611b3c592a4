package engine

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// DefaultTick is four state updates per second
const DefaultTick = 250 * time.Millisecond

// State tracks the loop lifecycle
type State uint8

const (
	Stopped State = iota
	Running
)

// Loop drives a draw/wait/update cycle: render the current state,
// wait for an input event or the tick deadline, advance state once
// per elapsed interval. All callbacks run on the goroutine calling
// Run, so state they touch needs no locking.
type Loop struct {
	// Tick is the state advance interval. Zero or negative selects
	// DefaultTick.
	Tick time.Duration

	// Events supplies device events, normally terminal.Screen.Events.
	// A closed channel stops the loop cleanly.
	Events <-chan tcell.Event

	// Draw renders one frame. A non-nil error is fatal and propagates
	// out of Run.
	Draw func() error

	// OnTick advances application state, called once per elapsed
	// interval
	OnTick func()

	// OnKey, when set, sees every key that is not a quit key.
	// Returning false stops the loop.
	OnKey func(ev *tcell.EventKey) bool

	// OnResize, when set, observes terminal size changes
	OnResize func(w, h int)

	Log *zap.Logger

	state State
}

// State reports the lifecycle state as seen by the Run goroutine
func (l *Loop) State() State {
	return l.state
}

// Run blocks until a quit key, a closed event channel, or an error.
// Quitting returns nil; device errors propagate. The inter-frame wait
// is one reusable timer armed with the time remaining to the tick
// deadline, floored at zero, so a late frame ticks immediately and an
// event arriving mid-wait is handled before the next tick.
func (l *Loop) Run() error {
	tick := l.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	l.state = Running
	defer func() { l.state = Stopped }()
	log.Info("loop started", zap.Duration("tick", tick))

	// Reset and Stop discard a pending fire, so the channel is never
	// drained by hand
	timer := time.NewTimer(tick)
	defer timer.Stop()

	lastTick := time.Now()
	for {
		if err := l.Draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		timeout := tick - time.Since(lastTick)
		if timeout < 0 {
			timeout = 0
		}
		timer.Reset(timeout)

		select {
		case ev, ok := <-l.Events:
			timer.Stop()
			if !ok {
				log.Info("event channel closed")
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					log.Info("quit requested")
					return nil
				}
				if l.OnKey != nil && !l.OnKey(ev) {
					log.Info("stopped by key handler")
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				log.Debug("terminal resized", zap.Int("width", w), zap.Int("height", h))
				if l.OnResize != nil {
					l.OnResize(w, h)
				}
			case *tcell.EventError:
				return fmt.Errorf("terminal event: %w", ev)
			}
		case <-timer.C:
		}

		if time.Since(lastTick) >= tick {
			if l.OnTick != nil {
				l.OnTick()
			}
			lastTick = time.Now()
		}
	}
}

// isQuitKey recognizes q, Escape and Ctrl+C
func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
