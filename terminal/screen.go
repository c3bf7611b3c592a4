package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/termchart/render"
)

// Screen owns the terminal device lifecycle. Raw mode, the alternate
// screen and key decoding all live inside tcell; everything above it
// is driven by render.Buffer diffs, so a frame that changes nothing
// touches nothing.
type Screen struct {
	tc        tcell.Screen
	prev      *render.Buffer
	events    chan tcell.Event
	log       *zap.Logger
	running   bool
	finalized bool
}

// New creates a Screen over the default terminal device
func New(logger *zap.Logger) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal create: %w", err)
	}
	return newScreen(tc, logger), nil
}

// NewSimulation creates a Screen over an in-memory device for tests.
// The returned simulation handle injects input and reads cells back.
func NewSimulation(logger *zap.Logger) (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return newScreen(sim, logger), sim
}

func newScreen(tc tcell.Screen, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screen{tc: tc, log: logger}
}

// Init enters the alternate screen and starts the event pump. Mouse
// reporting is enabled so terminals don't scroll the alternate screen
// on wheel input; the events themselves are discarded upstream.
func (s *Screen) Init() error {
	if s.running {
		return nil
	}
	if err := s.tc.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.tc.EnableMouse()
	s.tc.Clear()

	w, h := s.tc.Size()
	s.prev = render.NewBuffer(w, h)

	s.events = make(chan tcell.Event, 16)
	go s.pump()

	s.running = true
	s.log.Info("terminal initialized", zap.Int("width", w), zap.Int("height", h))
	return nil
}

// pump forwards device events until the screen is finalized. PollEvent
// returns nil after Fini, which closes the channel and unblocks any
// consumer still waiting.
func (s *Screen) pump() {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Events returns the device event channel. Closed after Fini.
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

// Size returns the current device dimensions
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// Fini restores the terminal. Safe to call more than once, including
// from a panic handler after a draw blew up mid-frame.
func (s *Screen) Fini() {
	if !s.running || s.finalized {
		return
	}
	s.finalized = true
	s.tc.Fini()
	s.log.Info("terminal restored")
}

// Flush pushes the buffer to the device, writing only cells that
// changed since the last flush. A frame whose size disagrees with the
// device is dropped; a resize event is already queued and the next
// frame redraws at the right size.
func (s *Screen) Flush(buf *render.Buffer) {
	if !s.running || s.finalized {
		return
	}
	w, h := s.tc.Size()
	bw, bh := buf.Size()
	if bw != w || bh != h {
		return
	}
	pw, ph := s.prev.Size()
	if pw != w || ph != h {
		// First frame at a new size: device contents are unknown
		s.prev.Resize(w, h)
		s.tc.Clear()
	}

	for _, p := range buf.Diff(s.prev) {
		s.tc.SetContent(p.X, p.Y, p.Cell.Rune, nil, p.Cell.Style)
		s.prev.SetCell(p.X, p.Y, p.Cell.Rune, p.Cell.Style)
	}
	s.tc.Show()
}

// Sync invalidates the previous frame so the next flush repaints
// every cell. Used after something outside the buffer touched the
// terminal.
func (s *Screen) Sync() {
	if !s.running || s.finalized {
		return
	}
	s.prev.Resize(0, 0)
	s.tc.Sync()
}
