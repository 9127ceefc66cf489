// Package mode drives the screen flow of the game: the start screen, play,
// and the end screen that leads back into a fresh run.
package mode

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-arcade/internal/sim"
)

// Mode is one of the game's screens.
type Mode int

const (
	ModeStart Mode = iota
	ModePlay
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlay:
		return "play"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// Machine is the START -> PLAY -> END -> PLAY state machine.
//
// Entering PLAY always calls the reset hook first, so every run starts
// from freshly built simulation state.
type Machine struct {
	mode        Mode
	reset       func()
	onChange    []func(from, to Mode)
	transitions int
	logger      *log.Logger
}

// New creates a machine on the start screen. reset is called each time a
// run begins; it may be nil.
func New(reset func(), opts ...Option) *Machine {
	m := &Machine{
		mode:   ModeStart,
		reset:  reset,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mode returns the current screen.
func (m *Machine) Mode() Mode { return m.mode }

// Transitions returns how many transitions have happened.
func (m *Machine) Transitions() int { return m.transitions }

// OnTransition registers a hook called after every transition.
func (m *Machine) OnTransition(fn func(from, to Mode)) {
	m.onChange = append(m.onChange, fn)
}

// Advance handles the mode-advance key. From START or END it begins a new
// run; during PLAY it does nothing. Reports whether the mode changed.
func (m *Machine) Advance() bool {
	switch m.mode {
	case ModeStart, ModeEnd:
		if m.reset != nil {
			m.reset()
		}
		m.transition(ModePlay)
		return true
	default:
		return false
	}
}

// Observe feeds a tick result to the machine. A game-over outcome during
// PLAY moves to END. Reports whether the mode changed.
func (m *Machine) Observe(r sim.TickResult) bool {
	if m.mode != ModePlay || r.Outcome != sim.OutcomeGameOver {
		return false
	}
	m.transition(ModeEnd)
	return true
}

// Restart returns the machine to the start screen without running a reset.
func (m *Machine) Restart() {
	m.mode = ModeStart
}

func (m *Machine) transition(to Mode) {
	from := m.mode
	m.mode = to
	m.transitions++
	m.logger.Debug("mode transition", "from", from, "to", to)
	for _, fn := range m.onChange {
		fn(from, to)
	}
}
