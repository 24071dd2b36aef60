package game

import (
	"fmt"
	"time"
)

// Match owns one match: its rules, its state and the input cell. It is not
// safe for concurrent use; everything runs on the tick goroutine.
type Match struct {
	rules *Rules
	state State
	input InputCell
}

func NewMatch(cfg Config, seed uint64) (*Match, error) {
	rules, err := NewRules(cfg, seed)
	if err != nil {
		return nil, err
	}
	return &Match{rules: rules, state: rules.Initial()}, nil
}

func (m *Match) Config() Config { return m.rules.Config() }

func (m *Match) Status() Status { return m.state.Status }

// State returns a copy of the current state.
func (m *Match) State() State { return m.state.clone() }

func (m *Match) Input() *InputCell { return &m.input }

func (m *Match) Start(now time.Time) error {
	if m.state.Status != StatusIdle {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, m.state.Status)
	}
	m.input.Reset()
	m.state = m.rules.Serve(m.state, now)
	return nil
}

func (m *Match) TogglePause(now time.Time) error {
	switch m.state.Status {
	case StatusRunning:
		m.state = m.rules.Pause(m.state, now)
	case StatusPaused:
		m.state = m.rules.Resume(m.state, now)
	default:
		return fmt.Errorf("%w: pause while %s", ErrInvalidTransition, m.state.Status)
	}
	return nil
}

// Abort ends a running or paused match without a winner.
func (m *Match) Abort(now time.Time) ([]Event, error) {
	if m.state.Status != StatusRunning && m.state.Status != StatusPaused {
		return nil, fmt.Errorf("%w: abort while %s", ErrInvalidTransition, m.state.Status)
	}
	var events []Event
	m.state, events = m.rules.finish(m.state, OutcomeAborted, now)
	m.input.Reset()
	return events, nil
}

// Tick runs at most one simulation step and returns the frame to draw.
func (m *Match) Tick(now time.Time) (Frame, []Event) {
	var events []Event
	m.state, events = m.rules.Step(m.state, m.input.Sample(), now)
	if m.state.Status == StatusEnded {
		m.input.Reset()
	}
	return m.rules.Frame(m.state, now), events
}

func (m *Match) Frame(now time.Time) Frame {
	return m.rules.Frame(m.state, now)
}
