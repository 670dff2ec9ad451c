// Package debounce turns a noisy per-frame open/closed reading into stable
// shutter transitions.
package debounce

import "shutter-monitor/internal/shutter"

// DefaultThreshold is the number of consecutive contrary readings needed to
// flip the stable state.
const DefaultThreshold = 20

type Reading int8

const (
	NoReading Reading = iota
	ReadingClosed
	ReadingOpen
)

func (r Reading) String() string {
	switch r {
	case ReadingOpen:
		return "open"
	case ReadingClosed:
		return "closed"
	default:
		return "none"
	}
}

type State int8

const (
	Unknown State = iota
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Machine is not safe for concurrent use. It is owned by a single session.
type Machine struct {
	threshold int
	state     State
	pending   int
}

func New(threshold int) *Machine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Machine{threshold: threshold}
}

func (m *Machine) State() State { return m.state }

// Pending is the number of consecutive readings contradicting the stable state.
func (m *Machine) Pending() int { return m.pending }

func (m *Machine) Threshold() int { return m.threshold }

// Observe feeds one frame's reading and reports the transition it causes, if
// any. NoReading leaves both the stable state and the pending counter as they
// were.
func (m *Machine) Observe(r Reading) (shutter.Kind, bool) {
	if r == NoReading {
		return "", false
	}
	observed := stateOf(r)

	if m.state == Unknown {
		m.state = observed
		m.pending = 0
		return kindOf(observed), true
	}

	if observed == m.state {
		m.pending = 0
		return "", false
	}

	m.pending++
	if m.pending < m.threshold {
		return "", false
	}
	m.state = observed
	m.pending = 0
	return kindOf(observed), true
}

func stateOf(r Reading) State {
	if r == ReadingOpen {
		return Open
	}
	return Closed
}

func kindOf(s State) shutter.Kind {
	if s == Open {
		return shutter.Open
	}
	return shutter.Close
}
