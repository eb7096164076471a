// Package trace records state transitions of the power availability chain.
package trace

// Transition is one state change of the power system.
type Transition struct {
	Time float64 // simulated hours since start
	From string
	To   string
}

// PowerTrace collects transitions during a power availability run.
// A nil *PowerTrace disables recording.
type PowerTrace struct {
	Horizon     float64
	Transitions []Transition
}

// NewPowerTrace creates a PowerTrace ready for recording.
func NewPowerTrace(horizon float64) *PowerTrace {
	return &PowerTrace{
		Horizon:     horizon,
		Transitions: make([]Transition, 0),
	}
}

// Record appends a transition. Safe on a nil receiver.
func (pt *PowerTrace) Record(t Transition) {
	if pt == nil {
		return
	}
	pt.Transitions = append(pt.Transitions, t)
}
