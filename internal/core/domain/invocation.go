package domain

import "go.trai.ch/zerr"

// State is a step in the lifecycle of a single resolve-and-build invocation.
type State string

const (
	StateDeclared    State = "declared"
	StateResolved    State = "resolved"
	StatePlanned     State = "planned"
	StateConfiguring State = "configuring"
	StateConfigured  State = "configured"
	StateBuilding    State = "building"
	StateBuilt       State = "built"
	StateFailed      State = "failed"
)

// next holds the only forward transition out of each non-terminal state.
var next = map[State]State{
	StateDeclared:    StateResolved,
	StateResolved:    StatePlanned,
	StatePlanned:     StateConfiguring,
	StateConfiguring: StateConfigured,
	StateConfigured:  StateBuilding,
	StateBuilding:    StateBuilt,
}

// IsTerminal reports whether no further transition is possible from s.
func (s State) IsTerminal() bool {
	return s == StateBuilt || s == StateFailed
}

// Invocation tracks one run through the pipeline. Each state is entered at
// most once; Failed is reachable from any non-terminal state.
type Invocation struct {
	state       State
	failedPhase State
	err         error
	history     []State
	observers   []func(from, to State)
}

// NewInvocation returns an invocation in StateDeclared.
func NewInvocation() *Invocation {
	return &Invocation{state: StateDeclared, history: []State{StateDeclared}}
}

// OnTransition registers fn to be called after every transition.
func (inv *Invocation) OnTransition(fn func(from, to State)) {
	inv.observers = append(inv.observers, fn)
}

// Advance moves to the successor of the current state, which must be to.
func (inv *Invocation) Advance(to State) error {
	if want, ok := next[inv.state]; !ok || want != to {
		return withTransition(ErrIllegalTransition, inv.state, to)
	}
	inv.transition(to)
	return nil
}

// Fail moves the invocation to StateFailed, recording the phase it failed in and err.
func (inv *Invocation) Fail(err error) error {
	if inv.state.IsTerminal() {
		return withTransition(ErrIllegalTransition, inv.state, StateFailed)
	}
	inv.failedPhase = inv.state
	inv.err = err
	inv.transition(StateFailed)
	return nil
}

func withTransition(err error, from, to State) error {
	wrapped := zerr.With(zerr.Wrap(err, string(from)+" -> "+string(to)), "from", string(from))
	return zerr.With(wrapped, "to", string(to))
}

func (inv *Invocation) transition(to State) {
	from := inv.state
	inv.state = to
	inv.history = append(inv.history, to)
	for _, fn := range inv.observers {
		fn(from, to)
	}
}

// State returns the current state.
func (inv *Invocation) State() State { return inv.state }

// FailedPhase returns the state the invocation was in when it failed.
func (inv *Invocation) FailedPhase() State { return inv.failedPhase }

// Err returns the error that failed the invocation, nil otherwise.
func (inv *Invocation) Err() error { return inv.err }

// Kind classifies the failure, KindNone for a successful or in-flight invocation.
func (inv *Invocation) Kind() ErrorKind { return KindOf(inv.err) }

// History returns every state entered, in order.
func (inv *Invocation) History() []State {
	out := make([]State, len(inv.history))
	copy(out, inv.history)
	return out
}
