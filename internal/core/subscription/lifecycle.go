package subscription

// State is a position in a form's submission lifecycle:
//
//	Idle -> Validating -> Submitting -> (Success | Failed) -> Idle
//
// Validation failures go straight from Validating back to Idle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TransitionFunc observes every state change of a form.
type TransitionFunc func(from, to State)

type lifecycle struct {
	state        State
	onTransition TransitionFunc
}

func (l *lifecycle) moveTo(s State) {
	from := l.state
	l.state = s
	if l.onTransition != nil {
		l.onTransition(from, s)
	}
}

// State returns the current lifecycle state.
func (l *lifecycle) State() State { return l.state }

// Submitting reports whether a request is in flight. The submit affordance
// must be disabled while this is true.
func (l *lifecycle) Submitting() bool { return l.state == StateSubmitting }

// OnTransition registers fn to be called on every state change.
func (l *lifecycle) OnTransition(fn TransitionFunc) { l.onTransition = fn }
