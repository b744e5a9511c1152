package widget

// State is the five-level urgency classification attached to a widget,
// ascending from Good to Critical. Exactly one applies at a time.
type State int

const (
	StateGood State = iota
	StateIdle
	StateInfo
	StateWarning
	StateCritical
)

// String returns the lowercase name used in logs and the bar protocol.
func (s State) String() string {
	switch s {
	case StateGood:
		return "good"
	case StateIdle:
		return "idle"
	case StateInfo:
		return "info"
	case StateWarning:
		return "warning"
	case StateCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Thresholds holds the four ascending upper bounds separating the five
// states. The classifier applies them first-match-wins and does not
// validate ordering; a misconfigured ladder is the configuration's
// problem, not the classifier's.
type Thresholds struct {
	Good    float64
	Idle    float64
	Info    float64
	Warning float64
}

// Classify maps a reading to a State. A value exactly equal to a bound
// maps to the lower (less urgent) state.
func Classify(v float64, th Thresholds) State {
	switch {
	case v <= th.Good:
		return StateGood
	case v <= th.Idle:
		return StateIdle
	case v <= th.Info:
		return StateInfo
	case v <= th.Warning:
		return StateWarning
	default:
		return StateCritical
	}
}
