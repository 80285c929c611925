package form

// State is the submission lifecycle of a form instance.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Editable reports whether field inputs accept changes in this state.
func (s State) Editable() bool {
	return s == StateIdle
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateSubmitted
}
