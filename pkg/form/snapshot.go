package form

import "maps"

// Snapshot is an immutable view of a form at one point in time. Views render
// exclusively from snapshots.
type Snapshot struct {
	Values Values
	Errors ErrorSet
	State  State
}

// Value returns the bound value of name.
func (s Snapshot) Value(name Field) string {
	return s.Values.Get(name)
}

// Error returns the inline message for name, or "".
func (s Snapshot) Error(name Field) string {
	return s.Errors.Message(name)
}

// SubmitDisabled reports whether the submit control must ignore activation.
func (s Snapshot) SubmitDisabled() bool {
	return s.State == StateSubmitting
}

// SubmitLoading reports whether the submit control shows its loading label.
func (s Snapshot) SubmitLoading() bool {
	return s.State == StateSubmitting
}

// FieldsInert reports whether the inputs are rendered but not interactive.
func (s Snapshot) FieldsInert() bool {
	return s.State == StateSubmitting
}

// ShowFields reports whether the inputs and submit control are rendered at
// all. Once submitted only the success message remains.
func (s Snapshot) ShowFields() bool {
	return s.State != StateSubmitted
}

// Equal reports whether both snapshots would render identically.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.State != other.State {
		return false
	}
	if !maps.Equal(s.Values, other.Values) {
		return false
	}
	return maps.Equal(s.Errors.Map(), other.Errors.Map())
}
