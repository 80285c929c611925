package form

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrUnknownField is returned when a change targets a field outside the
	// signup field set.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrInert is returned when a field change arrives while the fields are not
	// editable (submitting or submitted).
	ErrInert = errors.New("form: fields are inert")
)

// ErrorSet maps field names to a validation message. A missing entry means the
// field has no error.
type ErrorSet map[Field]string

// Has reports whether name currently carries an error.
func (e ErrorSet) Has(name Field) bool {
	return e[name] != ""
}

// Message returns the error recorded for name, or "".
func (e ErrorSet) Message(name Field) string {
	return e[name]
}

// Empty reports whether the set holds no errors.
func (e ErrorSet) Empty() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Without returns a copy of e with name removed.
func (e ErrorSet) Without(name Field) ErrorSet {
	out := make(ErrorSet, len(e))
	for key, msg := range e {
		if key == name || msg == "" {
			continue
		}
		out[key] = msg
	}
	return out
}

// Clone returns a shallow copy.
func (e ErrorSet) Clone() ErrorSet {
	if e == nil {
		return ErrorSet{}
	}
	return maps.Clone(e)
}

// Map exposes the errors keyed by plain strings.
func (e ErrorSet) Map() map[string]string {
	out := make(map[string]string, len(e))
	for name, msg := range e {
		if msg == "" {
			continue
		}
		out[string(name)] = msg
	}
	return out
}

// ValidationError reports every field that failed a validation pass.
type ValidationError struct {
	Errors ErrorSet
}

func (e *ValidationError) Error() string {
	if e == nil || e.Errors.Empty() {
		return "form: validation failed"
	}
	names := slices.Sorted(maps.Keys(e.Errors))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if msg := e.Errors[name]; msg != "" {
			parts = append(parts, string(name)+": "+msg)
		}
	}
	return "form: validation failed: " + strings.Join(parts, "; ")
}
