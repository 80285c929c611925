// Package form implements the signup form container: the field-value set, the
// per-field error set, validation and the Idle → Submitting → Submitted
// lifecycle. Views never mutate this state directly; they forward field
// changes and submit requests and re-render from published snapshots.
package form
