package components

import (
	"strings"

	"github.com/goliatone/go-signup/pkg/form"
)

// InputType is the presentation hint for a field input.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputPassword InputType = "password"
)

// FieldChange is emitted when the user edits a field.
type FieldChange struct {
	Name  form.Field
	Value string
}

// FieldSpec describes how a field is presented.
type FieldSpec struct {
	Name        form.Field
	Type        InputType
	Placeholder string
}

// DefaultFieldSpecs lists the signup inputs in display order.
func DefaultFieldSpecs() []FieldSpec {
	return []FieldSpec{
		{Name: form.FieldFirstName, Type: InputText, Placeholder: "First Name"},
		{Name: form.FieldLastName, Type: InputText, Placeholder: "Last Name"},
		{Name: form.FieldEmail, Type: InputEmail, Placeholder: "Email Address"},
		{Name: form.FieldPassword, Type: InputPassword, Placeholder: "Password"},
	}
}

// FieldInput renders a single bound value and its optional error. It never
// validates and never stores edits; Edit only notifies OnChange.
type FieldInput struct {
	FieldSpec
	Value    string
	Error    string
	Disabled bool
	OnChange func(FieldChange)
}

// Edit reports a user edit to the change handler.
func (f FieldInput) Edit(value string) {
	if f.OnChange == nil || f.Disabled {
		return
	}
	f.OnChange(FieldChange{Name: f.Name, Value: value})
}

// HasError reports whether an error message should be displayed.
func (f FieldInput) HasError() bool {
	return strings.TrimSpace(f.Error) != ""
}

// ID is the DOM-friendly identifier of the input.
func (f FieldInput) ID() string {
	return "signup-" + string(f.Name)
}

// ErrorID identifies the inline error element for aria-describedby.
func (f FieldInput) ErrorID() string {
	return f.ID() + "-error"
}

// Secret reports whether the value must not be echoed back by a view.
func (f FieldInput) Secret() bool {
	return f.Type == InputPassword
}
