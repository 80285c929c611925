package components

import (
	"time"

	"github.com/goliatone/go-signup/pkg/form"
)

const DefaultSuccessHeading = "Registration successful"

// Page is the static shell of the signup screen. It holds copy only; the
// form state comes from a snapshot at compose time.
type Page struct {
	Info           InfoPanel
	Promo          PromoBanner
	Terms          Terms
	Fields         []FieldSpec
	SubmitText     string
	LoadingText    string
	SuccessHeading string
}

// DefaultPage returns the shell with its default copy.
func DefaultPage() Page {
	return Page{
		Info:           NewInfoPanel(),
		Promo:          NewPromoBanner(),
		Terms:          NewTerms(),
		Fields:         DefaultFieldSpecs(),
		SubmitText:     DefaultSubmitText,
		LoadingText:    DefaultLoadingText,
		SuccessHeading: DefaultSuccessHeading,
	}
}

// Handlers receives user intent from composed components.
type Handlers struct {
	OnFieldChange func(FieldChange)
	OnSubmit      func(SubmitRequest)
	Now           func() time.Time
}

// Success is the terminal message shown after submission.
type Success struct {
	Heading   string
	FirstName string
}

// Greeting is the welcome line of the success message.
func (s Success) Greeting() string {
	return "Welcome, " + s.FirstName
}

// FormView is everything a renderer needs to draw the form area for one
// snapshot.
type FormView struct {
	State     form.State
	Fields    []FieldInput
	Button    SubmitButton
	Inert     bool
	Submitted bool
	Success   Success
}

// Compose binds the page copy to snap. Once submitted only Success is set.
func (p Page) Compose(snap form.Snapshot, handlers Handlers) FormView {
	view := FormView{
		State:     snap.State,
		Inert:     snap.FieldsInert(),
		Submitted: !snap.ShowFields(),
	}
	if view.Submitted {
		view.Success = Success{
			Heading:   firstNonEmpty(p.SuccessHeading, DefaultSuccessHeading),
			FirstName: snap.Value(form.FieldFirstName),
		}
		return view
	}

	specs := p.Fields
	if len(specs) == 0 {
		specs = DefaultFieldSpecs()
	}
	view.Fields = make([]FieldInput, 0, len(specs))
	for _, spec := range specs {
		view.Fields = append(view.Fields, FieldInput{
			FieldSpec: spec,
			Value:     snap.Value(spec.Name),
			Error:     snap.Error(spec.Name),
			Disabled:  snap.FieldsInert(),
			OnChange:  handlers.OnFieldChange,
		})
	}

	view.Button = SubmitButton{
		Text:        firstNonEmpty(p.SubmitText, DefaultSubmitText),
		LoadingText: firstNonEmpty(p.LoadingText, DefaultLoadingText),
		Disabled:    snap.SubmitDisabled(),
		Loading:     snap.SubmitLoading(),
		OnSubmit:    handlers.OnSubmit,
		Now:         handlers.Now,
	}
	return view
}

// Bind returns handlers that forward directly to f. Submission runs
// synchronously, blocking for the form's delay; field-change errors (inert or
// unknown fields) are passed to onErr when set.
func Bind(f *form.Form, onErr func(error)) Handlers {
	report := func(err error) {
		if err != nil && onErr != nil {
			onErr(err)
		}
	}
	return Handlers{
		OnFieldChange: func(change FieldChange) {
			report(f.OnFieldChange(change.Name, change.Value))
		},
		OnSubmit: func(SubmitRequest) {
			report(f.OnSubmitRequested())
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
