package components

import "time"

const (
	DefaultSubmitText  = "Claim your free trial"
	DefaultLoadingText = "Processing..."
)

// SubmitRequest is emitted when an enabled submit button is activated.
type SubmitRequest struct {
	Timestamp  time.Time
	ButtonText string
}

// SubmitButton is a stateless trigger. Disabled and Loading are supplied by
// the owner; while either is set activation is suppressed.
type SubmitButton struct {
	Text        string
	LoadingText string
	Disabled    bool
	Loading     bool
	OnSubmit    func(SubmitRequest)
	Now         func() time.Time
}

// NewSubmitButton returns a button with the default copy.
func NewSubmitButton() SubmitButton {
	return SubmitButton{
		Text:        DefaultSubmitText,
		LoadingText: DefaultLoadingText,
	}
}

// Label is the text currently shown on the button.
func (b SubmitButton) Label() string {
	if b.Loading {
		if b.LoadingText != "" {
			return b.LoadingText
		}
		return DefaultLoadingText
	}
	if b.Text != "" {
		return b.Text
	}
	return DefaultSubmitText
}

// Inactive reports whether activation is suppressed.
func (b SubmitButton) Inactive() bool {
	return b.Disabled || b.Loading
}

// Activate emits a SubmitRequest unless the button is inactive. It reports
// whether a request was emitted.
func (b SubmitButton) Activate() bool {
	if b.Inactive() {
		return false
	}
	if b.OnSubmit == nil {
		return false
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	b.OnSubmit(SubmitRequest{
		Timestamp:  now().UTC(),
		ButtonText: b.Label(),
	})
	return true
}

type buttonVisual struct {
	label    string
	inactive bool
	loading  bool
}

func (b SubmitButton) visual() buttonVisual {
	return buttonVisual{label: b.Label(), inactive: b.Inactive(), loading: b.Loading}
}

// SetFlags applies new disabled/loading flags and reports whether the button
// must be re-rendered. Flipping disabled while already loading changes nothing
// visible.
func (b *SubmitButton) SetFlags(disabled, loading bool) bool {
	before := b.visual()
	b.Disabled = disabled
	b.Loading = loading
	return b.visual() != before
}
