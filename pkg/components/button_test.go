package components

import (
	"testing"
	"time"
)

func TestSubmitButton_ActivateEmitsRequest(t *testing.T) {
	at := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	var got []SubmitRequest
	button := NewSubmitButton()
	button.OnSubmit = func(req SubmitRequest) { got = append(got, req) }
	button.Now = func() time.Time { return at }

	if !button.Activate() {
		t.Fatalf("expected activation to emit")
	}
	if len(got) != 1 {
		t.Fatalf("expected one request, got %d", len(got))
	}
	if !got[0].Timestamp.Equal(at) || got[0].ButtonText != DefaultSubmitText {
		t.Fatalf("unexpected request: %+v", got[0])
	}
}

func TestSubmitButton_RequestCarriesShownText(t *testing.T) {
	var got []string
	button := SubmitButton{OnSubmit: func(req SubmitRequest) { got = append(got, req.ButtonText) }}

	button.Activate()
	button.Text = "Join now"
	button.Activate()

	if len(got) != 2 || got[0] != DefaultSubmitText || got[1] != "Join now" {
		t.Fatalf("unexpected button texts %q", got)
	}
}

func TestSubmitButton_SuppressedWhenDisabledOrLoading(t *testing.T) {
	cases := []struct {
		name     string
		disabled bool
		loading  bool
	}{
		{"disabled", true, false},
		{"loading", false, true},
		{"both", true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			button := NewSubmitButton()
			button.Disabled = tc.disabled
			button.Loading = tc.loading
			button.OnSubmit = func(SubmitRequest) { calls++ }

			if button.Activate() {
				t.Fatalf("expected activation suppressed")
			}
			if calls != 0 {
				t.Fatalf("expected no request, got %d", calls)
			}
		})
	}
}

func TestSubmitButton_LabelSwapsWhileLoading(t *testing.T) {
	button := NewSubmitButton()
	if got := button.Label(); got != DefaultSubmitText {
		t.Fatalf("idle label: got %q", got)
	}
	button.Loading = true
	if got := button.Label(); got != DefaultLoadingText {
		t.Fatalf("loading label: got %q", got)
	}
}

func TestSubmitButton_SetFlagsSkipsInvisibleChanges(t *testing.T) {
	button := NewSubmitButton()

	if button.SetFlags(false, false) {
		t.Fatalf("no-op flags must not request a re-render")
	}
	if !button.SetFlags(true, true) {
		t.Fatalf("entering loading must request a re-render")
	}
	if button.SetFlags(false, true) {
		t.Fatalf("disabled flip while loading must not request a re-render")
	}
	if !button.SetFlags(false, false) {
		t.Fatalf("leaving loading must request a re-render")
	}
	if !button.SetFlags(true, false) {
		t.Fatalf("disabling an idle button must request a re-render")
	}
}
