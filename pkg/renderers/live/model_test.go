package live

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/testsupport"
)

func newTestModel(t *testing.T, options ...ModelOption) (*Model, *form.Form) {
	t.Helper()
	f := form.New(form.WithClock(testsupport.NewManualClock()))
	return NewModel(f, components.DefaultPage(), options...), f
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func fillAll(m *Model) {
	typeText(m, "Jane")
	press(m, tea.KeyTab)
	typeText(m, "Doe")
	press(m, tea.KeyTab)
	typeText(m, "jane@doe.com")
	press(m, tea.KeyTab)
	typeText(m, "secret1")
}

func TestModel_FocusesFirstInput(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Focused() != 0 || !m.inputs[0].Focused() {
		t.Fatalf("expected first input focused")
	}
	for i := 1; i < len(m.inputs); i++ {
		if m.inputs[i].Focused() {
			t.Fatalf("input %d unexpectedly focused", i)
		}
	}
}

func TestModel_TypingForwardsFieldChanges(t *testing.T) {
	m, f := newTestModel(t)
	fillAll(m)

	want := testsupport.ValidValues()
	if diff := cmp.Diff(want, f.Snapshot().Values); diff != "" {
		t.Fatalf("form values mismatch (-want +got):\n%s", diff)
	}

	view := m.View()
	if strings.Contains(view, "secret1") {
		t.Fatalf("password must be masked in view:\n%s", view)
	}
	if !strings.Contains(view, "•••••••") {
		t.Fatalf("expected masked password in view:\n%s", view)
	}
}

func TestModel_FocusWraps(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.KeyShiftTab)
	if m.Focused() != 3 {
		t.Fatalf("expected focus on last field, got %d", m.Focused())
	}
	press(m, tea.KeyTab)
	if m.Focused() != 0 {
		t.Fatalf("expected focus to wrap to first field, got %d", m.Focused())
	}
}

func TestModel_InvalidSubmitShowsErrors(t *testing.T) {
	m, f := newTestModel(t)
	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	typeText(m, "a@b")

	if cmd := press(m, tea.KeyEnter); cmd == nil {
		t.Fatalf("expected focus command after failed submit")
	}
	if f.State() != form.StateIdle {
		t.Fatalf("expected idle state, got %s", f.State())
	}
	var verr *form.ValidationError
	if !errors.As(m.Err(), &verr) {
		t.Fatalf("expected validation error, got %v", m.Err())
	}
	if m.Focused() != 0 {
		t.Fatalf("expected focus on first invalid field, got %d", m.Focused())
	}

	view := m.View()
	for _, msg := range []string{form.MsgFirstNameEmpty, form.MsgLastNameEmpty, form.MsgEmailInvalid, form.MsgPasswordEmpty} {
		if !strings.Contains(view, msg) {
			t.Fatalf("expected %q in view:\n%s", msg, view)
		}
	}

	typeText(m, "J")
	if f.Snapshot().Errors.Has(form.FieldFirstName) {
		t.Fatalf("editing first name should clear its error")
	}
	if !f.Snapshot().Errors.Has(form.FieldEmail) {
		t.Fatalf("other errors should remain")
	}
}

func TestModel_SubmitLifecycle(t *testing.T) {
	m, f := newTestModel(t)
	var completions []form.Completion
	f.OnCompleted(func(c form.Completion) { completions = append(completions, c) })
	fillAll(m)

	if cmd := press(m, tea.KeyEnter); cmd == nil {
		t.Fatalf("expected delay command after valid submit")
	}
	if f.State() != form.StateSubmitting {
		t.Fatalf("expected submitting, got %s", f.State())
	}
	if view := m.View(); !strings.Contains(view, "PROCESSING...") {
		t.Fatalf("expected loading label in view:\n%s", view)
	}

	typeText(m, "ignored")
	if press(m, tea.KeyEnter) != nil {
		t.Fatalf("enter while submitting must do nothing")
	}
	if got := f.Snapshot().Value(form.FieldPassword); got != "secret1" {
		t.Fatalf("inputs must be inert while submitting, got %q", got)
	}

	m.Update(submitDoneMsg{})
	if f.State() != form.StateSubmitted {
		t.Fatalf("expected submitted, got %s", f.State())
	}
	completion, ok := m.Completion()
	if !ok {
		t.Fatalf("expected completion")
	}
	if diff := cmp.Diff(testsupport.ValidValues(), completion.Data); diff != "" {
		t.Fatalf("completion data mismatch (-want +got):\n%s", diff)
	}
	if len(completions) != 1 {
		t.Fatalf("expected one completion notification, got %d", len(completions))
	}

	view := m.View()
	if !strings.Contains(view, "Registration successful") || !strings.Contains(view, "Welcome, Jane") {
		t.Fatalf("expected success message:\n%s", view)
	}
	if strings.Contains(view, "CLAIM YOUR FREE TRIAL") {
		t.Fatalf("submit button must not render after submission:\n%s", view)
	}

	m.Update(submitDoneMsg{})
	if len(completions) != 1 {
		t.Fatalf("a second done message must not emit again")
	}

	cmd := press(m, tea.KeyRunes)
	if cmd == nil {
		t.Fatalf("expected quit after submission")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.Aborted() {
		t.Fatalf("completed session must not be aborted")
	}
}

func TestModel_AutoQuit(t *testing.T) {
	m, _ := newTestModel(t, WithAutoQuit(true))
	fillAll(m)
	press(m, tea.KeyEnter)
	_, cmd := m.Update(submitDoneMsg{})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_CtrlCAborts(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !m.Aborted() {
		t.Fatalf("expected aborted model")
	}
	if _, err := completionJSON(m); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestModel_IdleView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, fragment := range []string{
		"Learn to code by watching others",
		"Try it free 7 days",
		"Last Name",
		"CLAIM YOUR FREE TRIAL",
		"Terms and Services",
	} {
		if !strings.Contains(view, fragment) {
			t.Fatalf("expected %q in view:\n%s", fragment, view)
		}
	}
}

func TestModel_IdleViewShowsFullPlaceholders(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	// the focused input draws its cursor over the first placeholder rune
	for _, fragment := range []string{"irst Name", "Last Name", "Email Address", "Password"} {
		if !strings.Contains(view, fragment) {
			t.Fatalf("expected placeholder %q in view:\n%s", fragment, view)
		}
	}
}

func TestInputWidthFitsLongestPlaceholder(t *testing.T) {
	specs := []components.FieldSpec{
		{Name: form.FieldFirstName, Placeholder: "a"},
		{Name: form.FieldEmail, Placeholder: strings.Repeat("x", 40)},
	}
	if got := inputWidth(specs); got != 41 {
		t.Fatalf("expected width 41, got %d", got)
	}
	if got := inputWidth(nil); got != minInputWidth {
		t.Fatalf("expected floor width %d, got %d", minInputWidth, got)
	}
}

func TestCompletionJSON(t *testing.T) {
	m, _ := newTestModel(t)
	fillAll(m)
	press(m, tea.KeyEnter)
	m.Update(submitDoneMsg{})

	out, err := completionJSON(m)
	if err != nil {
		t.Fatalf("completion json: %v", err)
	}
	want := `{"data":{"email":"jane@doe.com","firstName":"Jane","lastName":"Doe","password":"secret1"},"timestamp":"2024-05-01T10:00:00.000Z"}`
	if string(out) != want {
		t.Fatalf("unexpected json\nwant: %s\n got: %s", want, out)
	}
}
