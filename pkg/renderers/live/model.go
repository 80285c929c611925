package live

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
)

const (
	keyCtrlC    = "ctrl+c"
	keyEsc      = "esc"
	keyEnter    = "enter"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyDown     = "down"
	keyUp       = "up"

	inputCharLimit = 256
	minInputWidth  = 24
	helpText       = "tab/shift+tab: move • enter: submit • ctrl+c: quit"
)

// submitDoneMsg fires once the form's submission delay has elapsed.
type submitDoneMsg struct{}

// Model is the bubbletea model of the signup screen. It holds one text input
// per field and mirrors the form's snapshot; the form stays the source of
// truth for values, errors and state.
type Model struct {
	form   *form.Form
	page   components.Page
	styles Styles
	now    func() time.Time

	specs   []components.FieldSpec
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	snap    form.Snapshot

	autoQuit        bool
	submitRequested bool
	completion      *form.Completion
	aborted         bool
	width           int
	lastErr         error
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStyles overrides the default styles.
func WithStyles(styles Styles) ModelOption {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithAutoQuit ends the program as soon as the success message is shown.
func WithAutoQuit(enabled bool) ModelOption {
	return func(m *Model) {
		m.autoQuit = enabled
	}
}

// WithNow sets the clock used to stamp submit requests.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModel builds the model for f with page copy. The first input is focused.
func NewModel(f *form.Form, page components.Page, options ...ModelOption) *Model {
	m := &Model{
		form:   f,
		page:   page,
		styles: NewStyles(nil),
		now:    time.Now,
		specs:  page.Fields,
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	if len(m.specs) == 0 {
		m.specs = components.DefaultFieldSpecs()
	}

	m.snap = f.Snapshot()
	m.inputs = make([]textinput.Model, len(m.specs))
	width := inputWidth(m.specs)
	for i, spec := range m.specs {
		input := textinput.New()
		input.Placeholder = spec.Placeholder
		input.CharLimit = inputCharLimit
		input.Width = width
		input.Prompt = ""
		if spec.Type == components.InputPassword {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		input.SetValue(m.snap.Value(spec.Name))
		m.inputs[i] = input
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	m.spinner = s
	return m
}

// inputWidth fits the longest placeholder, with a floor so typed values have
// room before the input scrolls.
func inputWidth(specs []components.FieldSpec) int {
	width := minInputWidth
	for _, spec := range specs {
		if n := lipgloss.Width(spec.Placeholder) + 1; n > width {
			width = n
		}
	}
	return width
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Completion returns the completion once the form has been submitted.
func (m *Model) Completion() (form.Completion, bool) {
	if m.completion == nil {
		return form.Completion{}, false
	}
	return *m.completion, true
}

// Aborted reports whether the user quit before the submission finished.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Err is the error of the last form operation, typically a
// *form.ValidationError after a rejected submit.
func (m *Model) Err() error {
	return m.lastErr
}

// Focused is the index of the focused field.
func (m *Model) Focused() int {
	return m.focus
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case submitDoneMsg:
		if completion, ok := m.form.CompleteSubmit(); ok {
			m.completion = &completion
		}
		m.refresh()
		if m.autoQuit {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.snap.State == form.StateSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyCtrlC || key == keyEsc {
		m.aborted = m.completion == nil
		return m, tea.Quit
	}

	switch m.snap.State {
	case form.StateSubmitted:
		return m, tea.Quit
	case form.StateSubmitting:
		return m, nil
	}

	switch key {
	case keyTab, keyDown:
		return m, m.setFocus(m.focus + 1)
	case keyShiftTab, keyUp:
		return m, m.setFocus(m.focus - 1)
	case keyEnter:
		return m, m.submit()
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and reports a changed value
// to the form through the field component.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	value := m.inputs[m.focus].Value()
	field := m.formView().Fields
	if m.focus < len(field) && field[m.focus].Value != value {
		field[m.focus].Edit(value)
		m.refresh()
	}
	return m, cmd
}

// submit activates the submit button. It does nothing while the button is
// inactive.
func (m *Model) submit() tea.Cmd {
	m.submitRequested = false
	m.formView().Button.Activate()
	if !m.submitRequested {
		return nil
	}
	m.submitRequested = false

	started, err := m.form.BeginSubmit()
	m.lastErr = err
	m.refresh()
	if !started {
		for i, spec := range m.specs {
			if m.snap.Error(spec.Name) != "" {
				return m.setFocus(i)
			}
		}
		return nil
	}

	delay := m.form.Delay()
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg { return submitDoneMsg{} }),
	)
}

func (m *Model) formView() components.FormView {
	return m.page.Compose(m.snap, components.Handlers{
		OnFieldChange: func(change components.FieldChange) {
			m.lastErr = m.form.OnFieldChange(change.Name, change.Value)
		},
		OnSubmit: func(components.SubmitRequest) {
			m.submitRequested = true
		},
		Now: m.now,
	})
}

func (m *Model) setFocus(idx int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	n := len(m.inputs)
	idx = ((idx % n) + n) % n
	m.inputs[m.focus].Blur()
	m.focus = idx
	return m.inputs[m.focus].Focus()
}

func (m *Model) refresh() {
	m.snap = m.form.Snapshot()
}

// View renders the screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.page.Info.Title))
	b.WriteString("\n")
	b.WriteString(m.wrap(m.styles.Description).Render(m.page.Info.Description))
	b.WriteString("\n")
	b.WriteString(m.styles.Promo.Render(lipgloss.NewStyle().Bold(true).Render(m.page.Promo.Highlight) + " " + m.page.Promo.Text))
	b.WriteString("\n")

	view := m.formView()
	if view.Submitted {
		b.WriteString(m.styles.Success.Render(view.Success.Heading + "\n" + view.Success.Greeting()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("press any key to exit"))
		return b.String()
	}

	var card strings.Builder
	for i, field := range view.Fields {
		style := m.styles.Input
		switch {
		case field.HasError():
			style = m.styles.InputError
		case i == m.focus:
			style = m.styles.InputFocused
		}
		card.WriteString(style.Render(m.inputs[i].View()))
		card.WriteString("\n")
		if field.HasError() {
			card.WriteString(m.styles.Error.Render(field.Error))
			card.WriteString("\n")
		}
	}

	label := view.Button.Label()
	buttonStyle := m.styles.Button
	if view.Button.Inactive() {
		buttonStyle = m.styles.ButtonDisabled
	}
	if view.Button.Loading {
		label = m.spinner.View() + " " + label
	}
	card.WriteString(buttonStyle.Render(strings.ToUpper(label)))
	card.WriteString("\n")
	card.WriteString(m.styles.Terms.Render(m.page.Terms.Text + " " + m.styles.Link.Render(m.page.Terms.LinkText)))

	b.WriteString(m.styles.Card.Render(card.String()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpText))
	return b.String()
}

func (m *Model) wrap(style lipgloss.Style) lipgloss.Style {
	if m.width > 0 {
		return style.Width(m.width)
	}
	return style
}
