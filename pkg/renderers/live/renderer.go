package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-signup/pkg/render"
)

// Name is the registry identifier of the live terminal renderer.
const Name = "live"

// ErrAborted is returned when the user quits before the submission finished.
var ErrAborted = errors.New("live: aborted")

// Option configures the live renderer.
type Option func(*Renderer)

// WithInput sets the program input. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(rr *Renderer) {
		rr.in = r
	}
}

// WithOutput sets the program output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		r.out = w
	}
}

// WithPalette overrides colour tokens used by the default styles.
func WithPalette(palette map[string]string) Option {
	return func(r *Renderer) {
		r.styles = NewStyles(palette)
	}
}

// WithProgramOptions appends raw bubbletea program options.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(r *Renderer) {
		r.programOpts = append(r.programOpts, opts...)
	}
}

// WithExitOnSuccess ends the program once the success message is shown
// instead of waiting for a key press.
func WithExitOnSuccess(enabled bool) Option {
	return func(r *Renderer) {
		r.autoQuit = enabled
	}
}

// Renderer runs the signup screen as a full terminal UI and returns the
// completion payload as JSON.
type Renderer struct {
	in          io.Reader
	out         io.Writer
	styles      Styles
	programOpts []tea.ProgramOption
	autoQuit    bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the live renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{styles: NewStyles(nil)}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render blocks until the user quits. The program stops when ctx is done.
func (r *Renderer) Render(ctx context.Context, view render.View) ([]byte, error) {
	if err := view.Validate(); err != nil {
		return nil, fmt.Errorf("live: %w", err)
	}
	page := render.LocalizePage(view.Page, view.Options)
	model := NewModel(view.Form, page, WithStyles(r.styles), WithAutoQuit(r.autoQuit))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.in != nil {
		opts = append(opts, tea.WithInput(r.in))
	}
	if r.out != nil {
		opts = append(opts, tea.WithOutput(r.out))
	}
	opts = append(opts, r.programOpts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("live: run program: %w", err)
	}
	return completionJSON(final)
}

func completionJSON(final tea.Model) ([]byte, error) {
	m, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("live: unexpected final model %T", final)
	}
	completion, ok := m.Completion()
	if !ok {
		return nil, ErrAborted
	}
	return json.Marshal(completion)
}
