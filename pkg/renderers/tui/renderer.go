package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/render"
)

// Name is the registry identifier of the prompt renderer.
const Name = "tui"

// Renderer implements render.Renderer for prompt-driven terminal sessions.
// Render prompts every field, submits, re-prompts the fields that failed
// validation and returns the serialized completion.
type Renderer struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	confirm      bool
	maxAttempts  int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render drives view.Form to completion. A form that is already submitted is
// serialized without prompting.
func (r *Renderer) Render(ctx context.Context, view render.View) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if err := view.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	f := view.Form
	page := render.LocalizePage(view.Page, view.Options)

	switch f.State() {
	case form.StateSubmitting:
		return nil, ErrBusy
	case form.StateSubmitted:
		return r.finish(ctx, page, f)
	}

	if err := r.info(ctx, page.Info.Title); err != nil {
		return nil, err
	}
	if err := r.info(ctx, page.Promo.Highlight+" "+page.Promo.Text); err != nil {
		return nil, err
	}

	prompt := page.Fields
	if len(prompt) == 0 {
		prompt = components.DefaultFieldSpecs()
	}
	for attempt := 1; ; attempt++ {
		if err := r.promptFields(ctx, f, prompt); err != nil {
			return nil, err
		}

		if r.confirm && attempt == 1 {
			ok, err := r.driver.Confirm(ctx, ConfirmConfig{
				Message: firstNonEmpty(page.SubmitText, components.DefaultSubmitText) + "?",
				Default: true,
				Help:    page.Terms.Text + " " + page.Terms.LinkText,
			})
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrDeclined
			}
		}

		err := r.submit(ctx, page, f)
		var verr *form.ValidationError
		if err == nil {
			break
		}
		if !errors.As(err, &verr) {
			return nil, err
		}
		if attempt >= r.maxAttempts {
			return nil, fmt.Errorf("%w: %v", ErrTooManyAttempts, verr)
		}
		prompt = failedSpecs(page, verr.Errors)
	}

	return r.finish(ctx, page, f)
}

// promptFields asks for each spec, printing any recorded error first, and
// forwards the answers to the form.
func (r *Renderer) promptFields(ctx context.Context, f *form.Form, specs []components.FieldSpec) error {
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap := f.Snapshot()
		if msg := snap.Error(spec.Name); msg != "" {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
				return err
			}
		}

		cfg := InputConfig{Message: spec.Placeholder}
		var (
			value string
			err   error
		)
		if spec.Type == components.InputPassword {
			value, err = r.driver.Password(ctx, cfg)
		} else {
			cfg.Default = snap.Value(spec.Name)
			value, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}
		if err := f.OnFieldChange(spec.Name, value); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
	}
	return nil
}

func (r *Renderer) submit(ctx context.Context, page components.Page, f *form.Form) error {
	if err := r.info(ctx, firstNonEmpty(page.LoadingText, components.DefaultLoadingText)); err != nil {
		return err
	}
	return f.OnSubmitRequested()
}

func (r *Renderer) finish(ctx context.Context, page components.Page, f *form.Form) ([]byte, error) {
	completion, ok := f.Completion()
	if !ok {
		return nil, errors.New("tui: form finished without a completion")
	}
	success := components.Success{
		Heading:   firstNonEmpty(page.SuccessHeading, components.DefaultSuccessHeading),
		FirstName: completion.Data.Get(form.FieldFirstName),
	}
	if err := r.info(ctx, success.Heading); err != nil {
		return nil, err
	}
	if err := r.info(ctx, success.Greeting()); err != nil {
		return nil, err
	}
	return r.serialize(completion)
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil
	}
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) serialize(completion form.Completion) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(completion)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(completion)), nil
	default:
		return json.Marshal(completion)
	}
}

func failedSpecs(page components.Page, errs form.ErrorSet) []components.FieldSpec {
	specs := page.Fields
	if len(specs) == 0 {
		specs = components.DefaultFieldSpecs()
	}
	out := make([]components.FieldSpec, 0, len(errs))
	for _, spec := range specs {
		if errs.Has(spec.Name) {
			out = append(out, spec)
		}
	}
	return out
}

func flattenForm(completion form.Completion) string {
	values := url.Values{}
	for name, value := range completion.Data {
		values.Set(string(name), value)
	}
	values.Set("timestamp", completion.ISOTimestamp())
	return values.Encode()
}

func prettyPrint(completion form.Completion) string {
	var b strings.Builder
	for _, name := range form.Fields() {
		value := completion.Data.Get(name)
		if name == form.FieldPassword {
			value = strings.Repeat("*", utf8.RuneCountInString(value))
		}
		fmt.Fprintf(&b, "%s=%s\n", name, value)
	}
	fmt.Fprintf(&b, "timestamp=%s\n", completion.ISOTimestamp())
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
