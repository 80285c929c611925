// Package signup is the convenience entry point of the signup form kit. It
// wires the built-in renderers into a registry and renders a fresh form
// container in one call.
package signup

import (
	"context"
	"fmt"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/render"
	signuphtml "github.com/goliatone/go-signup/pkg/renderers/html"
	"github.com/goliatone/go-signup/pkg/renderers/live"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Page aliases the page shell.
type Page = components.Page

// Completion aliases the completion notification emitted by the form.
type Completion = form.Completion

// DefaultPage returns the page shell with the built-in copy.
func DefaultPage() Page {
	return components.DefaultPage()
}

// RegistryOptions carries per-renderer options for NewRegistry.
type RegistryOptions struct {
	HTML []signuphtml.Option
	TUI  []tui.Option
	Live []live.Option
}

// NewRegistry returns a registry holding the html, tui and live renderers.
func NewRegistry(opts RegistryOptions) (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := signuphtml.New(opts.HTML...)
	if err != nil {
		return nil, fmt.Errorf("signup: html renderer: %w", err)
	}
	tuiRenderer, err := tui.New(opts.TUI...)
	if err != nil {
		return nil, fmt.Errorf("signup: tui renderer: %w", err)
	}
	liveRenderer, err := live.New(opts.Live...)
	if err != nil {
		return nil, fmt.Errorf("signup: live renderer: %w", err)
	}

	for _, r := range []render.Renderer{htmlRenderer, tuiRenderer, liveRenderer} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Render builds a form container from formOpts and renders it with the named
// renderer from registry.
func Render(ctx context.Context, registry *render.Registry, rendererName string, page Page, opts RenderOptions, formOpts ...form.Option) ([]byte, error) {
	if registry == nil {
		return nil, fmt.Errorf("signup: registry is required")
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.View{
		Page:    page,
		Form:    form.New(formOpts...),
		Options: opts,
	})
}

// RenderHTML renders the idle signup page with the built-in html renderer.
func RenderHTML(ctx context.Context, page Page, opts RenderOptions, formOpts ...form.Option) ([]byte, error) {
	renderer, err := signuphtml.New()
	if err != nil {
		return nil, fmt.Errorf("signup: html renderer: %w", err)
	}
	return renderer.Render(ctx, render.View{
		Page:    page,
		Form:    form.New(formOpts...),
		Options: opts,
	})
}
