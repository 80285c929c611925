package html

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"

	signupcomponents "github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/render"
	rendertemplate "github.com/goliatone/go-signup/pkg/render/template"
	gotemplate "github.com/goliatone/go-signup/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signup/pkg/renderers/html/components"
)

const (
	Name        = "html"
	contentType = "text/html; charset=utf-8"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stockEngine      bool
	stockOptions     []gotemplatepkg.Option
	components       *components.Registry
	selector         theme.ThemeSelector
	themeConfig      *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplateEngine renders through the stock go-template engine instead
// of the built-in pongo2 adapter. opts are applied after the template source
// and extension.
func WithGoTemplateEngine(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.stockEngine = true
		cfg.stockOptions = append(cfg.stockOptions, opts...)
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithThemeSelector resolves RenderOptions.ThemeName/ThemeVariant through
// selector instead of the built-in manifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
		}
	}
}

// WithThemeConfig pins a resolved theme. It is used when a render request
// names no theme.
func WithThemeConfig(themeConfig *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.themeConfig = themeConfig
	}
}

// Renderer draws the signup page for the form's current snapshot.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	components  *components.Registry
	selector    theme.ThemeSelector
	themeConfig *theme.RendererConfig
	stylesheet  string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}
	if cfg.selector == nil {
		cfg.selector = NewThemeSelector(DefaultManifest())
	}

	templates := cfg.templateRenderer
	switch {
	case templates != nil:
	case cfg.stockEngine:
		engine, err := gotemplate.NewStock(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGoTemplateOptions(cfg.stockOptions...),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure go-template engine: %w", err)
		}
		templates = engine
	default:
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:   templates,
		components:  cfg.components,
		selector:    cfg.selector,
		themeConfig: cfg.themeConfig,
		stylesheet:  defaultStylesheet(),
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return contentType
}

// Render draws view.Form's current snapshot. It never mutates the form.
func (r *Renderer) Render(_ context.Context, view render.View) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := view.Validate(); err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	opts := view.Options
	page := render.LocalizePage(view.Page, opts)
	formView := page.Compose(view.Form.Snapshot(), signupcomponents.Handlers{})

	themeCfg, err := r.resolveTheme(opts)
	if err != nil {
		return nil, err
	}
	data := components.ComponentData{Template: r.templates}
	if themeCfg != nil {
		data.Partials = themeCfg.Partials
	}

	formHTML, err := r.renderForm(page, formView, opts, data)
	if err != nil {
		return nil, err
	}
	if opts.Fragment {
		return []byte(formHTML), nil
	}

	info, err := r.component(components.NameInfo, map[string]any{
		"title":       page.Info.Title,
		"description": sanitizeCopy(page.Info.Description),
	}, data)
	if err != nil {
		return nil, err
	}
	promo, err := r.component(components.NamePromo, map[string]any{
		"highlight": sanitizeCopy(page.Promo.Highlight),
		"text":      sanitizeCopy(page.Promo.Text),
	}, data)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"lang":        firstNonEmpty(primaryLanguage(opts.Locale), "en"),
		"title":       page.Info.Title,
		"info":        info,
		"promo":       promo,
		"form":        formHTML,
		"stylesheets": r.stylesheets(opts, themeCfg),
	}
	if opts.AssetsPrefix == "" {
		payload["inlineStylesheet"] = r.stylesheet
	}
	if themeCfg != nil {
		payload["theme"] = themeCfg.Theme
		payload["variant"] = themeCfg.Variant
		payload["themeStyle"] = cssVarsStyle(themeCfg.CSSVars)
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", payload)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderForm(page signupcomponents.Page, view signupcomponents.FormView, opts render.RenderOptions, data components.ComponentData) (string, error) {
	payload := map[string]any{
		"state":     view.State.String(),
		"submitted": view.Submitted,
		"inert":     view.Inert,
		"method":    firstNonEmpty(opts.Method, "post"),
		"action":    opts.Action,
	}

	if view.Submitted {
		success, err := r.component(components.NameSuccess, map[string]any{
			"heading":  view.Success.Heading,
			"greeting": view.Success.Greeting(),
		}, data)
		if err != nil {
			return "", err
		}
		payload["success"] = success
	} else {
		fields := make([]any, 0, len(view.Fields))
		for _, field := range view.Fields {
			rendered, err := r.component(components.NameField, fieldPayload(field), data)
			if err != nil {
				return "", err
			}
			fields = append(fields, rendered)
		}
		button, err := r.component(components.NameButton, map[string]any{
			"text":     view.Button.Text,
			"label":    view.Button.Label(),
			"inactive": view.Button.Inactive(),
			"loading":  view.Button.Loading,
		}, data)
		if err != nil {
			return "", err
		}
		terms, err := r.component(components.NameTerms, map[string]any{
			"text":     sanitizeCopy(page.Terms.Text),
			"linkText": page.Terms.LinkText,
			"href":     firstNonEmpty(page.Terms.LinkHref, "#"),
		}, data)
		if err != nil {
			return "", err
		}
		payload["fields"] = fields
		payload["button"] = button
		payload["terms"] = terms
		payload["hiddenFields"] = hiddenPayload(opts.HiddenFields)
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", payload)
	if err != nil {
		return "", fmt.Errorf("html renderer: render form: %w", err)
	}
	return result, nil
}

func (r *Renderer) component(name string, payload map[string]any, data components.ComponentData) (string, error) {
	var buf bytes.Buffer
	if err := r.components.Render(&buf, name, payload, data); err != nil {
		return "", fmt.Errorf("html renderer: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) resolveTheme(opts render.RenderOptions) (*theme.RendererConfig, error) {
	if r.themeConfig != nil && opts.ThemeName == "" && opts.ThemeVariant == "" {
		return r.themeConfig, nil
	}
	selection, err := r.selector.Select(opts.ThemeName, opts.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("html renderer: select theme: %w", err)
	}
	return RendererConfig(selection), nil
}

func (r *Renderer) stylesheets(opts render.RenderOptions, themeCfg *theme.RendererConfig) []string {
	var out []string
	if prefix := strings.TrimRight(opts.AssetsPrefix, "/"); opts.AssetsPrefix != "" {
		out = append(out, prefix+"/"+StylesheetName)
	}
	if themeCfg != nil && themeCfg.AssetURL != nil {
		if href := themeCfg.AssetURL(ThemeStylesheetKey); href != "" {
			out = append(out, href)
		}
	}
	return append(out, r.components.Stylesheets(r.components.Names())...)
}

// fieldPayload never echoes secret values back into the page.
func fieldPayload(field signupcomponents.FieldInput) map[string]any {
	value := field.Value
	if field.Secret() {
		value = ""
	}
	return map[string]any{
		"id":          field.ID(),
		"errorId":     field.ErrorID(),
		"name":        string(field.Name),
		"type":        string(field.Type),
		"placeholder": field.Placeholder,
		"value":       value,
		"error":       field.Error,
		"hasError":    field.HasError(),
		"disabled":    field.Disabled,
	}
}

func hiddenPayload(fields map[string]string) []any {
	sorted := render.SortedHiddenFields(fields)
	out := make([]any, 0, len(sorted))
	for _, field := range sorted {
		out = append(out, map[string]any{"Name": field.Name, "Value": field.Value})
	}
	return out
}

func primaryLanguage(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		return locale[:idx]
	}
	return locale
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
