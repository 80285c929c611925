// Package config loads the YAML configuration of the signup tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/render"
)

const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
	DefaultRenderer = "html"
)

var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full file layout. Every section is optional.
type Config struct {
	Renderer     string                       `yaml:"renderer"`
	Locale       string                       `yaml:"locale"`
	Page         PageConfig                   `yaml:"page"`
	Form         FormConfig                   `yaml:"form"`
	Server       ServerConfig                 `yaml:"server"`
	Theme        ThemeConfig                  `yaml:"theme"`
	Log          LogConfig                    `yaml:"log"`
	Translations map[string]map[string]string `yaml:"translations"`
}

// PageConfig overrides the static page copy.
type PageConfig struct {
	Title          string            `yaml:"title"`
	Description    string            `yaml:"description"`
	PromoHighlight string            `yaml:"promoHighlight"`
	PromoText      string            `yaml:"promoText"`
	TermsText      string            `yaml:"termsText"`
	TermsLinkText  string            `yaml:"termsLinkText"`
	TermsLinkHref  string            `yaml:"termsLinkHref"`
	Placeholders   map[string]string `yaml:"placeholders"`
}

// FormConfig overrides form copy and the simulated submission delay.
type FormConfig struct {
	SubmitText     string   `yaml:"submitText"`
	LoadingText    string   `yaml:"loadingText"`
	SuccessHeading string   `yaml:"successHeading"`
	Delay          Duration `yaml:"delay"`
}

type ServerConfig struct {
	Addr         string `yaml:"addr"`
	AssetsPrefix string `yaml:"assetsPrefix"`
}

type ThemeConfig struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Duration decodes Go duration strings such as "2s" or "1500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("config: delay must be a duration string: %w", err)
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("config: parse delay %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() Config {
	page := components.DefaultPage()
	placeholders := make(map[string]string, len(page.Fields))
	for _, spec := range page.Fields {
		placeholders[string(spec.Name)] = spec.Placeholder
	}
	return Config{
		Renderer: DefaultRenderer,
		Page: PageConfig{
			Title:          page.Info.Title,
			Description:    page.Info.Description,
			PromoHighlight: page.Promo.Highlight,
			PromoText:      page.Promo.Text,
			TermsText:      page.Terms.Text,
			TermsLinkText:  page.Terms.LinkText,
			TermsLinkHref:  page.Terms.LinkHref,
			Placeholders:   placeholders,
		},
		Form: FormConfig{
			SubmitText:     page.SubmitText,
			LoadingText:    page.LoadingText,
			SuccessHeading: page.SuccessHeading,
			Delay:          Duration(form.DefaultDelay),
		},
		Server: ServerConfig{Addr: DefaultAddr},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML (or JSON) over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(data)) != "" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Form.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	for name := range c.Page.Placeholders {
		if !form.Field(name).Known() {
			return fmt.Errorf("%w: placeholder for unknown field %q", ErrInvalid, name)
		}
	}
	return nil
}

// BuildPage returns the page shell with the configured copy applied.
func (c Config) BuildPage() components.Page {
	page := components.DefaultPage()
	setIf(&page.Info.Title, c.Page.Title)
	setIf(&page.Info.Description, c.Page.Description)
	setIf(&page.Promo.Highlight, c.Page.PromoHighlight)
	setIf(&page.Promo.Text, c.Page.PromoText)
	setIf(&page.Terms.Text, c.Page.TermsText)
	setIf(&page.Terms.LinkText, c.Page.TermsLinkText)
	setIf(&page.Terms.LinkHref, c.Page.TermsLinkHref)
	setIf(&page.SubmitText, c.Form.SubmitText)
	setIf(&page.LoadingText, c.Form.LoadingText)
	setIf(&page.SuccessHeading, c.Form.SuccessHeading)
	for i, spec := range page.Fields {
		setIf(&page.Fields[i].Placeholder, c.Page.Placeholders[string(spec.Name)])
	}
	return page
}

// FormOptions returns the form options derived from the configuration.
func (c Config) FormOptions() []form.Option {
	return []form.Option{form.WithDelay(c.Form.Delay.Std())}
}

// RenderOptions returns render options for the configured theme and locale.
func (c Config) RenderOptions() render.RenderOptions {
	opts := render.RenderOptions{
		Locale:       c.Locale,
		ThemeName:    c.Theme.Name,
		ThemeVariant: c.Theme.Variant,
		AssetsPrefix: c.Server.AssetsPrefix,
	}
	if len(c.Translations) > 0 {
		opts.Translator = render.MapTranslator(c.Translations)
	}
	return opts
}

func setIf(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}
