package gotemplate_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-signup/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signup/pkg/testsupport"
)

func templateFiles() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl":   {Data: []byte("Welcome, {{ firstName|trim }}")},
		"use-global.tmpl": {Data: []byte("renderer={{ settings.renderer }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|signup_shout }}")},
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	opts := append([]gotemplate.Option{gotemplate.WithFS(templateFiles())}, options...)
	engine, err := gotemplate.New(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("greeting", map[string]any{"firstName": "  Jane "}, w)
	})

	want := "Welcome, Jane"
	if result != want {
		t.Fatalf("render result mismatch\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render writer mismatch\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_RenderStructData(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		FirstName string `json:"firstName"`
	}{FirstName: "Ada"}

	got, err := engine.Render("greeting", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Welcome, Ada" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"renderer": "html"},
	}))

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "renderer=html" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"renderer": "tui"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	got, err = engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "renderer=tui" {
		t.Fatalf("expected updated global, got %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("signup_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("signup_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x-2" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestNewStock_RendersWithGoTemplate(t *testing.T) {
	engine, err := gotemplate.NewStock(
		gotemplate.WithFS(templateFiles()),
		gotemplate.WithGlobalData(map[string]any{"settings": map[string]any{"renderer": "html"}}),
	)
	if err != nil {
		t.Fatalf("new stock engine: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("greeting", map[string]any{"firstName": " Jane "}, w)
	})
	if result != "Welcome, Jane" || written != result {
		t.Fatalf("unexpected output %q / %q", result, written)
	}

	got, err := engine.Render("use-global", nil)
	if err != nil {
		t.Fatalf("render global: %v", err)
	}
	if got != "renderer=html" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewStock_AppliesRawOptions(t *testing.T) {
	files := fstest.MapFS{"page.html": {Data: []byte("ok")}}
	engine, err := gotemplate.NewStock(
		gotemplate.WithFS(files),
		gotemplate.WithGoTemplateOptions(gotemplatepkg.WithExtension(".html")),
	)
	if err != nil {
		t.Fatalf("new stock engine: %v", err)
	}
	got, err := engine.RenderTemplate("page", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewStock_RequiresSource(t *testing.T) {
	if _, err := gotemplate.NewStock(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}
