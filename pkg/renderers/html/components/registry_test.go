package components

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubTemplates struct {
	rendered []string
}

func (s *stubTemplates) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplates) RenderTemplate(name string, _ any, _ ...io.Writer) (string, error) {
	s.rendered = append(s.rendered, name)
	return "<" + name + ">", nil
}

func (s *stubTemplates) RenderString(content string, _ any, _ ...io.Writer) (string, error) {
	return content, nil
}

func (s *stubTemplates) RegisterFilter(string, func(any, any) (any, error)) error { return nil }
func (s *stubTemplates) GlobalContext(any) error                                   { return nil }

func TestDefaultRegistry_Names(t *testing.T) {
	want := []string{"button", "field", "info", "promo", "success", "terms"}
	if diff := cmp.Diff(want, NewDefaultRegistry().Names()); diff != "" {
		t.Fatalf("component names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RenderUsesPartialOverride(t *testing.T) {
	registry := NewDefaultRegistry()
	tmpl := &stubTemplates{}

	var buf bytes.Buffer
	if err := registry.Render(&buf, NameField, nil, ComponentData{Template: tmpl}); err != nil {
		t.Fatalf("render field: %v", err)
	}
	if err := registry.Render(&buf, NameButton, nil, ComponentData{
		Template: tmpl,
		Partials: map[string]string{PartialKey(NameButton): "themes/dark/button.tmpl"},
	}); err != nil {
		t.Fatalf("render button: %v", err)
	}

	want := []string{"templates/components/field.tmpl", "themes/dark/button.tmpl"}
	if diff := cmp.Diff(want, tmpl.rendered); diff != "" {
		t.Fatalf("rendered templates mismatch (-want +got):\n%s", diff)
	}
	if buf.String() != "<templates/components/field.tmpl><themes/dark/button.tmpl>" {
		t.Fatalf("unexpected buffer %q", buf.String())
	}
}

func TestRegistry_RegisterValidatesAndClones(t *testing.T) {
	registry := New()
	if err := registry.Register(" ", Descriptor{Renderer: func(*bytes.Buffer, map[string]any, ComponentData) error { return nil }}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := registry.Register("x", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	noop := func(*bytes.Buffer, map[string]any, ComponentData) error { return nil }
	registry.MustRegister("Badge", Descriptor{Renderer: noop, Stylesheets: []string{"/a.css", "/b.css"}})
	registry.MustRegister("pill", Descriptor{Renderer: noop, Stylesheets: []string{"/b.css", ""}})

	clone := registry.Clone()
	clone.MustRegister("extra", Descriptor{Renderer: noop})
	if registry.Names()[0] != "badge" || len(registry.Names()) != 2 {
		t.Fatalf("clone mutated original registry: %v", registry.Names())
	}

	got := registry.Stylesheets([]string{"badge", "PILL", "missing"})
	if diff := cmp.Diff([]string{"/a.css", "/b.css"}, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := registry.Render(&buf, "missing", nil, ComponentData{}); err == nil {
		t.Fatalf("expected error for unknown component")
	}
}
