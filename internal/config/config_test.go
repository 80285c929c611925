package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/render"
)

func TestDefault_MatchesPageDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Form.Delay.Std() != 2*time.Second {
		t.Fatalf("expected 2s delay, got %s", cfg.Form.Delay.Std())
	}
	if cfg.Server.Addr != ":8080" || cfg.Log.Level != "info" || cfg.Renderer != "html" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if diff := cmp.Diff(components.DefaultPage(), cfg.BuildPage()); diff != "" {
		t.Fatalf("default page mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
renderer: tui
locale: es
page:
  title: Aprende a programar
  placeholders:
    email: Correo
form:
  submitText: Reclamar
  delay: 1500ms
server:
  addr: 127.0.0.1:9000
  assetsPrefix: /assets
theme:
  variant: dark
log:
  level: debug
translations:
  es:
    signup.terms.link: Términos
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Renderer != "tui" || cfg.Server.Addr != "127.0.0.1:9000" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected scalar overrides: %+v", cfg)
	}
	if cfg.Form.Delay.Std() != 1500*time.Millisecond {
		t.Fatalf("unexpected delay %s", cfg.Form.Delay.Std())
	}

	page := cfg.BuildPage()
	if page.Info.Title != "Aprende a programar" {
		t.Fatalf("unexpected title %q", page.Info.Title)
	}
	if page.Info.Description != components.DefaultInfoDescription {
		t.Fatalf("description should keep its default")
	}
	if page.SubmitText != "Reclamar" {
		t.Fatalf("unexpected submit text %q", page.SubmitText)
	}
	if page.Fields[2].Placeholder != "Correo" || page.Fields[0].Placeholder != "First Name" {
		t.Fatalf("unexpected placeholders: %+v", page.Fields)
	}

	opts := cfg.RenderOptions()
	if opts.Locale != "es" || opts.ThemeVariant != "dark" || opts.AssetsPrefix != "/assets" {
		t.Fatalf("unexpected render options: %+v", opts)
	}
	localized := render.LocalizePage(page, opts)
	if localized.Terms.LinkText != "Términos" {
		t.Fatalf("expected translated terms link, got %q", localized.Terms.LinkText)
	}
	if len(cfg.FormOptions()) != 1 {
		t.Fatalf("expected one form option")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"bad delay":         "form:\n  delay: soon\n",
		"negative delay":    "form:\n  delay: -1s\n",
		"unknown level":     "log:\n  level: loud\n",
		"unknown field":     "page:\n  placeholders:\n    phone: Phone\n",
		"malformed":         "page: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	_, err := Parse([]byte("log:\n  level: loud\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "signup.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: :9999\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
