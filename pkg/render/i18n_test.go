package render_test

import (
	"testing"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/render"
)

func TestLocalizePage_TranslatesAndFallsBack(t *testing.T) {
	translator := render.MapTranslator{
		"es": {
			render.KeyInfoTitle:                      "Aprende a programar viendo a otros",
			render.KeySubmit:                         "Reclama tu prueba gratis",
			render.FieldPlaceholderKey("firstName"): "Nombre",
		},
	}

	page := render.LocalizePage(components.DefaultPage(), render.RenderOptions{
		Locale:     "es-MX",
		Translator: translator,
	})

	if page.Info.Title != "Aprende a programar viendo a otros" {
		t.Fatalf("expected translated title, got %q", page.Info.Title)
	}
	if page.SubmitText != "Reclama tu prueba gratis" {
		t.Fatalf("expected translated submit text, got %q", page.SubmitText)
	}
	if page.Info.Description != components.DefaultInfoDescription {
		t.Fatalf("expected description fallback, got %q", page.Info.Description)
	}
	if page.Fields[0].Placeholder != "Nombre" {
		t.Fatalf("expected translated placeholder, got %q", page.Fields[0].Placeholder)
	}
	if page.Fields[1].Placeholder != "Last Name" {
		t.Fatalf("expected placeholder fallback, got %q", page.Fields[1].Placeholder)
	}
}

func TestLocalizePage_NoTranslatorKeepsCopy(t *testing.T) {
	page := components.DefaultPage()
	got := render.LocalizePage(page, render.RenderOptions{Locale: "fr"})
	if got.Info.Title != page.Info.Title || got.SubmitText != page.SubmitText {
		t.Fatalf("expected copy untouched")
	}
}

func TestLocalizePage_OnMissingHandler(t *testing.T) {
	var missing []string
	got := render.LocalizePage(components.DefaultPage(), render.RenderOptions{
		Locale:     "de",
		Translator: render.MapTranslator{},
		OnMissing: func(_ string, key string, args []any, _ error) string {
			missing = append(missing, key)
			return args[0].(map[string]any)["default"].(string)
		},
	})
	if got.Info.Title != components.DefaultInfoTitle {
		t.Fatalf("expected fallback from handler args, got %q", got.Info.Title)
	}
	if len(missing) == 0 {
		t.Fatalf("expected missing handler to be consulted")
	}
}
