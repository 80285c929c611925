package components

import (
	"bytes"
	"fmt"
	"strings"
)

const templatePrefix = "templates/components/"

// PartialKey is the theme template key that overrides a component template,
// e.g. "signup.field".
func PartialKey(name string) string {
	return "signup." + normalize(name)
}

// NewDefaultRegistry returns a registry with the built-in signup components.
func NewDefaultRegistry() *Registry {
	registry := New()
	for _, name := range []string{NameInfo, NamePromo, NameField, NameButton, NameSuccess, NameTerms} {
		registry.MustRegister(name, Descriptor{
			Renderer: templateComponentRenderer(PartialKey(name), templatePrefix+name+".tmpl"),
		})
	}
	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, payload map[string]any, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
			resolved = candidate
		}

		rendered, err := data.Template.RenderTemplate(resolved, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}
