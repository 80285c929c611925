package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-signup/pkg/components"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the string used when key cannot be
// translated. args carries a {"default": fallback} map.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// MapTranslator is a Translator backed by locale → key → message maps.
type MapTranslator map[string]map[string]string

// Translate implements Translator. Locales fall back from "es-MX" to "es".
func (m MapTranslator) Translate(locale, key string, _ ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		if msg, ok := m[candidate][key]; ok && strings.TrimSpace(msg) != "" {
			return msg, nil
		}
	}
	return "", errors.New("render: missing translation for " + key)
}

// Copy keys understood by LocalizePage.
const (
	KeyInfoTitle       = "signup.info.title"
	KeyInfoDescription = "signup.info.description"
	KeyPromoHighlight  = "signup.promo.highlight"
	KeyPromoText       = "signup.promo.text"
	KeyTermsText       = "signup.terms.text"
	KeyTermsLink       = "signup.terms.link"
	KeySubmit          = "signup.submit"
	KeySubmitLoading   = "signup.submit.loading"
	KeySuccessHeading  = "signup.success.heading"
	keyFieldPrefix     = "signup.field."
)

// FieldPlaceholderKey is the copy key of a field placeholder, e.g.
// "signup.field.email.placeholder".
func FieldPlaceholderKey(name string) string {
	return keyFieldPrefix + name + ".placeholder"
}

// LocalizePage returns a copy of page with every copy string translated for
// opts.Locale. Keys without a translation keep the page's current text.
func LocalizePage(page components.Page, opts RenderOptions) components.Page {
	if opts.Translator == nil && opts.OnMissing == nil {
		return page
	}
	tr := func(key, fallback string) string {
		return translate(opts.Locale, key, fallback, opts.Translator, opts.OnMissing)
	}

	out := page
	out.Info.Title = tr(KeyInfoTitle, page.Info.Title)
	out.Info.Description = tr(KeyInfoDescription, page.Info.Description)
	out.Promo.Highlight = tr(KeyPromoHighlight, page.Promo.Highlight)
	out.Promo.Text = tr(KeyPromoText, page.Promo.Text)
	out.Terms.Text = tr(KeyTermsText, page.Terms.Text)
	out.Terms.LinkText = tr(KeyTermsLink, page.Terms.LinkText)
	out.SubmitText = tr(KeySubmit, page.SubmitText)
	out.LoadingText = tr(KeySubmitLoading, page.LoadingText)
	out.SuccessHeading = tr(KeySuccessHeading, page.SuccessHeading)

	specs := page.Fields
	if len(specs) == 0 {
		specs = components.DefaultFieldSpecs()
	}
	out.Fields = make([]components.FieldSpec, len(specs))
	for i, spec := range specs {
		spec.Placeholder = tr(FieldPlaceholderKey(string(spec.Name)), spec.Placeholder)
		out.Fields[i] = spec
	}
	return out
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}
