package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the form container.
type RenderOptions struct {
	// Locale selects translations for the page copy when a Translator is set.
	Locale string
	// Translator resolves copy keys (see LocalizePage). Nil keeps the page copy.
	Translator Translator
	// OnMissing decides the string used when a key has no translation.
	OnMissing MissingTranslationHandler
	// ThemeName and ThemeVariant pick the theme applied by styled renderers.
	ThemeName    string
	ThemeVariant string
	// AssetsPrefix is the URL prefix stylesheets are linked from. Empty inlines
	// the stylesheet.
	AssetsPrefix string
	// Action and Method configure the HTML form element.
	Action string
	Method string
	// HiddenFields are emitted as hidden inputs inside the form.
	HiddenFields map[string]string
	// Fragment renders only the form area instead of a full document.
	Fragment bool
}
