package components

// Component names registered by NewDefaultRegistry.
const (
	NameInfo    = "info"
	NamePromo   = "promo"
	NameField   = "field"
	NameButton  = "button"
	NameSuccess = "success"
	NameTerms   = "terms"
)
