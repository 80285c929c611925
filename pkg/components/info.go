package components

const (
	DefaultInfoTitle       = "Learn to code by watching others"
	DefaultInfoDescription = "See how experienced developers solve problems in real-time. Watching scripted tutorials is great, but understanding how developers think is invaluable."
)

// InfoPanel is the introductory copy shown beside the form.
type InfoPanel struct {
	Title       string
	Description string
}

// NewInfoPanel returns the panel with its default copy.
func NewInfoPanel() InfoPanel {
	return InfoPanel{
		Title:       DefaultInfoTitle,
		Description: DefaultInfoDescription,
	}
}

// PromoBanner sits above the form; Highlight is emphasised.
type PromoBanner struct {
	Highlight string
	Text      string
}

// NewPromoBanner returns the banner with its default copy.
func NewPromoBanner() PromoBanner {
	return PromoBanner{
		Highlight: "Try it free 7 days",
		Text:      "then $20/mo. thereafter",
	}
}

// Terms is the agreement line under the submit button.
type Terms struct {
	Text     string
	LinkText string
	LinkHref string
}

// NewTerms returns the terms line with its default copy.
func NewTerms() Terms {
	return Terms{
		Text:     "By clicking the button, you are agreeing to our",
		LinkText: "Terms and Services",
		LinkHref: "#",
	}
}
