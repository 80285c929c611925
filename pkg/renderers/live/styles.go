package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPalette maps the page colour tokens to terminal colours.
func DefaultPalette() map[string]string {
	return map[string]string{
		"red-400":    "#FF7979",
		"green-400":  "#38CC8B",
		"purple-700": "#5E54A4",
		"gray-900":   "#3D3B48",
		"purple-350": "#B9B6D3",
	}
}

// Styles holds the lipgloss styles used by the model view.
type Styles struct {
	Title          lipgloss.Style
	Description    lipgloss.Style
	Promo          lipgloss.Style
	Card           lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	InputError     lipgloss.Style
	Error          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Terms          lipgloss.Style
	Link           lipgloss.Style
	Success        lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles builds styles from palette. Missing tokens fall back to
// DefaultPalette.
func NewStyles(palette map[string]string) Styles {
	colors := DefaultPalette()
	for key, value := range palette {
		if strings.TrimSpace(value) != "" {
			colors[key] = value
		}
	}
	c := func(token string) lipgloss.Color { return lipgloss.Color(colors[token]) }

	border := lipgloss.RoundedBorder()
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(c("red-400")).MarginBottom(1),
		Description: lipgloss.NewStyle().Foreground(c("purple-350")).MarginBottom(1),
		Promo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(c("purple-700")).
			Padding(0, 2).
			MarginBottom(1),
		Card:         lipgloss.NewStyle().Border(border).BorderForeground(c("purple-350")).Padding(1, 2),
		Input:        lipgloss.NewStyle().Border(border).BorderForeground(c("purple-350")).Padding(0, 1),
		InputFocused: lipgloss.NewStyle().Border(border).BorderForeground(c("purple-700")).Padding(0, 1),
		InputError:   lipgloss.NewStyle().Border(border).BorderForeground(c("red-400")).Padding(0, 1),
		Error:        lipgloss.NewStyle().Italic(true).Foreground(c("red-400")),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(c("green-400")).
			Padding(0, 3).
			MarginTop(1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(c("purple-350")).
			Padding(0, 3).
			MarginTop(1),
		Terms:   lipgloss.NewStyle().Foreground(c("purple-350")).MarginTop(1),
		Link:    lipgloss.NewStyle().Bold(true).Foreground(c("red-400")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(c("green-400")).Padding(1, 3),
		Help:    lipgloss.NewStyle().Foreground(c("gray-900")).MarginTop(1),
	}
}
