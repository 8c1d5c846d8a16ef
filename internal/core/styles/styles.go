// Package styles provides shared lipgloss v2 styles for the toast overlay and
// the demo program.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorError      color.Color
	ColorOnAccent   color.Color
)

// Style exports.
var (
	ToastSuccessStyle  lipgloss.Style
	ToastErrorStyle    lipgloss.Style
	ToastEnteringStyle lipgloss.Style
	ToastCloseStyle    lipgloss.Style

	TitleStyle lipgloss.Style
	HelpStyle  lipgloss.Style
	MutedStyle lipgloss.Style
)

// SetTheme applies a palette to every exported color and style.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorError = p.Error
	ColorOnAccent = p.OnAccent

	toastBase := lipgloss.NewStyle().
		Foreground(ColorOnAccent).
		Padding(0, 1)

	ToastSuccessStyle = toastBase.Background(ColorSuccess)
	ToastErrorStyle = toastBase.Background(ColorError)
	ToastEnteringStyle = toastBase.
		Background(ColorSurface).
		Foreground(ColorForeground).
		Faint(true)
	ToastCloseStyle = lipgloss.NewStyle().
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
