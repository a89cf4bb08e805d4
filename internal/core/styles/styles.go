// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for the active palette.
var (
	ColorPrimary    color.Color
	ColorAccent     color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
	ColorInfo       color.Color
)

// Style exports.
var (
	// CLI styles.
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style
	KeyStyle     lipgloss.Style

	// Landing page.
	BrandStyle   lipgloss.Style
	NavHintStyle lipgloss.Style
	CardStyle    lipgloss.Style
	CardTitle    lipgloss.Style
	TrustStyle   lipgloss.Style
	CountStyle   lipgloss.Style
	SpinnerStyle lipgloss.Style

	ButtonStyle         lipgloss.Style
	ButtonFocusedStyle  lipgloss.Style
	ButtonDisabledStyle lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormHelpStyle         lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorAccent = p.Accent
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorInfo = p.Info

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	KeyStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BrandStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	NavHintStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(1, 2)
	CardTitle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginBottom(1)
	TrustStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	CountStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorAccent)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorSurface).
		Foreground(ColorForeground)
	ButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorSurface).
		Foreground(ColorMuted).
		Faint(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
