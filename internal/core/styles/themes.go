package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Accent     color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
	Info       color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "indigo"

var themes = map[string]Palette{
	// Indigo to purple, the newsletter's brand gradient.
	"indigo": {
		Primary:    lipgloss.Color("#6366f1"),
		Accent:     lipgloss.Color("#a855f7"),
		Foreground: lipgloss.Color("#e5e7eb"),
		Muted:      lipgloss.Color("#6b7280"),
		Background: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#1f2937"),
		Success:    lipgloss.Color("#22c55e"),
		Warning:    lipgloss.Color("#eab308"),
		Error:      lipgloss.Color("#ef4444"),
		Info:       lipgloss.Color("#3b82f6"),
	},
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Accent:     lipgloss.Color("#bb9af7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
		Info:       lipgloss.Color("#7dcfff"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"), // Blue
		Accent:     lipgloss.Color("#cba6f7"), // Mauve
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Muted:      lipgloss.Color("#6c7086"), // Overlay0
		Background: lipgloss.Color("#1e1e2e"), // Base
		Surface:    lipgloss.Color("#313244"), // Surface0
		Success:    lipgloss.Color("#a6e3a1"), // Green
		Warning:    lipgloss.Color("#f9e2af"), // Yellow
		Error:      lipgloss.Color("#f38ba8"), // Red
		Info:       lipgloss.Color("#94e2d5"), // Teal
	},
	"paper": {
		Primary:    lipgloss.Color("#4f46e5"),
		Accent:     lipgloss.Color("#9333ea"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6b7280"),
		Background: lipgloss.Color("#f9fafb"),
		Surface:    lipgloss.Color("#e5e7eb"),
		Success:    lipgloss.Color("#15803d"),
		Warning:    lipgloss.Color("#a16207"),
		Error:      lipgloss.Color("#b91c1c"),
		Info:       lipgloss.Color("#1d4ed8"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a glamour style config for the hero section, derived
// from the active palette.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	accent := colorHexPtr(ColorAccent)
	muted := colorHexPtr(ColorMuted)

	// The hero sits in a card; drop the document margin.
	var noMargin uint
	cfg.Document.Margin = &noMargin
	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = primary
	cfg.H2.Color = accent
	cfg.H3.Color = primary

	cfg.Strong.Color = accent
	cfg.Emph.Color = muted
	cfg.HorizontalRule.Color = muted
	cfg.Item.Color = fg

	return cfg
}
