package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Error      color.Color
	OnAccent   color.Color // text drawn on Success/Error backgrounds
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Error:      lipgloss.Color("#f7768e"),
		OnAccent:   lipgloss.Color("#1a1b26"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Error:      lipgloss.Color("#fb4934"),
		OnAccent:   lipgloss.Color("#282828"),
	},
	// Flat UI greens and reds with white text.
	"flat": {
		Primary:    lipgloss.Color("#2980b9"),
		Foreground: lipgloss.Color("#ecf0f1"),
		Muted:      lipgloss.Color("#7f8c8d"),
		Background: lipgloss.Color("#2c3e50"),
		Surface:    lipgloss.Color("#34495e"),
		Success:    lipgloss.Color("#16a085"),
		Error:      lipgloss.Color("#c0392b"),
		OnAccent:   lipgloss.Color("#ffffff"),
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
