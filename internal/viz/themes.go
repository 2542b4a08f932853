package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sortviz/internal/render"
)

// Theme defines the color scheme for the TUI. Bars that are not highlighted
// are shaded along Hue/Sat from Light (small values) to Dark (large values).
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Hue       float64
	Sat       float64
	Light     float64
	Dark      float64
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Primary:   lipgloss.Color("#ff6f6f"),
		Secondary: lipgloss.Color("#ffe1b6"),
		Border:    lipgloss.Color("#ff0000"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Hue:       240,
		Sat:       0.5,
		Light:     0.9,
		Dark:      0.2,
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ffff00"),
		Secondary: lipgloss.Color("#00ffff"),
		Border:    lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Hue:       300,
		Sat:       0.9,
		Light:     0.75,
		Dark:      0.35,
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#88ff88"),
		Border:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Hue:       120,
		Sat:       1,
		Light:     0.6,
		Dark:      0.25,
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#ffd700"),
		Secondary: lipgloss.Color("#00a8cc"),
		Border:    lipgloss.Color("#ff4444"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Hue:       205,
		Sat:       0.8,
		Light:     0.7,
		Dark:      0.3,
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff4757"),
		Secondary: lipgloss.Color("#feca57"),
		Border:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Hue:       20,
		Sat:       0.85,
		Light:     0.75,
		Dark:      0.4,
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Palette converts the theme for the renderer.
func (t Theme) Palette() render.Palette {
	return render.Palette{
		Primary:   hexColor(t.Primary),
		Secondary: hexColor(t.Secondary),
		Hue:       t.Hue,
		Sat:       t.Sat,
		Light:     t.Light,
		Dark:      t.Dark,
	}
}

func hexColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}
