package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the color scheme of a rendered frame
type Theme struct {
	Name       string
	Background lipgloss.Color
	Axis       lipgloss.Color
	Grid       lipgloss.Color
	Curve      lipgloss.Color
	Fill       lipgloss.Color
	Edge       lipgloss.Color
	Text       lipgloss.Color
	Box        lipgloss.Color
}

// Available themes
var (
	ThemeLight = Theme{
		Name:       "light",
		Background: lipgloss.Color("#ffffff"),
		Axis:       lipgloss.Color("#222222"),
		Grid:       lipgloss.Color("#e6e6e6"),
		Curve:      lipgloss.Color("#1f3fbf"), // Sage blue
		Fill:       lipgloss.Color("#4f86f7"),
		Edge:       lipgloss.Color("#2a55b0"),
		Text:       lipgloss.Color("#000000"),
		Box:        lipgloss.Color("#ffffff"),
	}

	ThemeDark = Theme{
		Name:       "dark",
		Background: lipgloss.Color("#0a0a0a"),
		Axis:       lipgloss.Color("#bbbbbb"),
		Grid:       lipgloss.Color("#222222"),
		Curve:      lipgloss.Color("#00ffff"),
		Fill:       lipgloss.Color("#ff00ff"),
		Edge:       lipgloss.Color("#aa00aa"),
		Text:       lipgloss.Color("#ffffff"),
		Box:        lipgloss.Color("#1a1a1a"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Axis:       lipgloss.Color("#00cc00"),
		Grid:       lipgloss.Color("#003300"),
		Curve:      lipgloss.Color("#88ff88"), // Green phosphor
		Fill:       lipgloss.Color("#00ff00"),
		Edge:       lipgloss.Color("#00aa00"),
		Text:       lipgloss.Color("#00ff00"),
		Box:        lipgloss.Color("#002200"),
	}
)

var themes = map[string]Theme{
	ThemeLight.Name: ThemeLight,
	ThemeDark.Name:  ThemeDark,
	ThemeRetro.Name: ThemeRetro,
}

// GetTheme looks a theme up by name.
func GetTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", name, ListThemes())
	}
	return t, nil
}

func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RGBA converts a hex theme color. Malformed colors come out opaque black.
func (t Theme) RGBA(c lipgloss.Color) color.RGBA {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Translucent is RGBA with the given alpha in [0, 1].
func (t Theme) Translucent(c lipgloss.Color, alpha float64) color.NRGBA {
	rgba := t.RGBA(c)
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(alpha*255 + 0.5)}
}
