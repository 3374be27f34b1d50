package selector

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used by the selector.
type Theme struct {
	Title     lipgloss.Color // title line
	TextMuted lipgloss.Color // key-help hint
	Text      lipgloss.Color // unselected rows
}

// DarkTheme returns the default theme for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Title:     lipgloss.Color("11"), // yellow
		TextMuted: lipgloss.Color("8"),
		Text:      lipgloss.Color("15"),
	}
}

// LightTheme returns a theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Title:     lipgloss.Color("#b35c00"),
		TextMuted: lipgloss.Color("#656d76"),
		Text:      lipgloss.Color("#1f2328"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds the lipgloss styles derived from a Theme.
type styles struct {
	title    lipgloss.Style
	hint     lipgloss.Style
	text     lipgloss.Style
	selected lipgloss.Style
}

// newStyles builds all styles from a theme. Styles are bound to r so the
// color profile follows the side channel, not stdout (which is usually a
// pipe). A nil r uses the default renderer.
func newStyles(t Theme, r *lipgloss.Renderer) styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return styles{
		title:    r.NewStyle().Foreground(t.Title),
		hint:     r.NewStyle().Foreground(t.TextMuted),
		text:     r.NewStyle().Foreground(t.Text),
		selected: r.NewStyle().Reverse(true).Bold(true),
	}
}
