package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	KeptStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ExcludedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// Styler renders text with the styles above, or leaves it untouched when
// output is not going to a human.
type Styler struct {
	enabled bool
}

// NewStyler returns a Styler that decorates only in interactive mode.
func NewStyler(mode Mode) Styler {
	return Styler{enabled: mode == ModeInteractive}
}

func (s Styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s Styler) Title(text string) string    { return s.render(TitleStyle, text) }
func (s Styler) Kept(text string) string     { return s.render(KeptStyle, text) }
func (s Styler) Excluded(text string) string { return s.render(ExcludedStyle, text) }
func (s Styler) Marker(text string) string   { return s.render(MarkerStyle, text) }
