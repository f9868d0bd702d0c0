package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Lime and ink are the roadmap brand ramp endpoints; the rest
// are neutral console accents.
var (
	colorLime  = lipgloss.Color("#B8D232")
	colorInk   = lipgloss.Color("#231F20")
	colorTeal  = lipgloss.Color("#4DB6AC")
	colorMuted = lipgloss.Color("#888888")
)

// Styles shared by every writer.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorLime)
	missionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	capStyle     = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	ruleStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	noticeStyle  = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
)

// rule renders a "=" banner line of the given width.
func rule(width int) string {
	return ruleStyle.Render(strings.Repeat("=", width))
}

// dash renders a "-" separator line of the given width.
func dash(width int) string {
	return ruleStyle.Render(strings.Repeat("-", width))
}
