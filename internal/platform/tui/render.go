package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/decasepta/internal/core"
)

// colorStyles maps scene roles to terminal styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorChaser:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorDirt:     lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorBackdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Blink(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != 0 { // trailing half of a wide glyph
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
