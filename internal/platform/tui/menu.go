package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/decasepta/internal/config"
	"github.com/vovakirdan/decasepta/internal/session"
)

const (
	menuColumns   = 3
	menuCellWidth = 16
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			MarginBottom(1)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("11"))
	menuLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuModeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// RenderMenu draws the character and difficulty picker.
func RenderMenu(s *session.Session, h help.Model, keys KeyMap, width, height int) string {
	roster := s.Roster()
	cursor := s.Menu()
	sel := s.Highlighted()

	title := menuTitleStyle.Render("D E C A S E P T A")

	var rows []string
	for start := 0; start < len(roster); start += menuColumns {
		var cells []string
		for i := start; i < start+menuColumns && i < len(roster); i++ {
			label := runewidth.FillRight(" "+roster[i].String()+" ", menuCellWidth)
			if i == cursor.CharacterIndex {
				cells = append(cells, menuSelectedStyle.Render(label))
			} else {
				cells = append(cells, menuItemStyle.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	mode := fmt.Sprintf("%s %s %s",
		menuLabelStyle.Render("Difficulty:"),
		menuModeStyle.Render("◀ "+strings.ToUpper(string(sel.Difficulty))+" ▶"),
		menuLabelStyle.Render(fmt.Sprintf("(chaser %.1f/s)", config.ChaserSpeedFor(sel.Difficulty))),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		grid,
		"",
		mode,
		"",
		h.View(keys),
	)

	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
