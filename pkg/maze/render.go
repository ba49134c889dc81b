package maze

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	goalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	exploredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render draws the maze as a styled grid. A nil solution renders the bare
// maze; showExplored additionally marks every expanded cell.
func (m *Maze) Render(sol *Solution, showExplored bool) string {
	onPath := map[Cell]bool{}
	explored := map[Cell]bool{}
	if sol != nil {
		for _, c := range sol.Path {
			onPath[c] = true
		}
		if showExplored {
			for _, c := range sol.Explored {
				explored[c] = true
			}
		}
	}

	var b strings.Builder
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			cell := Cell{Row: row, Col: col}
			switch {
			case m.Wall(cell):
				b.WriteString(wallStyle.Render("█"))
			case cell == m.start:
				b.WriteString(startStyle.Render("A"))
			case cell == m.goal:
				b.WriteString(goalStyle.Render("B"))
			case onPath[cell]:
				b.WriteString(pathStyle.Render("*"))
			case explored[cell]:
				b.WriteString(exploredStyle.Render("·"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
