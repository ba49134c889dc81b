// Package tui implements the interactive tic-tac-toe game as a bubbletea
// program. The model is single-threaded inside the bubbletea event loop;
// engine moves are computed in a tea.Cmd so the UI stays responsive.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sixhops/sixhops/pkg/tictactoe"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	xStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	oStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// engineMoveMsg delivers the engine's chosen move back into the event loop.
type engineMoveMsg struct {
	move tictactoe.Move
	err  error
}

// Model is the bubbletea model for a game against the minimax engine.
type Model struct {
	board    tictactoe.Board
	human    tictactoe.Mark
	cursor   tictactoe.Move
	thinking bool
	err      error
}

// NewModel creates a game where the human plays the given mark. X always
// moves first.
func NewModel(human tictactoe.Mark) Model {
	return Model{
		human:  human,
		cursor: tictactoe.Move{Row: 1, Col: 1},
	}
}

// Init schedules the first engine move when the engine plays X.
func (m Model) Init() tea.Cmd {
	if m.human != tictactoe.X {
		return engineMove(m.board)
	}
	return nil
}

// engineMove computes the engine's reply off the event loop.
func engineMove(b tictactoe.Board) tea.Cmd {
	return func() tea.Msg {
		move, err := tictactoe.Minimax(b)
		return engineMoveMsg{move: move, err: err}
	}
}

// Update handles key events and engine replies.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case engineMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		board, err := tictactoe.Apply(m.board, msg.move)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.board = board
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "r":
			next := NewModel(m.human)
			return next, next.Init()

		case "up", "k":
			if m.cursor.Row > 0 {
				m.cursor.Row--
			}
		case "down", "j":
			if m.cursor.Row < 2 {
				m.cursor.Row++
			}
		case "left", "h":
			if m.cursor.Col > 0 {
				m.cursor.Col--
			}
		case "right", "l":
			if m.cursor.Col < 2 {
				m.cursor.Col++
			}

		case "enter", " ":
			if m.thinking || tictactoe.Terminal(m.board) {
				return m, nil
			}
			if tictactoe.Player(m.board) != m.human {
				return m, nil
			}
			board, err := tictactoe.Apply(m.board, m.cursor)
			if err != nil {
				// Occupied square; ignore the keypress.
				return m, nil
			}
			m.board = board
			if tictactoe.Terminal(m.board) {
				return m, nil
			}
			m.thinking = true
			return m, engineMove(m.board)
		}
	}
	return m, nil
}

// View renders the board, cursor and status line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tic-tac-toe"))
	b.WriteString("\n\n")

	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			cells[c] = m.renderCell(r, c)
		}
		b.WriteString(" " + strings.Join(cells, gridStyle.Render(" │ ")) + "\n")
		if r < 2 {
			b.WriteString(gridStyle.Render("───┼───┼───") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows/hjkl move · enter place · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCell(r, c int) string {
	mark := m.board[r][c]
	var s string
	switch mark {
	case tictactoe.X:
		s = xStyle.Render("X")
	case tictactoe.O:
		s = oStyle.Render("O")
	default:
		s = " "
	}
	if m.cursor.Row == r && m.cursor.Col == c && !tictactoe.Terminal(m.board) {
		return cursorStyle.Render(s)
	}
	return s
}

func (m Model) status() string {
	if m.err != nil {
		return "error: " + m.err.Error()
	}
	if tictactoe.Terminal(m.board) {
		switch tictactoe.Winner(m.board) {
		case m.human:
			return "you win!"
		case tictactoe.Empty:
			return "draw."
		default:
			return "engine wins."
		}
	}
	if m.thinking || tictactoe.Player(m.board) != m.human {
		return "engine is thinking..."
	}
	return "your move (" + string(m.human) + ")"
}

// Run starts the interactive game and blocks until it exits.
func Run(human tictactoe.Mark) error {
	_, err := tea.NewProgram(NewModel(human)).Run()
	return err
}
