// Package tictactoe implements the game state functions and a minimax
// engine for 3x3 tic-tac-toe.
package tictactoe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned for moves on occupied or out-of-range
	// squares.
	ErrInvalidMove = errors.New("invalid move")
	// ErrGameOver is returned when a move or engine call is made on a
	// terminal board.
	ErrGameOver = errors.New("game over")
)

// Mark is a player symbol. The zero value Empty marks a free square.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Board is a 3x3 grid of marks. The zero value is the initial game state.
type Board [3][3]Mark

// Move addresses one square.
type Move struct {
	Row int
	Col int
}

// Player returns whose turn it is. X always moves first.
func Player(b Board) Mark {
	placed := 0
	for _, row := range b {
		for _, mark := range row {
			if mark != Empty {
				placed++
			}
		}
	}
	if placed%2 == 0 {
		return X
	}
	return O
}

// Moves returns every free square in row-major order. The fixed order keeps
// engine play deterministic.
func Moves(b Board) []Move {
	var moves []Move
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Apply returns the board that results from the current player taking the
// move. The input board is not modified.
func Apply(b Board, m Move) (Board, error) {
	if m.Row < 0 || m.Row > 2 || m.Col < 0 || m.Col > 2 {
		return b, fmt.Errorf("%w: (%d,%d) out of range", ErrInvalidMove, m.Row, m.Col)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("%w: (%d,%d) occupied", ErrInvalidMove, m.Row, m.Col)
	}
	if Terminal(b) {
		return b, ErrGameOver
	}
	b[m.Row][m.Col] = Player(b)
	return b, nil
}

// lines lists every winning triple of squares.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark that completed a line, or Empty if there is none.
func Winner(b Board) Mark {
	for _, line := range lines {
		first := b[line[0].Row][line[0].Col]
		if first == Empty {
			continue
		}
		if b[line[1].Row][line[1].Col] == first && b[line[2].Row][line[2].Col] == first {
			return first
		}
	}
	return Empty
}

// Terminal reports whether the game is over, by win or by a full board.
func Terminal(b Board) bool {
	if Winner(b) != Empty {
		return true
	}
	return len(Moves(b)) == 0
}

// Utility scores a terminal board from X's perspective: 1 for an X win,
// -1 for an O win, 0 for a draw.
func Utility(b Board) int {
	switch Winner(b) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}
