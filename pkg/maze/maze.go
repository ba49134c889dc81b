// Package maze parses text-format grid mazes and solves them with
// breadth-first or depth-first search.
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoSolution is returned when no path from start to goal exists.
	ErrNoSolution = errors.New("no solution")
	// ErrBadAlgorithm is returned for an unknown algorithm name.
	ErrBadAlgorithm = errors.New("unknown algorithm")
)

// Cell addresses one grid square.
type Cell struct {
	Row int
	Col int
}

// Maze is a parsed grid. Walls are every character other than space, 'A'
// (start) and 'B' (goal); ragged short lines are padded with walls.
type Maze struct {
	height int
	width  int
	walls  [][]bool
	start  Cell
	goal   Cell
}

// Parse reads a maze from its text representation. The maze must contain
// exactly one start ('A') and exactly one goal ('B').
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	// Trim trailing blank lines.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New("parse maze: empty input")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	m := &Maze{
		height: len(lines),
		width:  width,
		walls:  make([][]bool, len(lines)),
	}

	starts, goals := 0, 0
	for row, line := range lines {
		m.walls[row] = make([]bool, width)
		for col := 0; col < width; col++ {
			if col >= len(line) {
				m.walls[row][col] = true
				continue
			}
			switch line[col] {
			case 'A':
				m.start = Cell{Row: row, Col: col}
				starts++
			case 'B':
				m.goal = Cell{Row: row, Col: col}
				goals++
			case ' ':
			default:
				m.walls[row][col] = true
			}
		}
	}

	if starts != 1 {
		return nil, fmt.Errorf("parse maze: expected exactly one start, found %d", starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("parse maze: expected exactly one goal, found %d", goals)
	}
	return m, nil
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Start returns the start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() Cell { return m.goal }

// Wall reports whether the cell is a wall. Out-of-bounds cells count as
// walls.
func (m *Maze) Wall(c Cell) bool {
	if c.Row < 0 || c.Row >= m.height || c.Col < 0 || c.Col >= m.width {
		return true
	}
	return m.walls[c.Row][c.Col]
}

// step pairs a direction name with its row/col delta. The fixed order
// (up, down, left, right) is the documented tie-break among equally short
// paths.
type step struct {
	name   string
	dr, dc int
}

var steps = []step{
	{"up", -1, 0},
	{"down", 1, 0},
	{"left", 0, -1},
	{"right", 0, 1},
}

// Neighbors returns the walkable cells adjacent to c, paired with the
// direction taken, in the fixed up/down/left/right order.
func (m *Maze) Neighbors(c Cell) []Move {
	var moves []Move
	for _, s := range steps {
		next := Cell{Row: c.Row + s.dr, Col: c.Col + s.dc}
		if !m.Wall(next) {
			moves = append(moves, Move{Direction: s.name, Cell: next})
		}
	}
	return moves
}

// Move is one walkable step out of a cell.
type Move struct {
	Direction string
	Cell      Cell
}
