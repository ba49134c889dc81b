package maze

import (
	"fmt"

	"github.com/sixhops/sixhops/pkg/frontier"
)

// Algorithm selects the frontier discipline used by Solve.
type Algorithm string

const (
	// BFS explores layer by layer and always finds a shortest path.
	BFS Algorithm = "bfs"
	// DFS explores depth-first; it finds a path, not necessarily the
	// shortest one.
	DFS Algorithm = "dfs"
)

// ParseAlgorithm maps a user-supplied name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case BFS, DFS:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadAlgorithm, name)
	}
}

// Solution is the result of a solved maze.
type Solution struct {
	// Path runs from the start cell to the goal cell, inclusive.
	Path []Cell
	// Directions holds the move taken at each step; one shorter than Path.
	Directions []string
	// Explored lists every expanded cell in expansion order.
	Explored []Cell
}

// Solve searches the maze with the chosen algorithm. It returns
// ErrNoSolution when the goal is unreachable.
func (m *Maze) Solve(alg Algorithm) (*Solution, error) {
	var fr frontier.Frontier[Cell, string]
	switch alg {
	case BFS:
		fr = frontier.NewQueue[Cell, string]()
	case DFS:
		fr = frontier.NewStack[Cell, string]()
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadAlgorithm, alg)
	}

	fr.Add(frontier.Root[Cell, string](m.start))
	visited := map[Cell]struct{}{m.start: {}}
	var explored []Cell

	for !fr.Empty() {
		node, err := fr.Remove()
		if err != nil {
			return nil, err
		}
		explored = append(explored, node.State)

		if node.State == m.goal {
			return buildSolution(node, explored), nil
		}

		for _, move := range m.Neighbors(node.State) {
			if _, seen := visited[move.Cell]; seen {
				continue
			}
			visited[move.Cell] = struct{}{}
			fr.Add(node.Child(move.Cell, move.Direction))
		}
	}

	return nil, ErrNoSolution
}

func buildSolution(goal *frontier.Node[Cell, string], explored []Cell) *Solution {
	path := goal.Path()
	sol := &Solution{
		Path:     make([]Cell, 0, len(path)),
		Explored: explored,
	}
	for i, node := range path {
		sol.Path = append(sol.Path, node.State)
		if i > 0 {
			sol.Directions = append(sol.Directions, node.Action)
		}
	}
	return sol
}
