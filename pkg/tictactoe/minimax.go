package tictactoe

// Minimax returns an optimal move for the current player. It searches the
// full game tree with alpha-beta pruning; candidate moves are tried in the
// row-major order of Moves, so play is deterministic. On a terminal board
// it returns ErrGameOver.
func Minimax(b Board) (Move, error) {
	if Terminal(b) {
		return Move{}, ErrGameOver
	}

	maximizing := Player(b) == X
	var best Move
	bestValue := -2
	if !maximizing {
		bestValue = 2
	}

	for _, move := range Moves(b) {
		next, err := Apply(b, move)
		if err != nil {
			return Move{}, err
		}
		value := minimax(next, -2, 2)
		if maximizing && value > bestValue {
			bestValue = value
			best = move
		}
		if !maximizing && value < bestValue {
			bestValue = value
			best = move
		}
	}
	return best, nil
}

// minimax evaluates a board from X's perspective with alpha-beta pruning.
// Utilities lie in [-1, 1], so -2 and 2 act as -inf and +inf.
func minimax(b Board, alpha, beta int) int {
	if Terminal(b) {
		return Utility(b)
	}

	if Player(b) == X {
		value := -2
		for _, move := range Moves(b) {
			next, _ := Apply(b, move)
			if v := minimax(next, alpha, beta); v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := 2
	for _, move := range Moves(b) {
		next, _ := Apply(b, move)
		if v := minimax(next, alpha, beta); v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}
