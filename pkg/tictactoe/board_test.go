package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(rows [3]string) Board {
	var b Board
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case 'X':
				b[r][c] = X
			case 'O':
				b[r][c] = O
			}
		}
	}
	return b
}

func TestPlayer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, X, Player(Board{}))
	assert.Equal(t, O, Player(boardFrom([3]string{"X..", "...", "..."})))
	assert.Equal(t, X, Player(boardFrom([3]string{"X.O", "...", "..."})))
}

func TestMovesRowMajor(t *testing.T) {
	t.Parallel()

	b := boardFrom([3]string{"XO.", "...", "..X"})
	moves := Moves(b)
	assert.Equal(t, []Move{
		{0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1},
	}, moves)
}

func TestApply(t *testing.T) {
	t.Parallel()

	b := Board{}
	b2, err := Apply(b, Move{1, 1})
	require.NoError(t, err)
	assert.Equal(t, X, b2[1][1])
	assert.Equal(t, Empty, b[1][1], "Apply must not mutate its input")

	_, err = Apply(b2, Move{1, 1})
	assert.ErrorIs(t, err, ErrInvalidMove)
	_, err = Apply(b2, Move{3, 0})
	assert.ErrorIs(t, err, ErrInvalidMove)

	won := boardFrom([3]string{"XXX", "OO.", "..."})
	_, err = Apply(won, Move{1, 2})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestWinnerAndUtility(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rows   [3]string
		winner Mark
		score  int
	}{
		{"row", [3]string{"XXX", "OO.", "..."}, X, 1},
		{"column", [3]string{"OX.", "OX.", "O.X"}, O, -1},
		{"diagonal", [3]string{"X.O", ".XO", "..X"}, X, 1},
		{"anti-diagonal", [3]string{"X.O", ".OX", "OX."}, O, -1},
		{"draw", [3]string{"XOX", "XOO", "OXX"}, Empty, 0},
		{"in progress", [3]string{"X..", ".O.", "..."}, Empty, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(tc.rows)
			assert.Equal(t, tc.winner, Winner(b))
			assert.Equal(t, tc.score, Utility(b))
		})
	}
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, Terminal(Board{}))
	assert.True(t, Terminal(boardFrom([3]string{"XXX", "OO.", "..."})))
	assert.True(t, Terminal(boardFrom([3]string{"XOX", "XOO", "OXX"})))
	assert.False(t, Terminal(boardFrom([3]string{"XOX", "...", "..."})))
}
