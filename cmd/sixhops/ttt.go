package sixhops

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sixhops/sixhops/pkg/tictactoe"
	"github.com/sixhops/sixhops/pkg/tui"
)

var tttMark string

var tttCmd = &cobra.Command{
	Use:   "ttt",
	Short: "Play tic-tac-toe against the minimax engine",
	Long: `Play an interactive game of tic-tac-toe in the terminal.

The engine plays optimally, so the best achievable result is a draw. X
always moves first.`,
	Args: cobra.NoArgs,
	RunE: runTTT,
}

func init() {
	rootCmd.AddCommand(tttCmd)

	tttCmd.Flags().StringVar(&tttMark, "mark", "x", "mark to play (x moves first, o moves second)")
}

func runTTT(cmd *cobra.Command, args []string) error {
	var human tictactoe.Mark
	switch strings.ToLower(tttMark) {
	case "x":
		human = tictactoe.X
	case "o":
		human = tictactoe.O
	default:
		return fmt.Errorf("unknown mark %q (want x or o)", tttMark)
	}
	return tui.Run(human)
}
