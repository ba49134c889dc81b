package sixhops

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sixhops/sixhops/pkg/config"
	"github.com/sixhops/sixhops/pkg/maze"
)

var mazeCmd = &cobra.Command{
	Use:   "maze FILE",
	Short: "Solve a text-format grid maze",
	Long: `Solve a maze read from FILE.

The format uses '#' for walls, 'A' for the start, 'B' for the goal and
spaces for open cells. BFS always finds a shortest path; DFS finds some
path and usually explores fewer cells on long corridors.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaze,
}

func init() {
	rootCmd.AddCommand(mazeCmd)

	mazeCmd.Flags().String("algorithm", "bfs", "search algorithm (bfs, dfs)")
	mazeCmd.Flags().Bool("show-explored", false, "mark every explored cell in the rendering")

	viper.BindPFlag("maze.algorithm", mazeCmd.Flags().Lookup("algorithm"))
	viper.BindPFlag("maze.show_explored", mazeCmd.Flags().Lookup("show-explored"))
}

func runMaze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := newLogger(cfg)

	alg, err := maze.ParseAlgorithm(cfg.Maze.Algorithm)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := maze.Parse(f)
	if err != nil {
		return err
	}
	log.Debug("maze parsed", "height", m.Height(), "width", m.Width())

	sol, err := m.Solve(alg)
	if errors.Is(err, maze.ErrNoSolution) {
		fmt.Println("No solution.")
		fmt.Print(m.Render(nil, false))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Solved with %s: %d steps, %d cells explored.\n",
		alg, len(sol.Path)-1, len(sol.Explored))
	fmt.Print(m.Render(sol, cfg.Maze.ShowExplored))
	return nil
}
