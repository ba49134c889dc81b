package sixhops

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sixhops/sixhops/pkg/config"
	"github.com/sixhops/sixhops/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "sixhops",
		Short: "sixhops: classic search exercises",
		Long: `Sixhops bundles three classic search exercises behind one CLI:

- degrees: shortest actor-connection chains over a movie dataset
- maze:    grid maze pathfinding with BFS or DFS
- ttt:     tic-tac-toe against a minimax engine

Datasets, output formats and log levels can be configured through a config
file, environment variables, or command-line flags.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration
			initConfig()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sixhops.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sixhops" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sixhops")
	}

	viper.AutomaticEnv()

	// A missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger from the loaded configuration.
func newLogger(cfg *config.Config) *slog.Logger {
	return logger.NewDefaultLogger(logger.ParseLevel(cfg.Log.Level))
}
