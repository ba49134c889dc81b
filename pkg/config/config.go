// Package config holds all configuration for the application, loaded from
// config files, environment variables and flags through viper.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Dataset configuration
	Dataset DatasetConfig `mapstructure:"dataset"`

	// Search configuration
	Search SearchConfig `mapstructure:"search"`

	// Maze configuration
	Maze MazeConfig `mapstructure:"maze"`

	// Datagen configuration
	Datagen DatagenConfig `mapstructure:"datagen"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatasetConfig holds dataset configuration
type DatasetConfig struct {
	// Dir is the directory containing people.csv, movies.csv and
	// stars.csv.
	Dir string `mapstructure:"dir"`
}

// SearchConfig holds connection-search configuration
type SearchConfig struct {
	// MaxDegrees caps the chain length; zero means unbounded.
	MaxDegrees int `mapstructure:"max_degrees"`
	// Output selects the result format: text, json or yaml.
	Output string `mapstructure:"output"`
}

// MazeConfig holds maze-solver configuration
type MazeConfig struct {
	Algorithm    string `mapstructure:"algorithm"`
	ShowExplored bool   `mapstructure:"show_explored"`
}

// DatagenConfig holds synthetic dataset generator configuration
type DatagenConfig struct {
	People    int    `mapstructure:"people"`
	Movies    int    `mapstructure:"movies"`
	MaxCast   int    `mapstructure:"max_cast"`
	Connected bool   `mapstructure:"connected"`
	Seed      int64  `mapstructure:"seed"`
	Dir       string `mapstructure:"dir"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")

	// Dataset defaults
	viper.SetDefault("dataset.dir", "data/small")

	// Search defaults
	viper.SetDefault("search.max_degrees", 0)
	viper.SetDefault("search.output", "text")

	// Maze defaults
	viper.SetDefault("maze.algorithm", "bfs")
	viper.SetDefault("maze.show_explored", false)

	// Datagen defaults
	viper.SetDefault("datagen.people", 200)
	viper.SetDefault("datagen.movies", 80)
	viper.SetDefault("datagen.max_cast", 6)
	viper.SetDefault("datagen.connected", true)
	viper.SetDefault("datagen.seed", 42)
	viper.SetDefault("datagen.dir", "data/generated")
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	if level := os.Getenv("SIXHOPS_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if dir := os.Getenv("SIXHOPS_DATA_DIR"); dir != "" {
		config.Dataset.Dir = dir
	}
	if out := os.Getenv("SIXHOPS_OUTPUT"); out != "" {
		config.Search.Output = out
	}
	if max := os.Getenv("SIXHOPS_MAX_DEGREES"); max != "" {
		if v, err := strconv.Atoi(max); err == nil {
			config.Search.MaxDegrees = v
		}
	}
}
