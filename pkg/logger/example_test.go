package logger_test

import (
	"log/slog"

	"github.com/sixhops/sixhops/pkg/logger"
)

func ExampleNewDefaultLogger() {
	// Create a logger with default settings
	log := logger.NewDefaultLogger(slog.LevelDebug)

	// Log different levels
	log.Debug("This is a debug message")
	log.Info("Dataset loaded")
	log.Warn("Skipped membership rows with unknown ids")
	log.Error("This is an error message")
}

func ExampleNewLogger() {
	// Create a logger with custom configuration
	log := logger.NewDefaultLogger(slog.LevelInfo)

	// Log with attributes
	log.Info("search finished", "source", "p1", "target", "p2", "degrees", 3)
	log.Warn("ambiguous name", "name", "Alice Stone", "candidates", 2)
}
