// Package dataset loads the people/movies/stars CSV tables into a graph
// store.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sixhops/sixhops/pkg/graph"
)

// File names expected inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// Loader reads a dataset directory into a graph.Store. Malformed files fail
// fast at load time; membership rows that reference unknown ids are skipped
// and counted, matching how real-world dumps of this dataset behave.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the three CSV files from dir and returns a populated store.
func (l *Loader) Load(dir string) (*graph.Store, error) {
	store := graph.NewStore()

	err := l.readFile(filepath.Join(dir, PeopleFile), []string{"id", "name", "birth"},
		func(row map[string]string) error {
			return store.AddEntity(row["id"], row["name"], row["birth"])
		})
	if err != nil {
		return nil, err
	}

	err = l.readFile(filepath.Join(dir, MoviesFile), []string{"id", "title", "year"},
		func(row map[string]string) error {
			return store.AddGrouping(row["id"], row["title"], row["year"])
		})
	if err != nil {
		return nil, err
	}

	skipped := 0
	err = l.readFile(filepath.Join(dir, StarsFile), []string{"person_id", "movie_id"},
		func(row map[string]string) error {
			if err := store.AddMembership(row["person_id"], row["movie_id"]); err != nil {
				skipped++
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		l.logger.Warn("skipped membership rows with unknown ids", "count", skipped)
	}
	l.logger.Info("dataset loaded",
		"dir", dir,
		"people", store.NumEntities(),
		"movies", store.NumGroupings())
	return store, nil
}

// readFile streams a CSV file row by row, mapping columns by header name.
// Every column listed in required must be present in the header.
func (l *Loader) readFile(path string, required []string, handle func(map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}

		row := make(map[string]string, len(required))
		for _, col := range required {
			row[col] = record[index[col]]
		}
		if err := handle(row); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}
