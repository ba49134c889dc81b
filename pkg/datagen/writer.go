package datagen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sixhops/sixhops/pkg/dataset"
)

// WriteDataset serializes the dataset into people.csv, movies.csv and
// stars.csv under the provided directory, in the layout the loader reads.
func WriteDataset(ds Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	people := [][]string{{"id", "name", "birth"}}
	for _, p := range ds.People {
		people = append(people, []string{p.ID, p.Name, p.Birth})
	}
	if err := writeCSV(filepath.Join(dir, dataset.PeopleFile), people); err != nil {
		return err
	}

	movies := [][]string{{"id", "title", "year"}}
	for _, m := range ds.Movies {
		movies = append(movies, []string{m.ID, m.Title, m.Year})
	}
	if err := writeCSV(filepath.Join(dir, dataset.MoviesFile), movies); err != nil {
		return err
	}

	stars := [][]string{{"person_id", "movie_id"}}
	for _, s := range ds.Memberships {
		stars = append(stars, []string{s.PersonID, s.MovieID})
	}
	return writeCSV(filepath.Join(dir, dataset.StarsFile), stars)
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
