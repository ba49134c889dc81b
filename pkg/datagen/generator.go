// Package datagen produces synthetic people/movies/stars datasets for demos
// and tests.
package datagen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Config drives the synthetic dataset generator.
type Config struct {
	NumPeople int
	NumMovies int
	// MaxCast is the largest cast a generated movie may have. Casts are
	// sized uniformly in [2, MaxCast].
	MaxCast int
	// Connected forces the co-star graph into a single component by
	// chaining consecutive people through shared movies.
	Connected bool
	Seed      int64
}

// DefaultConfig returns baseline settings producing a small, connected
// dataset.
func DefaultConfig() Config {
	return Config{
		NumPeople: 200,
		NumMovies: 80,
		MaxCast:   6,
		Connected: true,
		Seed:      42,
	}
}

// Person is a generated people.csv row.
type Person struct {
	ID    string
	Name  string
	Birth string
}

// Movie is a generated movies.csv row.
type Movie struct {
	ID    string
	Title string
	Year  string
}

// Membership is a generated stars.csv row.
type Membership struct {
	PersonID string
	MovieID  string
}

// Dataset contains the generated tables.
type Dataset struct {
	People      []Person
	Movies      []Movie
	Memberships []Membership
}

// Generator produces synthetic datasets. The same seed always yields the
// same dataset.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumPeople <= 0 {
		cfg.NumPeople = DefaultConfig().NumPeople
	}
	if cfg.NumMovies <= 0 {
		cfg.NumMovies = DefaultConfig().NumMovies
	}
	if cfg.MaxCast < 2 {
		cfg.MaxCast = DefaultConfig().MaxCast
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises the three tables. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	people := make([]Person, g.cfg.NumPeople)
	for i := range people {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		people[i] = Person{
			ID:    g.newID(),
			Name:  g.randomName(),
			Birth: fmt.Sprintf("%d", 1920+g.rand.Intn(90)),
		}
	}

	movies := make([]Movie, g.cfg.NumMovies)
	var memberships []Membership
	seen := make(map[Membership]bool)

	link := func(personID, movieID string) {
		m := Membership{PersonID: personID, MovieID: movieID}
		if !seen[m] {
			seen[m] = true
			memberships = append(memberships, m)
		}
	}

	for i := range movies {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		movies[i] = Movie{
			ID:    g.newID(),
			Title: g.randomTitle(),
			Year:  fmt.Sprintf("%d", 1950+g.rand.Intn(75)),
		}

		castSize := 2 + g.rand.Intn(g.cfg.MaxCast-1)
		for c := 0; c < castSize; c++ {
			link(people[g.rand.Intn(len(people))].ID, movies[i].ID)
		}
	}

	if g.cfg.Connected {
		// Walk the people list pairwise, putting each consecutive pair
		// into a movie chosen round-robin. This guarantees a single
		// co-star component regardless of the random casts above.
		for i := 0; i+1 < len(people); i++ {
			movie := movies[i%len(movies)]
			link(people[i].ID, movie.ID)
			link(people[i+1].ID, movie.ID)
		}
	}

	return Dataset{People: people, Movies: movies, Memberships: memberships}, nil
}

// newID derives a UUID from the generator's seeded source so that datasets
// are reproducible.
func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}
	return id.String()
}

func (g *Generator) randomName() string {
	first := firstNames[g.rand.Intn(len(firstNames))]
	last := lastNames[g.rand.Intn(len(lastNames))]
	return first + " " + last
}

func (g *Generator) randomTitle() string {
	adjective := titleAdjectives[g.rand.Intn(len(titleAdjectives))]
	noun := titleNouns[g.rand.Intn(len(titleNouns))]
	return "The " + adjective + " " + noun
}

var firstNames = []string{
	"Ada", "Ben", "Clara", "Dmitri", "Elena", "Felix", "Grace", "Hugo",
	"Iris", "Jonas", "Kira", "Leon", "Mara", "Nils", "Olga", "Pavel",
	"Quinn", "Rosa", "Stefan", "Tilda", "Uma", "Viktor", "Wanda", "Yuri",
}

var lastNames = []string{
	"Abbott", "Berger", "Castellano", "Duval", "Eriksen", "Fontaine",
	"Guerrero", "Hartmann", "Ivanova", "Jensen", "Kowalski", "Lindqvist",
	"Moreau", "Novak", "Okafor", "Petrov", "Quintana", "Rossi", "Schmidt",
	"Takahashi", "Ueda", "Vargas", "Weber", "Zhang",
}

var titleAdjectives = []string{
	"Silent", "Burning", "Last", "Hidden", "Broken", "Golden", "Distant",
	"Frozen", "Endless", "Crimson", "Hollow", "Restless",
}

var titleNouns = []string{
	"Harbor", "Winter", "Garden", "Mirror", "Voyage", "Orchard", "Signal",
	"Border", "Lantern", "Meridian", "Cartographer", "Archive",
}
